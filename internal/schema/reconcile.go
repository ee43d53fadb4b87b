package schema

import (
	"github.com/Jirwin42/attendence/pkg/types"
)

// Plan is the outcome of reconciling a new table spec with an existing
// table of the same name.
type Plan struct {
	Resolution types.ConflictResolution

	// Statements are issued in order. For Merge each one is independent: a
	// failure is reported for that column and the rest are still attempted.
	Statements []Statement

	// ConfirmationFailed is set when Overwrite was requested but the token
	// did not match. The plan has been downgraded to Abort.
	ConfirmationFailed bool
}

// Independent reports whether statements are submitted best effort, one at
// a time, rather than as a drop-then-create sequence that stops at the
// first failure.
func (p Plan) Independent() bool {
	return p.Resolution == types.Merge
}

// Empty reports whether the plan makes no change to the store.
func (p Plan) Empty() bool {
	return len(p.Statements) == 0
}

// Reconcile decides what to issue when spec names a table that already
// exists.
//
// Abort yields no statements. Overwrite yields DROP TABLE followed by the
// CREATE, but only when token equals types.OverwriteToken exactly; any
// other token (case variants included) aborts. Merge yields one ADD COLUMN
// per new column.
func Reconcile(spec types.TableSpec, resolution types.ConflictResolution, token string) (Plan, error) {
	if err := validateSpec(spec); err != nil {
		return Plan{}, err
	}

	switch resolution {
	case types.Overwrite:
		if token != types.OverwriteToken {
			return Plan{Resolution: types.Abort, ConfirmationFailed: true}, nil
		}
		drop, err := DropTable(spec.Name)
		if err != nil {
			return Plan{}, err
		}
		create, err := CreateTable(spec)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Resolution: types.Overwrite, Statements: []Statement{drop, create}}, nil

	case types.Merge:
		stmts := make([]Statement, 0, len(spec.Columns))
		for _, c := range spec.Columns {
			add, err := AddColumn(spec.Name, c)
			if err != nil {
				return Plan{}, err
			}
			stmts = append(stmts, add)
		}
		return Plan{Resolution: types.Merge, Statements: stmts}, nil

	default:
		return Plan{Resolution: types.Abort}, nil
	}
}
