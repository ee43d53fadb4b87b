package schema

import (
	"fmt"

	"github.com/Jirwin42/attendence/pkg/types"
)

// MutationKind names an operation of the manage-table menu.
type MutationKind int

// Manage-table operations, numbered as the menu offers them.
const (
	AddColumnOp MutationKind = iota + 1
	RenameColumnOp
	DropColumnOp
	RenameTableOp
	ReturnOp
)

func (k MutationKind) String() string {
	switch k {
	case AddColumnOp:
		return "add column"
	case RenameColumnOp:
		return "rename column"
	case DropColumnOp:
		return "drop column"
	case RenameTableOp:
		return "rename table"
	case ReturnOp:
		return "return"
	default:
		return fmt.Sprintf("MutationKind(%d)", int(k))
	}
}

// MutationByChoice maps a menu answer ("1".."5") to its kind.
func MutationByChoice(choice string) (MutationKind, error) {
	switch choice {
	case "1":
		return AddColumnOp, nil
	case "2":
		return RenameColumnOp, nil
	case "3":
		return DropColumnOp, nil
	case "4":
		return RenameTableOp, nil
	case "5":
		return ReturnOp, nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidChoice, choice)
	}
}

// Mutation is a single edit requested from the manage-table menu. Column is
// read by AddColumnOp, From/To by the rename operations, From by DropColumnOp.
type Mutation struct {
	Kind   MutationKind
	Column types.ColumnSpec
	From   string
	To     string
}

// EditState is the state threaded through the manage-table menu.
type EditState struct {
	Table string
}

// Mutate returns the statement for m and the state to adopt once that
// statement succeeds. The caller keeps the current state when the store
// rejects the statement. ReturnOp yields an empty statement.
func (s EditState) Mutate(m Mutation) (EditState, Statement, error) {
	var (
		stmt Statement
		err  error
	)
	next := s

	switch m.Kind {
	case AddColumnOp:
		stmt, err = AddColumn(s.Table, m.Column)
	case RenameColumnOp:
		stmt, err = RenameColumn(s.Table, m.From, m.To)
	case DropColumnOp:
		stmt, err = DropColumn(s.Table, m.From)
	case RenameTableOp:
		stmt, err = RenameTable(s.Table, m.To)
		next.Table = m.To
	case ReturnOp:
		return s, Statement{}, nil
	default:
		return s, Statement{}, fmt.Errorf("%w: %s", types.ErrInvalidChoice, m.Kind)
	}
	if err != nil {
		return s, Statement{}, err
	}
	return next, stmt, nil
}
