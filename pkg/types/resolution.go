package types

import "fmt"

// ConflictResolution selects what happens when a table being created
// already exists.
type ConflictResolution int

// Conflict resolutions, numbered as the conflict menu offers them.
const (
	Abort ConflictResolution = iota + 1
	Overwrite
	Merge
)

// OverwriteToken is the literal a caller must type to confirm an overwrite.
const OverwriteToken = "OVERWRITE"

func (r ConflictResolution) String() string {
	switch r {
	case Abort:
		return "abort"
	case Overwrite:
		return "overwrite"
	case Merge:
		return "merge"
	default:
		return fmt.Sprintf("ConflictResolution(%d)", int(r))
	}
}

// ResolutionByChoice maps the conflict menu answer to a resolution.
// Anything other than "2" or "3" aborts.
func ResolutionByChoice(choice string) ConflictResolution {
	switch choice {
	case "2":
		return Overwrite
	case "3":
		return Merge
	default:
		return Abort
	}
}
