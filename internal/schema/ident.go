package schema

import (
	"fmt"

	"github.com/Jirwin42/attendence/pkg/types"
)

// ValidateIdentifier returns name unchanged when it is a legal bare
// identifier: non-empty, only ASCII letters, digits and underscores, and not
// starting with a digit. Table and column names cannot be bound as query
// parameters, so every name passes through here before it is concatenated
// into a statement.
func ValidateIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidIdentifier, name)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return "", fmt.Errorf("%w: %q", types.ErrInvalidIdentifier, name)
			}
		default:
			return "", fmt.Errorf("%w: %q", types.ErrInvalidIdentifier, name)
		}
	}
	return name, nil
}

// IsIdentifier reports whether ValidateIdentifier accepts name.
func IsIdentifier(name string) bool {
	_, err := ValidateIdentifier(name)
	return err == nil
}

// validateSpec checks the table and every column name, then the structural
// invariants of the table definition.
func validateSpec(spec types.TableSpec) error {
	if _, err := ValidateIdentifier(spec.Name); err != nil {
		return err
	}
	for _, c := range spec.Columns {
		if _, err := ValidateIdentifier(c.Name); err != nil {
			return err
		}
	}
	return spec.Validate()
}
