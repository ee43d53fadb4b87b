package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/pkg/types"
)

// ErrEmptyName is returned by RequireName when the answer is blank.
var ErrEmptyName = errors.New("name cannot be empty")

// Console pairs a LineReader with the writer that messages go to.
type Console struct {
	in  LineReader
	out io.Writer
}

// New returns a Console reading answers from in and writing to out.
func New(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Out returns the writer messages go to.
func (c *Console) Out() io.Writer { return c.out }

// Printf writes a formatted message.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a message followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Line prompts once and returns the answer with surrounding space removed.
func (c *Console) Line(prompt string) (string, error) {
	s, err := c.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Raw prompts once and returns the answer untouched. Used where an exact
// match matters, such as the overwrite confirmation.
func (c *Console) Raw(prompt string) (string, error) {
	return c.in.ReadLine(prompt)
}

// Ask re-prompts until parse accepts the answer. parse returns either the
// validated value or a rejection, whose message is shown before the prompt
// is repeated. Only read errors end the loop.
func Ask[T any](c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := c.Line(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, rejection := parse(answer)
		if rejection == nil {
			return v, nil
		}
		c.Println(rejection.Error())
	}
}

// Yes prompts once and reports whether the answer is "y" (any case).
func (c *Console) Yes(prompt string) (bool, error) {
	answer, err := c.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// No prompts once and reports whether the answer is "n" (any case).
func (c *Console) No(prompt string) (bool, error) {
	answer, err := c.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "n"), nil
}

// identifierRejection explains why a name was refused.
type identifierRejection struct{ name string }

func (r identifierRejection) Error() string {
	return fmt.Sprintf("Error: '%s' is not a valid identifier.\n"+
		"Please use only letters, numbers, or underscores, and do not start with a number.", r.name)
}

func (r identifierRejection) Unwrap() error { return types.ErrInvalidIdentifier }

// parseName validates an answer as an identifier. With allowEmpty a blank
// answer is accepted and returned as "".
func parseName(allowEmpty bool) func(string) (string, error) {
	return func(answer string) (string, error) {
		if answer == "" && allowEmpty {
			return "", nil
		}
		if _, err := schema.ValidateIdentifier(answer); err != nil {
			return "", identifierRejection{name: answer}
		}
		return answer, nil
	}
}

// RequireName prompts for a table or column name, re-prompting on invalid
// identifiers. A blank answer cancels with ErrEmptyName.
func (c *Console) RequireName(prompt string) (string, error) {
	name, err := Ask(c, prompt, parseName(true))
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// OptionalName is RequireName where a blank answer returns "" and no error.
func (c *Console) OptionalName(prompt string) (string, error) {
	return Ask(c, prompt, parseName(true))
}

// rejection is a re-prompt message shown verbatim.
type rejection string

func (r rejection) Error() string { return string(r) }

// parseColumnType accepts a 1-based choice from the type menu.
func parseColumnType(answer string) (types.ColumnType, error) {
	if _, err := strconv.Atoi(answer); err != nil {
		return "", rejection("Invalid input. Please enter a number.")
	}
	t, err := types.ColumnTypeByChoice(answer)
	if err != nil {
		return "", rejection("Invalid choice.")
	}
	return t, nil
}

// ColumnType shows the type menu and returns the selected type.
func (c *Console) ColumnType() (types.ColumnType, error) {
	c.Println("Select the data type:")
	for i, t := range types.ColumnTypes {
		c.Printf("  %d. %s\n", i+1, t)
	}
	return Ask(c, fmt.Sprintf("Enter choice (1-%d): ", len(types.ColumnTypes)), parseColumnType)
}
