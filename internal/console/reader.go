// Package console implements the line-oriented prompt/response cycle used by
// the interactive session: reading answers, re-prompting on invalid input,
// and collecting column descriptors.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the user interrupts a prompt (Ctrl-C).
var ErrInterrupted = errors.New("interrupted")

// LineReader reads one answer per prompt. It returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// plainReader prompts on w and reads lines from a buffered reader. It is
// used for scripted input and when stdin is not a terminal.
type plainReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewPlainReader returns a LineReader that writes prompts to w and reads
// answers from r.
func NewPlainReader(r io.Reader, w io.Writer) LineReader {
	return &plainReader{r: bufio.NewReader(r), w: w}
}

func (p *plainReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(p.w, prompt); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) Close() error { return nil }

// readlineReader adds line editing and history on an interactive terminal.
type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *readlineReader) Close() error { return r.rl.Close() }

// NewTerminalReader returns a readline-backed LineReader when in is a
// terminal, and a plain reader otherwise. historyFile may be empty.
func NewTerminalReader(in *os.File, out io.Writer, historyFile string) (LineReader, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return NewPlainReader(in, out), nil
	}
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		Stdin:             in,
		Stdout:            out,
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}
