// Package journal keeps an append-only JSONL history of the statements
// dbtables submits to a database and how each one ended.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Suffix is appended to the database path to name its journal file.
const Suffix = ".journal.jsonl"

// Entry is one journal line.
type Entry struct {
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
	Table string    `json:"table,omitempty"`
	SQL   string    `json:"sql"`
	Error string    `json:"error,omitempty"`
}

// OK reports whether the statement succeeded.
func (e Entry) OK() bool { return e.Error == "" }

// Journal appends entries to one JSONL file.
type Journal struct {
	path string
	now  func() time.Time
}

// New returns a Journal writing to path.
func New(path string) *Journal {
	return &Journal{path: path, now: time.Now}
}

// ForDatabase returns the Journal kept next to the database file dbPath.
func ForDatabase(dbPath string) *Journal {
	return New(dbPath + Suffix)
}

// Path returns the journal file path.
func (j *Journal) Path() string { return j.path }

// Record appends an entry for sql. It satisfies sqlite.Recorder.
func (j *Journal) Record(table, sql string, execErr error) error {
	e := Entry{
		ID:    newID(),
		At:    j.now().UTC(),
		Table: table,
		SQL:   sql,
	}
	if execErr != nil {
		e.Error = execErr.Error()
	}
	return j.Append(e)
}

// Append writes e as a single line at the end of the journal.
func (j *Journal) Append(e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", j.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("writing entry: %w", err)
	}
	return f.Close()
}

// Entries returns every parseable entry, oldest first. Blank and malformed
// lines are skipped. A missing journal has no entries.
func (j *Journal) Entries() ([]Entry, error) {
	f, err := os.Open(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", j.path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", j.path, err)
	}
	return entries, nil
}

// Last returns the newest n entries, oldest first. n <= 0 returns all.
func (j *Journal) Last(n int) ([]Entry, error) {
	entries, err := j.Entries()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// newID generates a UUID v7 for a journal entry.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
