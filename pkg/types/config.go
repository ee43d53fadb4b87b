package types

import "errors"

// Config holds the settings a session runs with.
type Config struct {
	Database       string `json:"database" yaml:"database"`
	ReviewCreate   bool   `json:"review_create" yaml:"review_create"`
	JournalEnabled bool   `json:"journal" yaml:"journal"`
}

// DefaultDatabase is the database file used when nothing else is configured.
const DefaultDatabase = "mydatabase.db"

// Config validation errors.
var (
	ErrDatabaseEmpty = errors.New("database path must not be empty")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	return nil
}
