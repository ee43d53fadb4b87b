// Package schema validates identifiers and turns table specifications and
// edits into SQLite data-definition statements.
//
// Everything here is pure: functions take a spec or an edit and return the
// statements to issue. Executing them is the caller's job, so the planning
// rules can be tested without a database.
package schema
