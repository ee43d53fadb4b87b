// Package types defines the table and column specifications, the
// conflict-resolution strategies, configuration, and the standard errors
// shared by the dbtables packages.
package types
