// Package integration provides CLI integration tests for dbtables.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// dbtablesBin is the path to the built dbtables binary.
	dbtablesBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config
// directory and database file.
type TestEnv struct {
	t        *testing.T
	TempDir  string
	Config   string
	Database string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build dbtables: %v", buildErr)
	}
	if dbtablesBin == "" {
		t.Fatal("dbtables binary not built (dbtablesBin is empty)")
	}

	tempDir := t.TempDir()
	return &TestEnv{
		t:        t,
		TempDir:  tempDir,
		Config:   filepath.Join(tempDir, "config"),
		Database: filepath.Join(tempDir, "test.db"),
	}
}

// CmdResult holds the result of a dbtables command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// cleanEnv returns os.Environ() with all DBTABLES_* and XDG_* variables
// removed.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "DBTABLES_") || strings.HasPrefix(e, "XDG_") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// Run executes dbtables against the environment's config dir and database,
// feeding stdin to the process.
func (e *TestEnv) Run(stdin string, args ...string) CmdResult {
	e.t.Helper()
	allArgs := append([]string{"--config-dir", e.Config, "--db", e.Database}, args...)
	return e.RunWith(nil, "", stdin, allArgs...)
}

// RunWith executes dbtables with args unchanged, extra env entries and an
// optional working directory.
func (e *TestEnv) RunWith(env []string, workDir, stdin string, args ...string) CmdResult {
	e.t.Helper()

	cmd := exec.Command(dbtablesBin, args...)
	cmd.Env = append(cleanEnv(), env...)
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run dbtables: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes dbtables and fails the test if it returns non-zero.
func (e *TestEnv) MustRun(stdin string, args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(stdin, args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("dbtables %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// Answers joins prompt answers into stdin content.
func Answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
