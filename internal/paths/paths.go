// Package paths resolves the configuration directory and the database file
// location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Jirwin42/attendence/pkg/types"
)

// appName names the per-user configuration directory.
const appName = "dbtables"

// Environment variable names for overrides.
const (
	EnvConfigDir = "DBTABLES_CONFIG_DIR"
	EnvDatabase  = "DBTABLES_DB"
)

// HistoryFileName is the readline history file kept in the config directory.
const HistoryFileName = "history"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/dbtables (fallback ~/.config/dbtables)
// macOS:   ~/Library/Application Support/dbtables
// Windows: %APPDATA%/dbtables
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > DBTABLES_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabase returns the database file path following the precedence
// chain: flag > configYAMLValue > DBTABLES_DB env > $(CWD)/mydatabase.db.
func ResolveDatabase(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, types.DefaultDatabase), nil
}

// HistoryFile returns the readline history path inside configDir.
func HistoryFile(configDir string) string {
	return filepath.Join(configDir, HistoryFileName)
}
