package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write config.yaml and create the database file",
		Long: `Write the effective settings (after flags, config and environment) to
config.yaml in the config directory, then open the database so the file exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configPath := filepath.Join(a.configDir, configFileExt)
	if err := writeConfig(configPath, a); err != nil {
		return sysError("write config: %s", err)
	}

	// Listing tables opens the database, which creates the file.
	if _, err := a.store().Tables(cmd.Context()); err != nil {
		return sysError("initialize database: %s", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to %s\n", configPath)
	fmt.Fprintf(out, "Database ready at %s\n", a.cfg.Database)
	return nil
}

// writeConfig marshals the effective configuration to path.
func writeConfig(path string, a *app) error {
	data, err := yaml.Marshal(&a.cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
