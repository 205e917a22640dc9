package cmd

import (
	"cqlterm/internal/app"
	"cqlterm/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate and print the effective configuration",
		Long: `Loads the default, user, project and --config layers, checks the
result (including the keyspace tree) and prints the merged YAML.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, sources, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := app.BuildCoordinator(cfg); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sources) == 0 {
		fmt.Fprintln(out, "# built-in defaults")
	}
	for _, src := range sources {
		fmt.Fprintf(out, "# %s\n", src)
	}
	_, err = out.Write(data)
	return err
}
