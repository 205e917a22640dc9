package cmd

import (
	"cqlterm/internal/app"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	logFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cqlterm",
	Short: "Browse keyspaces and edit statements in the terminal",
	Long: `cqlterm is a terminal client front-end. It shows a keyspace navigator,
a statement editor and an activity log side by side. Tab and Shift+Tab move
focus between the panels; ctrl+c quits.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an invalid configuration)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := app.NewApplication(app.NewConfig(configPath, debug, logFile))
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file layered over the user and project files")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newConfigCmd())
}
