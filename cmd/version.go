package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const versionTemplate = `{{printf "cqlterm version %s\n" .Version}}`

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cqlterm",
		Long:  `All software has versions. This is cqlterm's.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cqlterm version %s\n", rootCmd.Version)
		},
	}
}
