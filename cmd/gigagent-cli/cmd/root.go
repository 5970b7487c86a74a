package cmd

import (
	"os"

	"github.com/nfrund/gigagent/internal/config"
	"github.com/nfrund/gigagent/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gigagent-cli",
		Short: "GigAgent site tool",
		Long: `gigagent-cli renders the GigAgent landing page outside the server.

Available commands:
  export    Render the page and static assets into a directory
  check     Validate the content catalog and in-page anchors
  version   Print the version

Use "gigagent-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.New(config.New())
		},
	}
	root.AddCommand(newExportCmd(), newCheckCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
