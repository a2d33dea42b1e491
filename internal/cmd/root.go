package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"rmux/internal/supervisor"
	"rmux/internal/termstyle"
)

// NewRootCmd creates the root cobra command. With no subcommand it starts
// the multiplexer itself; "version" prints the release version.
func NewRootCmd() *cobra.Command {
	var shellFlag string

	rootCmd := &cobra.Command{
		Use:   "rmux",
		Short: "A terminal multiplexer",
		Long:  "rmux splits one terminal session into multiple panes and windows, each running its own shell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := supervisor.DiscoverShell(shellFlag)
			err := supervisor.Run(supervisor.Options{ShellCommand: shell})
			if errors.Is(err, supervisor.ErrNestedSession) {
				cmd.PrintErrln(termstyle.RedX() + " " + termstyle.Red(err.Error()))
				return nil
			}
			return err
		},
	}
	rootCmd.Flags().StringVar(&shellFlag, "shell", os.Getenv("SHELL"), "shell command new panes spawn")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
