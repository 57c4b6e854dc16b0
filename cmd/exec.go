package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run one terminal command and print its output",
		Long: `Runs a single line through the portfolio terminal without starting the
interactive session, for example:

  dxfolio exec list
  dxfolio exec open U_BAE_01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunExec(strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}
