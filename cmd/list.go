package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var passives bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parts on the sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunList(cmd.OutOrStdout(), passives)
		},
	}
	cmd.Flags().BoolVar(&passives, "passives", false, "Include passive components")
	return cmd
}
