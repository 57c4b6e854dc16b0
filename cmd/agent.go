package cmd

import (
	"github.com/spf13/cobra"
)

func newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Serve the portfolio to AI assistants over MCP",
		Long: `Runs an MCP server on stdio exposing the portfolio as tools: listing
parts, opening a part's documentation, running terminal commands and reading
the profile.

Configure it in your assistant's MCP settings with the command
'dxfolio agent'. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunAgent()
		},
	}
}
