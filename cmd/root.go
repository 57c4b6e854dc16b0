package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"dxfolio/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	catalogPath string
	debug       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dxfolio",
	Short: "An engineering portfolio you browse like a schematic",
	Long: `dxfolio opens an interactive schematic sheet in the terminal. Each part on
the sheet is a project or role: click it, or type 'open <designator>' in the
built-in terminal, to read its documentation.

Run without a subcommand to start the interactive session.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a bad config or catalog)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dxfolio version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	// RunE is bound here rather than in the literal to avoid an
	// initialization cycle (runRoot -> newApplication -> rootCmd).
	rootCmd.RunE = runRoot

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load this config file instead of the user and project layers")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Portfolio catalog YAML (default: built-in sheet)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAgentCmd())
}

// newApplication bootstraps the application from the persistent flags.
func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(configPath, catalogPath, debug, rootCmd.Version))
}

func runRoot(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer cancel()
	return application.RunTUI(ctx)
}
