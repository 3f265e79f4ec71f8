package cli

import (
	"github.com/cursorid-labs/cursorid/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` rotates the identifiers Cursor uses for telemetry and device
fingerprinting: the machine ids kept in storage.json and, on macOS and
Windows, the hardware-id probe baked into the app's bundled main.js.
Every mutated file gets a timestamped backup first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Bare invocation runs the full reset, same as `cursorid reset`.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd.OutOrStdout(), resetOptions{})
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
