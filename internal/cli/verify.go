package cli

import (
	"fmt"

	"github.com/cursorid-labs/cursorid/internal/cursor"
	"github.com/cursorid-labs/cursorid/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check storage.json for well-formed telemetry ids",
	Long: `Validate Cursor's storage.json against the expected shape: 64-hex
machine ids, a dashed lowercase device UUID, and a brace-wrapped
uppercase SQM id. Useful after a reset or before filing a bug.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := resolveStoragePath(cursor.DetectFamily())
		if err != nil {
			return fmt.Errorf("resolving storage path: %w", err)
		}

		res, err := storage.VerifyFile(path)
		if err != nil {
			return err
		}
		if res.Valid {
			fmt.Fprintf(out, "%s: all telemetry ids have the expected shape\n", path)
			return nil
		}

		for _, issue := range res.Issues {
			fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%d issue(s) found in %s", len(res.Issues), path)
	},
}
