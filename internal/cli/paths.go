package cli

import (
	"fmt"
	"os"

	"github.com/cursorid-labs/cursorid/internal/cursor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the resolved Cursor file locations",
	Long: `Print the storage.json and main.js paths a reset would touch on this
machine, and whether each file currently exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		family := cursor.DetectFamily()
		fmt.Fprintf(out, "Platform: %s\n", family)

		storagePath, err := resolveStoragePath(family)
		if err != nil {
			fmt.Fprintf(out, "Storage file: unavailable (%v)\n", err)
		} else {
			fmt.Fprintf(out, "Storage file: %s (%s)\n", storagePath, describe(storagePath))
		}

		scriptPath, err := resolveAppScriptPath(family)
		switch {
		case err != nil && isPathGap(err):
			fmt.Fprintf(out, "App script:   none (%v)\n", err)
		case err != nil:
			fmt.Fprintf(out, "App script:   unavailable (%v)\n", err)
		default:
			fmt.Fprintf(out, "App script:   %s (%s)\n", scriptPath, describe(scriptPath))
		}
		return nil
	},
}

func describe(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "present"
}
