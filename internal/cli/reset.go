package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cursorid-labs/cursorid/internal/backup"
	"github.com/cursorid-labs/cursorid/internal/config"
	"github.com/cursorid-labs/cursorid/internal/cursor"
	"github.com/cursorid-labs/cursorid/internal/patch"
	"github.com/cursorid-labs/cursorid/internal/storage"
	"github.com/cursorid-labs/cursorid/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	resetDryRun    bool
	resetSkipPatch bool
)

func init() {
	resetCmd.Flags().BoolVar(&resetDryRun, "dry-run", false, "Resolve paths and generate ids without writing anything")
	resetCmd.Flags().BoolVar(&resetSkipPatch, "skip-app-patch", false, "Leave the app's main.js untouched")
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rotate Cursor's telemetry identifiers",
	Long: `Overwrite the four telemetry ids in Cursor's storage.json with fresh
random values and, on macOS and Windows, patch the bundled main.js so
its hardware-id probe emits a random UUID. Backups are created next to
each file before it is touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd.OutOrStdout(), resetOptions{
			DryRun:       resetDryRun,
			SkipAppPatch: resetSkipPatch,
		})
	},
}

type resetOptions struct {
	DryRun       bool
	SkipAppPatch bool
}

// runReset is the whole pipeline: resolve the storage path, back the
// file up, rewrite the ids, report them, then patch main.js where the
// platform has one. A patch failure never undoes the id rewrite.
func runReset(out io.Writer, opts resetOptions) error {
	family := cursor.DetectFamily()

	storagePath, err := resolveStoragePath(family)
	if err != nil {
		return fmt.Errorf("resolving storage path: %w", err)
	}
	fmt.Fprintf(out, "Storage file: %s\n", storagePath)

	if opts.DryRun {
		return dryRun(out, family)
	}

	if _, err := backup.Create(out, storagePath); err != nil {
		return err
	}

	ids, err := storage.Update(storagePath)
	if err != nil {
		return fmt.Errorf("updating telemetry ids: %w", err)
	}

	fmt.Fprintf(out, "\nNew identifiers:\n")
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyMachineID, ids.MachineID)
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyMacMachineID, ids.MacMachineID)
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyDevDeviceID, ids.DevDeviceID)

	if opts.SkipAppPatch || (family != cursor.FamilyDarwin && family != cursor.FamilyWindows) {
		return nil
	}

	scriptPath, err := resolveAppScriptPath(family)
	if err != nil {
		fmt.Fprintf(out, "Skipping main.js patch: %v\n", err)
		return nil
	}
	warnIfUntestedVersion(out, scriptPath)
	if _, err := patch.File(out, scriptPath, family); err != nil {
		fmt.Fprintf(out, "Patching main.js failed: %v\n", err)
	}
	return nil
}

// dryRun shows what a reset would do, id values included, without
// touching either file.
func dryRun(out io.Writer, family cursor.Family) error {
	fmt.Fprintf(out, "\nWould write:\n")
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyMachineID, telemetry.NewMachineID())
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyMacMachineID, telemetry.NewMachineID())
	fmt.Fprintf(out, "  %s: %s\n", storage.KeyDevDeviceID, telemetry.NewDeviceID())
	fmt.Fprintf(out, "  %s: %s\n", storage.KeySQMID, telemetry.NewSQMID())

	scriptPath, err := resolveAppScriptPath(family)
	if err != nil {
		fmt.Fprintf(out, "Would skip main.js patch: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Would patch: %s\n", scriptPath)
	return nil
}

// resolveStoragePath prefers an explicit settings override, then the
// env/platform resolution in the cursor package.
func resolveStoragePath(family cursor.Family) (string, error) {
	config.Load()
	if v := config.Get(config.KeyStoragePath); v != "" {
		return v, nil
	}
	return cursor.StoragePathFor(family)
}

func resolveAppScriptPath(family cursor.Family) (string, error) {
	config.Load()
	if v := config.Get(config.KeyAppScript); v != "" {
		return v, nil
	}
	return cursor.MainJSPathFor(family)
}

// warnIfUntestedVersion checks the app's product.json next to main.js
// and flags builds newer than the last release the patch patterns were
// checked against. A missing or unreadable product.json is not a blocker.
func warnIfUntestedVersion(out io.Writer, mainJS string) {
	p, err := cursor.ReadProduct(cursor.ProductJSONPath(mainJS))
	if err != nil {
		return
	}
	name := p.NameShort
	if name == "" {
		name = "Cursor"
	}
	if cursor.NewerThanTested(p.Version) {
		fmt.Fprintf(out, "Note: %s %s is newer than the last release these patch patterns were checked against; inspect the result.\n", name, p.Version)
	}
}

// isPathGap reports whether err is a skippable resolution gap rather
// than a real failure.
func isPathGap(err error) bool {
	return errors.Is(err, cursor.ErrEnvUnset) || errors.Is(err, cursor.ErrNoAppScript)
}
