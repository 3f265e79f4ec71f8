// Package backup creates timestamped sibling copies of files that are
// about to be mutated, preserving mode and modification time.
package backup

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// timestampLayout matches the backup suffix convention:
// <path>.backup_YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// Create copies path to a timestamped sibling and returns the backup
// path. A missing source is a no-op, not an error. Two backups of the
// same file within one second share a name and the later one wins;
// callers accept that.
func Create(out io.Writer, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	backupPath := path + ".backup_" + time.Now().Format(timestampLayout)
	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("creating backup of %s: %w", path, err)
	}

	// Carry over the original's permissions and mtime where the
	// platform allows. Windows has no Unix permission bits.
	if runtime.GOOS != "windows" {
		_ = os.Chmod(backupPath, info.Mode().Perm())
	}
	_ = os.Chtimes(backupPath, time.Now(), info.ModTime())

	fmt.Fprintf(out, "Created backup: %s\n", backupPath)
	return backupPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
