package cursor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cursorid-labs/cursorid/internal/branding"
)

// Path segments under the platform base directory.
const (
	AppDirName       = "Cursor"
	UserDir          = "User"
	GlobalStorageDir = "globalStorage"
	StorageFileName  = "storage.json"
)

// darwinMainJS is where the macOS app bundle keeps the compiled entry script.
const darwinMainJS = "/Applications/Cursor.app/Contents/Resources/app/out/main.js"

var (
	// ErrEnvUnset signals that a required environment variable for path
	// derivation is missing. Callers skip the affected action.
	ErrEnvUnset = errors.New("required environment variable is not set")

	// ErrNoAppScript signals that the platform has no bundled main.js
	// to patch (Linux builds derive their machine id elsewhere).
	ErrNoAppScript = errors.New("no application script on this platform")
)

// Family is the coarse OS category controlling which file paths and
// patch rules apply.
type Family int

const (
	FamilyLinux Family = iota
	FamilyDarwin
	FamilyWindows
)

func (f Family) String() string {
	switch f {
	case FamilyDarwin:
		return "macos"
	case FamilyWindows:
		return "windows"
	default:
		return "linux"
	}
}

// DetectFamily maps the running OS to its family. Anything that is not
// Windows or macOS is treated as Linux.
func DetectFamily() Family {
	switch runtime.GOOS {
	case "windows":
		return FamilyWindows
	case "darwin":
		return FamilyDarwin
	default:
		return FamilyLinux
	}
}

// StoragePath returns the storage.json location for the running OS.
func StoragePath() (string, error) {
	return StoragePathFor(DetectFamily())
}

// StoragePathFor returns the storage.json location for a platform family.
// It checks the CURSORID_STORAGE env override first, then the platform
// convention: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, and the XDG config directory on Linux.
func StoragePathFor(f Family) (string, error) {
	if v := os.Getenv(branding.EnvVar("STORAGE")); v != "" {
		return v, nil
	}
	switch f {
	case FamilyWindows:
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA: %w", ErrEnvUnset)
		}
		return filepath.Join(appData, AppDirName, UserDir, GlobalStorageDir, StorageFileName), nil
	case FamilyDarwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", AppDirName, UserDir, GlobalStorageDir, StorageFileName), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName, UserDir, GlobalStorageDir, StorageFileName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, ".config", AppDirName, UserDir, GlobalStorageDir, StorageFileName), nil
	}
}

// MainJSPath returns the bundled main.js location for the running OS.
func MainJSPath() (string, error) {
	return MainJSPathFor(DetectFamily())
}

// MainJSPathFor returns the bundled main.js location for a platform
// family, after checking the CURSORID_MAIN_JS env override. The Windows
// installer is per-user, so the path hangs off LOCALAPPDATA rather than
// USERPROFILE or Program Files.
func MainJSPathFor(f Family) (string, error) {
	if v := os.Getenv(branding.EnvVar("MAIN_JS")); v != "" {
		return v, nil
	}
	switch f {
	case FamilyDarwin:
		return darwinMainJS, nil
	case FamilyWindows:
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", fmt.Errorf("LOCALAPPDATA: %w", ErrEnvUnset)
		}
		return filepath.Join(localAppData, "Programs", "cursor", "resources", "app", "out", "main.js"), nil
	default:
		return "", ErrNoAppScript
	}
}

// ProductJSONPath returns the app manifest sitting next to the app's
// out/ directory, given the main.js path.
func ProductJSONPath(mainJS string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(mainJS)), "product.json")
}
