// Package dirs resolves XDG Base Directory paths for paintourney.
package dirs

import (
	"os"
	"path/filepath"
)

const appName = "paintourney"

// LocalDirName is the per-project override directory looked up in the
// current working directory.
const LocalDirName = ".paintourney"

// ConfigDir returns the global configuration directory.
// Resolution order: XDG_CONFIG_HOME/paintourney > ~/.config/paintourney.
func ConfigDir() string {
	return resolve("", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the state directory used for the debug log.
// Resolution order: PAINTOURNEY_STATE_DIR > XDG_STATE_HOME/paintourney > ~/.local/state/paintourney.
func StateDir() string {
	return resolve("PAINTOURNEY_STATE_DIR", "XDG_STATE_HOME", ".local", "state")
}

// DebugLogPath returns the file the debug log is redirected to while the
// terminal UI is running.
func DebugLogPath() string {
	return filepath.Join(StateDir(), "debug.log")
}

func resolve(overrideVar, xdgVar string, homeParts ...string) string {
	if overrideVar != "" {
		if dir := os.Getenv(overrideVar); dir != "" {
			return dir
		}
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	base := "."
	if home, err := os.UserHomeDir(); err == nil {
		base = home
	}
	return filepath.Join(append(append([]string{base}, homeParts...), appName)...)
}
