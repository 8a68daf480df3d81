package config

import (
	"os"
	"path/filepath"
)

const envDataDir = "JEJUM_DATA_DIR"

// Config holds every filesystem path the app touches. The state file is the
// source of truth; the database is a rebuildable projection.
type Config struct {
	DataDir     string
	StatePath   string
	DBPath      string
	NotesDir    string
	PluginsPath string
}

// New resolves the data directory: explicit flag value, then JEJUM_DATA_DIR,
// then ~/.local/share/jejum.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		dataDir = os.Getenv(envDataDir)
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = filepath.Join(home, ".local", "share", "jejum")
	}
	return Config{
		DataDir:     dataDir,
		StatePath:   filepath.Join(dataDir, "state.json"),
		DBPath:      filepath.Join(dataDir, "jejum.db"),
		NotesDir:    filepath.Join(dataDir, "notes"),
		PluginsPath: filepath.Join(dataDir, "plugins", "plugins.json"),
	}, nil
}
