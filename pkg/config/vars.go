package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "morphdb"

	// DatabaseFile is the default name of the SQLite database file
	// inside DataDir.
	DatabaseFile = "morphdb.db"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/morphdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the database file.
// Returns ~/.local/share/morphdb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/morphdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/morphdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatabasePath returns the default full path to the SQLite file.
func DatabasePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), DatabaseFile)
}
