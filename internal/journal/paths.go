package journal

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the directory holding the journal database.
const ConfigDirEnv = "JBOOKDL_CONFIG_DIR"

const dbFileName = "journal.db"

// DefaultPath resolves the journal database location: the directory
// named by JBOOKDL_CONFIG_DIR, else "<user config dir>/jbookdl". The
// directory is created if missing.
func DefaultPath() (string, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		cdr, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cdr, "jbookdl")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if abs == "" {
		return "", errors.New("config dir is empty")
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", err
	}
	return filepath.Join(abs, dbFileName), nil
}
