package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/forja-fit/forja/internal/models"
)

func getSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "forja")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "current_session.toml"), nil
}

// SaveSessionState writes the in-progress session to the state file. The
// file is the working copy between commands; the database only sees the
// session through the synchronizer.
func SaveSessionState(sess *models.Session) error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(sess)
}

func LoadSessionState() (*models.Session, error) {
	path, err := getSessionPath()
	if err != nil {
		return nil, err
	}

	var sess models.Session
	_, err = toml.DecodeFile(path, &sess)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

func ClearSessionState() error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// SessionExists reports whether a session is currently in progress. The
// aggregate's start precondition reads this: at most one active session.
func SessionExists() bool {
	path, err := getSessionPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
