package conf

import (
	"os"
	"path/filepath"
)

func ensurePath(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Keep perms restrictive, the directory sits next to connection settings
		if err = os.MkdirAll(path, 0700); err != nil {
			return err
		}
	}
	return nil
}

// GetFileshareHome returns the configuration directory, creating it if
// needed. FILESHARE_HOME overrides the default "~/.fileshare".
func GetFileshareHome() (string, error) {
	fileshareHome := os.Getenv("FILESHARE_HOME")
	if fileshareHome == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		fileshareHome = filepath.Join(userHome, ".fileshare")
	}
	if err := ensurePath(fileshareHome); err != nil {
		return "", err
	}
	return fileshareHome, nil
}

// GetSSHDir returns the directory where private keys are resolved from
func GetSSHDir() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, ".ssh"), nil
}
