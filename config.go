package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// getExportDir returns the directory luna/exportDocs writes to when the
// client does not pass a path. It is created lazily by the command.
func getExportDir() (string, error) {
	configDir, err := getUserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "luna-lsp"), nil
}

func getUserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		usr, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}
		return filepath.Join(usr.HomeDir, ".config"), nil
	}
	return configDir, nil
}
