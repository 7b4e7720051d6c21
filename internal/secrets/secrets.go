// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets finds the Places API credential outside the config file:
// in a .secrets/ directory holding one key per file, and in a .env file.
//
// Known key files: google-places-api-key.
package secrets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// PlacesAPIKey is the key file holding the Places API credential.
const PlacesAPIKey = "google-places-api-key"

// Load collects the key files in dir, keyed by file name. Values are trimmed,
// so a key saved by `echo KEY > .secrets/google-places-api-key` loads cleanly.
// Blank files, dotfiles, and subdirectories are ignored, and a missing dir
// yields an empty map. A key file that cannot be read is reported to warn and
// skipped; the caller then falls through to its other credential sources.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	if warn == nil {
		warn = io.Discard
	}

	keys := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		value, err := readKey(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping secret %s: %v\n", name, err)
			continue
		}
		if value != "" {
			keys[name] = value
		}
	}
	return keys, nil
}

func readKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// LoadDotEnv sets process environment variables from the dotenv file at path.
// Variables already set in the environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
