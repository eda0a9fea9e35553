package typenv

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
)

// WriteExampleFile writes Example() to path with atomic write semantics.
// Parent directories are created as needed; the file gets 0644 permissions.
func (e *Env) WriteExampleFile(path string) error {
	return writeFileAtomic(path, []byte(e.Example()), 0644)
}

// writeFileAtomic stages data in a sibling file and renames it over path.
// A failed write leaves any previous file at path intact.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// Sibling of path, so the rename never crosses filesystems
	tempPath, err := generateTempFileName(path)
	if err != nil {
		return err
	}

	var staged bool
	defer func() {
		if staged {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, data, perm); err != nil {
		return err
	}
	staged = true

	// os.WriteFile applies the umask; set perm exactly
	if err := os.Chmod(tempPath, perm); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	staged = false

	return nil
}

// generateTempFileName returns path + ".tmp." + 16 random hex chars.
func generateTempFileName(path string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return path + ".tmp." + hex.EncodeToString(randomBytes), nil
}
