package envfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultPath is the file name used when Read is given an empty path.
const DefaultPath = ".env"

// Options configures Read.
type Options struct {
	// Override replaces variables already present in the environment.
	// Default: false (existing environment entries win).
	Override bool

	// Dir is where the upward search starts. Empty = the working directory.
	Dir string

	// Logger receives debug-level discovery events. Nil = logrus.New().
	Logger *logrus.Logger
}

// Read loads the env file at path into the process environment.
// It returns false and no error when no matching file exists anywhere on the
// search path.
func Read(path string, opts Options) (bool, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}
	if path == "" {
		path = DefaultPath
	}

	resolved, err := Find(path, opts.Dir)
	if err != nil {
		return false, err
	}
	if resolved == "" {
		log.Debugf("env file %s not found", path)
		return false, nil
	}

	if opts.Override {
		err = godotenv.Overload(resolved)
	} else {
		err = godotenv.Load(resolved)
	}
	if err != nil {
		return false, fmt.Errorf("load env file %s: %w", resolved, err)
	}

	log.Debugf("loaded env file %s (override: %t)", resolved, opts.Override)
	return true, nil
}

// Find resolves path to an existing file. A path naming an existing file is
// returned as is. Otherwise path is joined with dir and each of its ancestors
// until a regular file is found. Returns "" when nothing matches.
func Find(path, dir string) (string, error) {
	if isFile(path) {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", nil
	}

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(dir, path)
		if isFile(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Parse reads env file content without touching the process environment.
func Parse(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return values, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
