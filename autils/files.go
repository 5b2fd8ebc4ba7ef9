package autils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Exists checks if the given path exists.
func Exists(target string) bool {
	_, err := os.Stat(target)
	return err == nil
}

// FileExists checks if the given file exists.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

// ErrNotDirectory is the error returned when a directory is expected but not found.
var ErrNotDirectory = errors.New("path is not a directory")

// ResolveDirectory checks if the target is a directory and returns its clean path.
func ResolveDirectory(target string) (string, error) {
	if target == "" {
		return "", errors.New("directory path not found")
	}
	target = filepath.Clean(target)
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}
	return target, nil
}

// TempDirOptions defines options for creating temporary directories.
type TempDirOptions struct {
	DirRoot      string // Root directory for the temp dir, defaults to the system temp dir if empty.
	Name         string // Name prefix of the temp dir, "tmp-UUID" if empty; os.MkdirTemp appends a random suffix.
	AppendUUIDv4 bool   // If true and name is not empty, then append "-UUID" (a version 7 UUID) to the name.
}

// CreateTempDir creates a temporary directory with default options.
func CreateTempDir() (string, error) {
	return CreateTempDirWithOptions(nil)
}

// CreateTempDirWithOptions creates a temporary directory with the
// specified options. The directory is created mode 0700 (os.MkdirTemp's
// default), which is what makes it safe scratch space for vault
// plaintext.
func CreateTempDirWithOptions(options *TempDirOptions) (string, error) {
	if options == nil {
		options = &TempDirOptions{}
	}
	dir := strings.TrimSpace(options.DirRoot)
	name := strings.TrimSpace(options.Name)
	if name == "" {
		name = "tmp-" + NewUUIDAsString()
	} else if options.AppendUUIDv4 {
		name += "-" + NewUUIDAsString()
	}
	return os.MkdirTemp(dir, name)
}
