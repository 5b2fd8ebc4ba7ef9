package aveditor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amenonsen/ansible/autils"
)

// ScopedTempFile is a scoped resource guard around one temp file: the
// path is tracked from creation, and Close destroys (securely erases)
// it on every exit path — normal return, content mismatch, or error.
// Call sites that create a ScopedTempFile must defer Close immediately;
// this models the "drop guard" discipline explicitly rather than
// relying on a finalizer, which is how Go's GC-driven destructors would
// otherwise replicate the original's unreliable-cleanup-on-exception bug.
type ScopedTempFile struct {
	path   string
	erase  SecureEraser
	erased bool
}

// NewScopedTempFile creates an empty temp file in the system temp
// directory and returns a guard over it. The caller must defer Close.
func NewScopedTempFile(eraser SecureEraser) (*ScopedTempFile, error) {
	dir, err := autils.CreateTempDirWithOptions(&autils.TempDirOptions{Name: "vault-edit"})
	if err != nil {
		return nil, fmt.Errorf("aveditor: cannot create scratch dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "vault-*")
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("aveditor: cannot create temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("aveditor: cannot close temp file: %w", err)
	}

	if eraser == nil {
		eraser = DefaultSecureEraser
	}

	return &ScopedTempFile{path: path, erase: eraser}, nil
}

// Path returns the temp file's path.
func (s *ScopedTempFile) Path() string {
	return s.path
}

// Write replaces the temp file's contents.
func (s *ScopedTempFile) Write(data []byte) error {
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("aveditor: cannot write temp file %s: %w", s.path, err)
	}
	return nil
}

// Read returns the temp file's current contents.
func (s *ScopedTempFile) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("aveditor: cannot read temp file %s: %w", s.path, err)
	}
	return data, nil
}

// Close securely erases and removes the temp file and its scratch
// directory. It is idempotent and safe to call multiple times (e.g.
// once explicitly on the success path and once more via defer).
func (s *ScopedTempFile) Close() error {
	if s.erased {
		return nil
	}
	s.erased = true

	if err := s.erase(s.path); err != nil {
		return fmt.Errorf("aveditor: secure erase failed for %s: %w", s.path, err)
	}
	// The scratch directory is ours alone; removing it cleans up the
	// now-unlinked temp file's parent with no further trace.
	_ = os.Remove(filepath.Dir(s.path))
	return nil
}
