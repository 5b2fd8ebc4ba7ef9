package aveditor

import (
	"fmt"
	"os"
	"syscall"
)

// atomicSwap moves src over dest. If dest exists, its mode/uid/gid are
// captured before it is unlinked, and restored on src's inode after the
// rename so a rewritten target keeps its prior permissions and
// ownership. If dest did not exist, src is simply renamed into place.
func atomicSwap(src, dest string) error {
	prev, hadDest, err := statOwnership(dest)
	if err != nil {
		return err
	}

	if hadDest {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("aveditor: cannot remove existing %s: %w", dest, err)
		}
	}

	if err := os.Rename(src, dest); err != nil {
		return fmt.Errorf("aveditor: cannot move %s into place at %s: %w", src, dest, err)
	}

	if hadDest {
		if err := restoreOwnership(dest, prev); err != nil {
			return err
		}
	}

	return nil
}

// fileOwnership captures the permission bits and owning uid/gid of a
// file, to be reapplied after it is atomically replaced.
type fileOwnership struct {
	mode os.FileMode
	uid  uint32
	gid  uint32
}

func statOwnership(path string) (fileOwnership, bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fileOwnership{}, false, nil
	}
	if err != nil {
		return fileOwnership{}, false, fmt.Errorf("aveditor: cannot stat %s: %w", path, err)
	}

	var own fileOwnership
	own.mode = info.Mode()
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		own.uid = sys.Uid
		own.gid = sys.Gid
	}
	return own, true, nil
}

func restoreOwnership(path string, own fileOwnership) error {
	if err := os.Chmod(path, own.mode); err != nil {
		return fmt.Errorf("aveditor: cannot restore mode on %s: %w", path, err)
	}
	if err := os.Chown(path, int(own.uid), int(own.gid)); err != nil {
		return fmt.Errorf("aveditor: cannot restore ownership on %s: %w", path, err)
	}
	return nil
}
