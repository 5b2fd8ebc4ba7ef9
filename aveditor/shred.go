package aveditor

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"

	"github.com/amenonsen/ansible/ashell"
)

// SecureEraser destroys the file at path so that it cannot be trivially
// recovered, then removes it. It must be a no-op (nil error) if the file
// is already gone.
type SecureEraser func(path string) error

const (
	shredMaxChunk = 2 * 1024 * 1024 // 2 MiB
	shredPasses   = 3
)

// DefaultSecureEraser prefers the external "shred" utility, falling
// back to an in-process random-overwrite when shred is unavailable or
// exits non-zero. Both paths are best-effort: no guarantee is made
// against recovery on log-structured or copy-on-write filesystems.
func DefaultSecureEraser(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	if shredPath, err := ashell.LookPath("shred"); err == nil {
		cmd := ashell.NewArgvCommand(shredPath, path)
		if runErr := cmd.Run(context.Background()); runErr == nil {
			return os.Remove(path)
		}
		// shred exists but failed (e.g. sandboxed, read-only fs): fall
		// through to the custom overwrite below.
	}

	if err := overwriteWithRandomData(path); err != nil {
		return err
	}
	return os.Remove(path)
}

// overwriteWithRandomData performs shredPasses passes of random data
// over the file, each pass drawing a fresh random chunk length in
// [chunkMax/2, chunkMax] and tiling it across the file from offset 0,
// flushing and fsyncing after each pass. This mirrors the documented
// fallback for when core-utils' shred isn't available.
func overwriteWithRandomData(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("aveditor: cannot stat %s for shred fallback: %w", path, err)
	}
	fileLen := info.Size()
	if fileLen == 0 {
		return nil
	}

	maxChunk := int64(shredMaxChunk)
	if fileLen < maxChunk {
		maxChunk = fileLen
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("aveditor: cannot open %s for shred fallback: %w", path, err)
	}
	defer f.Close()

	for pass := 0; pass < shredPasses; pass++ {
		chunkLen, err := randomChunkLength(maxChunk)
		if err != nil {
			return err
		}

		chunk := make([]byte, chunkLen)
		if _, err := rand.Read(chunk); err != nil {
			return fmt.Errorf("aveditor: cannot draw random shred data: %w", err)
		}

		if _, err := f.Seek(0, 0); err != nil {
			return fmt.Errorf("aveditor: cannot seek in %s: %w", path, err)
		}

		var written int64
		for written+chunkLen <= fileLen {
			n, err := f.Write(chunk)
			if err != nil {
				return fmt.Errorf("aveditor: shred write failed on %s: %w", path, err)
			}
			written += int64(n)
		}
		if remainder := fileLen - written; remainder > 0 {
			if _, err := f.Write(chunk[:remainder]); err != nil {
				return fmt.Errorf("aveditor: shred partial write failed on %s: %w", path, err)
			}
		}

		if err := f.Sync(); err != nil {
			return fmt.Errorf("aveditor: shred fsync failed on %s: %w", path, err)
		}
	}

	return nil
}

// randomChunkLength draws a chunk length uniformly from [max/2, max],
// matching each shred pass using a differently sized tiling chunk.
func randomChunkLength(max int64) (int64, error) {
	min := max / 2
	if min < 1 {
		min = 1
	}
	span := max - min + 1
	if span <= 0 {
		return max, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, fmt.Errorf("aveditor: cannot draw random chunk length: %w", err)
	}
	return min + n.Int64(), nil
}
