package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempPath returns a hidden sibling of dst that keeps dst's extension.
func TempPath(dst string) string {
	dir, name := filepath.Split(dst)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp%s", name, uuid.NewString(), filepath.Ext(dst)))
}

// WriteAtomic streams fn's output into a temporary file next to dst and
// renames it into place only when fn and the close both succeed.
func WriteAtomic(dst string, fn func(w io.Writer) error) error {
	tmp := TempPath(dst)

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrWrite, dst, err)
	}

	if err := fn(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: close %s: %w", ErrWrite, dst, err)
	}

	return Commit(tmp, dst)
}

// Commit renames tmp onto dst, removing tmp if the rename fails.
func Commit(tmp, dst string) error {
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename into %s: %w", ErrWrite, dst, err)
	}
	return nil
}
