package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrRenameFailed is wrapped by every failed move.
var ErrRenameFailed = errors.New("rename failed")

// Rename moves src to dst. It refuses to replace an existing dst, since
// os.Rename would silently overwrite it on most platforms. There is no
// rollback and no retry.
func Rename(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: '%s' -> '%s': %w", ErrRenameFailed, src, dst, fs.ErrExist)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailed, err)
	}
	return nil
}
