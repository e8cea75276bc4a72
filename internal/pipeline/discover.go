package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidRootDirectory is returned when the directory to scan does not
// exist or is not a directory. It halts the whole run.
var ErrInvalidRootDirectory = errors.New("is not a valid directory")

// Web Connect extensions (lowercase, with leading dot). Matching is
// case-insensitive.
var webConnectExtensions = map[string]bool{
	".qfx": true,
	".qbo": true,
}

// SourceFile is a Web Connect download found by [Discover].
type SourceFile struct {
	Path string // Full path.
	Dir  string
	Name string // Base name, extension included.
	Ext  string // Extension as found on disk, leading dot included.
}

// Discover lists the direct children of dir (no recursion) whose extension
// is .qfx or .qbo in any case. Directories are skipped, including
// symlinks to directories. Results are sorted by name.
func Discover(dir string) ([]SourceFile, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("'%s' %w", dir, ErrInvalidRootDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if !webConnectExtensions[strings.ToLower(ext)] {
			continue
		}
		path := filepath.Join(dir, name)
		if e.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil || target.IsDir() {
				continue
			}
		}
		files = append(files, SourceFile{Path: path, Dir: dir, Name: name, Ext: ext})
	}
	return files, nil
}
