package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver picks a free destination for each rename. A path is
// taken when it exists on disk (and has not been vacated earlier in the
// run) or was claimed by an earlier file in the run. Tracking claims lets a
// dry run report the same names a real run would produce. All methods are
// goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	exists   func(string) bool
	claimed  map[string]string // destination path → source that claimed it
	released map[string]bool   // source paths vacated by a claim
}

// NewCollisionResolver creates a resolver that checks the filesystem with
// os.Lstat.
func NewCollisionResolver() *CollisionResolver {
	return NewCollisionResolverFunc(pathExists)
}

// NewCollisionResolverFunc creates a resolver with a custom existence check.
func NewCollisionResolverFunc(exists func(string) bool) *CollisionResolver {
	return &CollisionResolver{
		exists:   exists,
		claimed:  make(map[string]string),
		released: make(map[string]bool),
	}
}

// Resolve returns the destination for moving src to target. unchanged is
// true when src already carries its target name (compared
// case-insensitively), in which case no rename should happen.
//
// When target is taken, " (N)" is inserted between the stem and the
// extension for N = 1, 2, … until a free name is found. A candidate equal
// to src also counts as unchanged, so re-running over files that were
// suffixed on an earlier run leaves them alone.
func (cr *CollisionResolver) Resolve(src, target string) (dst string, unchanged bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if SamePath(src, target) {
		return src, true
	}
	if !cr.taken(target) {
		return target, false
	}

	dir := filepath.Dir(target)
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if SamePath(src, candidate) {
			return src, true
		}
		if !cr.taken(candidate) {
			return candidate, false
		}
	}
}

// Claim records that src was (or, in a dry run, would be) moved to dst.
func (cr *CollisionResolver) Claim(src, dst string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.claimed[dst] = src
	cr.released[src] = true
	delete(cr.released, dst)
}

func (cr *CollisionResolver) taken(path string) bool {
	if _, ok := cr.claimed[path]; ok {
		return true
	}
	return cr.exists(path) && !cr.released[path]
}

// SamePath reports whether a and b name the same file, ignoring case.
func SamePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
