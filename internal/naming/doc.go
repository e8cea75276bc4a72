// Package naming derives the target filename for a statement download and
// moves the file there without overwriting anything.
//
//   - BuildFilename(metadata, ext, fallback) → "{bank} {account} {start} to {end}{ext}"
//   - FormatDate("20120605120000") → "2012-06-05"
//   - CollisionResolver.Resolve(src, target) → free destination or unchanged
//   - Rename(src, dst) → single attempt, never replaces dst
package naming
