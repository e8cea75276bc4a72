// Package pipeline runs one renaming pass over a directory: discover the
// Web Connect files, then for each file in order extract its metadata,
// build the target name, resolve collisions and rename.
//
// Per-file states:
//
//	Discovered → Extracted → Named → Moved
//	                               ↘ Unchanged (already named)
//	Discovered → Skipped (missing fields, bad date)
//	Discovered → Failed  (read or rename error)
//
// Errors for one file never stop the run. Only an invalid root directory
// does, and it is detected before any file is touched.
package pipeline
