// Package fileio provides filesystem primitives as engine-callable tools.
//
// The provider exposes five scalar operations plus a stat helper:
//   - lsmode: render a raw stat mode as an "ls -l" style string
//   - mkdir: create a single directory with explicit permission bits
//   - readfile: load an entire file into a blob value
//   - symlink: create a symbolic link
//   - writefile: write a blob to a file, creating missing parents
//   - stat: normalized file metadata with UTC timestamps
//
// All operations are synchronous and share no state across calls; the
// only process-wide input is the engine's configured maximum blob size,
// which the reader treats as read-only. Reads of missing or unreadable
// files yield a null blob rather than an error; writes to missing paths
// report explicit failures. That asymmetry is deliberate and callers
// depend on it.
//
// Platform differences (stat timestamp normalization, symlink support)
// are isolated in build-tagged files rather than runtime branches.
package fileio
