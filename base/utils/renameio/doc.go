// Package renameio writes output files atomically: data goes to a hidden
// temporary file next to the destination, which then replaces the
// destination with a single rename.
//
// Caveat: this package requires the file system rename(2) implementation to be
// atomic. Notably, this is not the case when using NFS with multiple clients.
package renameio
