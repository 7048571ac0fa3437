// Package filesystem provides the OS-backed implementation of types.FS.
//
// Copies are written to a temporary file in the destination directory and
// renamed into place, so a reader never observes a partially written
// artifact.
package filesystem
