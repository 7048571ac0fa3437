// Package types defines the core data model used throughout artlink.
// This includes artifact coordinates, resolved artifact references,
// declared dependencies, explicit artifact items and the results a run
// produces.
package types
