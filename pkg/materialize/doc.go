// Package materialize puts an artifact file at its destination.
//
// The engine always tries a hard link first. When the link fails because
// source and destination live on different devices, the configured Fallback
// decides what happens instead. Every other failure is returned as a
// MATERIALIZE error.
package materialize
