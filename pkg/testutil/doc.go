// Package testutil provides utilities for testing artlink components.
//
// Key components:
//   - TestEnvironment: an isolated temp directory holding a local
//     repository, an output directory and a work directory, with HOME and
//     the XDG variables pointed inside it
//   - FaultyFS: a types.FS wrapper that injects link failures, used to
//     exercise the fallback strategies without a second filesystem
//
// All test data should be defined inline, not in external files.
package testutil
