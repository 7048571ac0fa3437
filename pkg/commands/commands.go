// Package commands provides high-level command implementations for artlink.
//
// Each command is implemented in its own subdirectory:
//   - link/      - LinkItems, links explicitly requested artifacts
//   - linkdeps/  - LinkDeps, links the project's dependency set
//   - internal/  - shared materialization and result recording
//
// This file re-exports the command entry points.
package commands

import (
	"github.com/arthur-debert/artlink/pkg/commands/link"
	"github.com/arthur-debert/artlink/pkg/commands/linkdeps"
	"github.com/arthur-debert/artlink/pkg/types"
)

// LinkItems links explicitly configured artifact items.
type LinkItemsOptions = link.LinkItemsOptions

func LinkItems(opts LinkItemsOptions) (*types.Result, error) {
	return link.LinkItems(opts)
}

// LinkDeps links the filtered dependency set of a project.
type LinkDepsOptions = linkdeps.LinkDepsOptions

func LinkDeps(opts LinkDepsOptions) (*types.Result, error) {
	return linkdeps.LinkDeps(opts)
}
