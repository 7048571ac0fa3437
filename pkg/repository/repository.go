// Package repository resolves coordinates to files in a local repository
// laid out as root/group/path/artifactId/baseVersion/.
package repository

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver turns a coordinate into a file-backed artifact
type Resolver interface {
	Resolve(c types.Coordinate) (types.ArtifactRef, error)
}

// DefaultRoot returns ~/.m2/repository
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}

// Local resolves against a directory tree on disk. It never downloads.
type Local struct {
	root   string
	fs     types.FS
	logger zerolog.Logger
}

// NewLocal creates a resolver rooted at root, or DefaultRoot when empty
func NewLocal(root string, fs types.FS, logger zerolog.Logger) *Local {
	if root == "" {
		root = DefaultRoot()
	}
	return &Local{root: root, fs: fs, logger: logger}
}

// Root returns the repository root
func (l *Local) Root() string {
	return l.root
}

// Path returns where c lives inside the repository
func (l *Local) Path(c types.Coordinate) string {
	a := types.NewArtifactRef(c, "", "")
	return filepath.Join(layout.RepositoryDir(l.root, a), layout.RepositoryFileName(a, false))
}

// Resolve finds c in the repository
func (l *Local) Resolve(c types.Coordinate) (types.ArtifactRef, error) {
	if c.Version == "" {
		return types.ArtifactRef{}, errors.Newf(errors.ErrResolve, "cannot resolve %s without a version", c.Key()).
			WithDetail("artifact", c.String())
	}
	if c.Type == "" {
		c.Type = types.DefaultType
	}

	path := l.Path(c)
	info, err := l.fs.Stat(path)
	if err != nil {
		return types.ArtifactRef{}, errors.Wrapf(err, errors.ErrResolve, "artifact %s not found in %s", c, l.root).
			WithDetail("artifact", c.String()).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return types.ArtifactRef{}, errors.Newf(errors.ErrResolve, "artifact %s resolves to a directory", c).
			WithDetail("path", path)
	}

	l.logger.Trace().Str("artifact", c.String()).Str("path", path).Msg("Resolved artifact")
	return types.NewArtifactRef(c, path, ""), nil
}

// ResolveAll resolves every coordinate. When stopOnFailure is set the first
// failure is returned; otherwise failures are logged at debug and the
// coordinates are reported back as unresolved.
func ResolveAll(r Resolver, coords []types.Coordinate, stopOnFailure bool, logger zerolog.Logger) ([]types.ArtifactRef, []types.Coordinate, error) {
	var resolved []types.ArtifactRef
	var unresolved []types.Coordinate

	for _, c := range coords {
		a, err := r.Resolve(c)
		if err != nil {
			if stopOnFailure {
				return resolved, unresolved, err
			}
			logger.Debug().Err(err).Str("artifact", c.String()).Msg("Failed to resolve artifact")
			unresolved = append(unresolved, c)
			continue
		}
		resolved = append(resolved, a)
	}
	return resolved, unresolved, nil
}
