package pom

import (
	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/repository"
	"github.com/arthur-debert/artlink/pkg/types"
)

// maxParentDepth guards against parent cycles in broken repositories
const maxParentDepth = 64

// PomCoordinate returns the coordinate of the pom describing c
func PomCoordinate(c types.Coordinate) types.Coordinate {
	return types.Coordinate{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Type:       "pom",
	}
}

// ParentChain resolves the parent poms of c, nearest first
func ParentChain(r repository.Resolver, fs types.FS, c types.Coordinate) ([]types.ArtifactRef, error) {
	var chain []types.ArtifactRef
	seen := map[string]bool{}

	current := PomCoordinate(c)
	ref, err := r.Resolve(current)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrResolve, "problem resolving project %s", current).
			WithDetail("artifact", current.String())
	}

	for depth := 0; depth < maxParentDepth; depth++ {
		model, err := ReadFile(fs, ref.File)
		if err != nil {
			return chain, err
		}
		if model.Parent == nil {
			return chain, nil
		}

		parent := PomCoordinate(*model.Parent)
		if seen[parent.String()] {
			return chain, errors.Newf(errors.ErrPom, "parent cycle at %s", parent).
				WithDetail("artifact", parent.String())
		}
		seen[parent.String()] = true

		ref, err = r.Resolve(parent)
		if err != nil {
			return chain, errors.Wrapf(err, errors.ErrResolve, "problem resolving parent %s of %s", parent, current).
				WithDetail("artifact", parent.String())
		}
		chain = append(chain, ref)
		current = parent
	}
	return chain, errors.Newf(errors.ErrPom, "parent chain of %s is too deep", c.Key())
}
