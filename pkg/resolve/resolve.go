// Package resolve fills in missing artifact versions from the consuming
// project's declared dependencies.
package resolve

import (
	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// VersionResolver looks up versions in a project's dependency list and
// dependency management section.
type VersionResolver struct {
	logger zerolog.Logger
}

// NewVersionResolver creates a resolver logging through logger
func NewVersionResolver(logger zerolog.Logger) *VersionResolver {
	return &VersionResolver{logger: logger}
}

type pass struct {
	name  string
	list  []types.Dependency
	exact bool
}

// Resolve returns the version declared for c. The lookup runs four passes
// and the first hit wins: exact match on dependencies, exact match on
// dependency management, then groupId/artifactId-only matches on both lists
// in the same order.
func (r *VersionResolver) Resolve(c types.Coordinate, dependencies, management []types.Dependency) (string, error) {
	passes := []pass{
		{name: "dependencies", list: dependencies, exact: true},
		{name: "dependency management", list: management, exact: true},
		{name: "dependencies", list: dependencies, exact: false},
		{name: "dependency management", list: management, exact: false},
	}

	for _, p := range passes {
		for _, dep := range p.list {
			matched := c.MatchesLoose(dep.Coordinate)
			if p.exact {
				matched = c.MatchesExact(dep.Coordinate)
			}
			if !matched || dep.Version == "" {
				continue
			}
			r.logger.Debug().
				Str("artifact", c.Key()).
				Str("version", dep.Version).
				Str("source", p.name).
				Bool("exact", p.exact).
				Msg("Resolved missing version")
			return dep.Version, nil
		}
	}

	return "", errors.MissingVersion(c.GroupID, c.ArtifactID)
}

// ResolveItem returns the item unchanged when it already carries a version,
// otherwise a copy with the resolved version.
func (r *VersionResolver) ResolveItem(item types.ArtifactItem, project types.Project) (types.ArtifactItem, error) {
	if item.HasVersion() {
		return item, nil
	}
	version, err := r.Resolve(item.Coordinate(), project.Dependencies, project.DependencyManagement)
	if err != nil {
		return item, err
	}
	return item.WithVersion(version), nil
}
