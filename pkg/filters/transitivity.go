package filters

import (
	"github.com/arthur-debert/artlink/pkg/types"
)

// TransitivityFilter keeps only the project's direct dependencies when
// enabled.
type TransitivityFilter struct {
	excludeTransitive bool
	direct            []types.Dependency
}

// NewTransitivityFilter creates the filter. direct is the project's declared
// dependency list.
func NewTransitivityFilter(excludeTransitive bool, direct []types.Dependency) *TransitivityFilter {
	return &TransitivityFilter{excludeTransitive: excludeTransitive, direct: direct}
}

func (f *TransitivityFilter) Name() string { return "transitivity" }

func (f *TransitivityFilter) Active() bool { return f.excludeTransitive }

func (f *TransitivityFilter) Include(a types.ArtifactRef) bool {
	if !f.excludeTransitive {
		return true
	}
	for _, d := range f.direct {
		if a.MatchesExact(d.Coordinate) {
			return true
		}
	}
	return false
}
