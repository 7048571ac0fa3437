package filters

import (
	"github.com/arthur-debert/artlink/pkg/overwrite"
	"github.com/arthur-debert/artlink/pkg/types"
)

// DestinationFunc returns the file an artifact would be materialized to
type DestinationFunc func(types.ArtifactRef) string

// DestFileFilter keeps artifacts whose destination still needs to be
// written according to the overwrite policy.
type DestFileFilter struct {
	policy *overwrite.Policy
	dest   DestinationFunc
}

// NewDestFileFilter creates the filter
func NewDestFileFilter(policy *overwrite.Policy, dest DestinationFunc) *DestFileFilter {
	return &DestFileFilter{policy: policy, dest: dest}
}

func (f *DestFileFilter) Name() string { return "destination" }

func (f *DestFileFilter) Include(a types.ArtifactRef) bool {
	return f.policy.NeedsMaterialization(a, f.dest(a), types.OverwriteUnset)
}

// Split partitions artifacts into those to materialize and those already
// satisfied, preserving input order in both.
func (f *DestFileFilter) Split(artifacts []types.ArtifactRef) (resolved, skipped []types.ArtifactRef) {
	for _, a := range artifacts {
		if f.Include(a) {
			resolved = append(resolved, a)
		} else {
			skipped = append(skipped, a)
		}
	}
	return resolved, skipped
}
