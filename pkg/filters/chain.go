package filters

import (
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds the raw include/exclude configuration of a chain
type Options struct {
	ExcludeTransitive bool
	// Direct is the project's declared dependency list, used by the
	// transitivity filter.
	Direct []types.Dependency

	IncludeScope string
	ExcludeScope string

	IncludeTypes string
	ExcludeTypes string

	IncludeClassifiers string
	ExcludeClassifiers string

	IncludeGroupIDs string
	ExcludeGroupIDs string

	IncludeArtifactIDs string
	ExcludeArtifactIDs string
}

// Chain applies filters in order, each seeing the previous one's output
type Chain struct {
	filters []Filter
	logger  zerolog.Logger
}

// NewChain builds the chain in its fixed order: transitivity, scope, type,
// classifier, groupId, artifactId.
func NewChain(opts Options, logger zerolog.Logger) (*Chain, error) {
	scope, err := NewScopeFilter(opts.IncludeScope, opts.ExcludeScope)
	if err != nil {
		return nil, err
	}

	return NewChainOf(logger,
		NewTransitivityFilter(opts.ExcludeTransitive, opts.Direct),
		scope,
		NewTypeFilter(opts.IncludeTypes, opts.ExcludeTypes),
		NewClassifierFilter(opts.IncludeClassifiers, opts.ExcludeClassifiers),
		NewGroupIDFilter(opts.IncludeGroupIDs, opts.ExcludeGroupIDs),
		NewArtifactIDFilter(opts.IncludeArtifactIDs, opts.ExcludeArtifactIDs),
	), nil
}

// NewChainOf builds a chain from already constructed filters
func NewChainOf(logger zerolog.Logger, filters ...Filter) *Chain {
	return &Chain{filters: filters, logger: logger}
}

// Names lists the filters in application order
func (c *Chain) Names() []string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	return names
}

// Apply runs every filter over artifacts
func (c *Chain) Apply(artifacts []types.ArtifactRef) []types.ArtifactRef {
	current := artifacts
	for _, f := range c.filters {
		before := len(current)
		current = Apply(f, current)
		if before != len(current) {
			c.logger.Debug().
				Str("filter", f.Name()).
				Int("before", before).
				Int("after", len(current)).
				Msg("Filter removed artifacts")
		}
	}
	return current
}
