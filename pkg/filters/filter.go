package filters

import (
	"strings"

	"github.com/arthur-debert/artlink/pkg/types"
)

// Filter decides whether a single artifact is kept
type Filter interface {
	Name() string
	Include(a types.ArtifactRef) bool
}

// Apply returns the artifacts f keeps, in input order
func Apply(f Filter, artifacts []types.ArtifactRef) []types.ArtifactRef {
	kept := make([]types.ArtifactRef, 0, len(artifacts))
	for _, a := range artifacts {
		if f.Include(a) {
			kept = append(kept, a)
		}
	}
	return kept
}

// SplitTokens turns "a, B,,c" into [a b c]
func SplitTokens(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

type matchFunc func(feature, token string) bool

func equalMatch(feature, token string) bool {
	return feature == token
}

func prefixMatch(feature, token string) bool {
	return strings.HasPrefix(feature, token)
}

// FeatureFilter keeps artifacts by one textual feature such as the type or
// classifier. An artifact without the feature never satisfies an include
// list and is never removed by an exclude list.
type FeatureFilter struct {
	name     string
	feature  func(types.ArtifactRef) string
	match    matchFunc
	includes []string
	excludes []string
}

func newFeatureFilter(name string, feature func(types.ArtifactRef) string, match matchFunc, include, exclude string) *FeatureFilter {
	return &FeatureFilter{
		name:     name,
		feature:  feature,
		match:    match,
		includes: SplitTokens(include),
		excludes: SplitTokens(exclude),
	}
}

// NewTypeFilter filters on the artifact type
func NewTypeFilter(include, exclude string) *FeatureFilter {
	return newFeatureFilter("type", func(a types.ArtifactRef) string { return a.TypeOrDefault() }, equalMatch, include, exclude)
}

// NewClassifierFilter filters on the classifier
func NewClassifierFilter(include, exclude string) *FeatureFilter {
	return newFeatureFilter("classifier", func(a types.ArtifactRef) string { return a.Classifier }, equalMatch, include, exclude)
}

// NewGroupIDFilter filters on the groupId. Tokens are prefixes, so
// "org.apache" also matches "org.apache.commons".
func NewGroupIDFilter(include, exclude string) *FeatureFilter {
	return newFeatureFilter("groupId", func(a types.ArtifactRef) string { return a.GroupID }, prefixMatch, include, exclude)
}

// NewArtifactIDFilter filters on the artifactId
func NewArtifactIDFilter(include, exclude string) *FeatureFilter {
	return newFeatureFilter("artifactId", func(a types.ArtifactRef) string { return a.ArtifactID }, equalMatch, include, exclude)
}

func (f *FeatureFilter) Name() string { return f.name }

// Active reports whether the filter restricts anything
func (f *FeatureFilter) Active() bool {
	return len(f.includes) > 0 || len(f.excludes) > 0
}

func (f *FeatureFilter) Include(a types.ArtifactRef) bool {
	feature := strings.ToLower(f.feature(a))
	if len(f.includes) > 0 && !f.matchesAny(feature, f.includes) {
		return false
	}
	return !f.matchesAny(feature, f.excludes)
}

func (f *FeatureFilter) matchesAny(feature string, tokens []string) bool {
	if feature == "" {
		return false
	}
	for _, token := range tokens {
		if f.match(feature, token) {
			return true
		}
	}
	return false
}
