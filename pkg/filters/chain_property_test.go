package filters_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/artlink/pkg/filters"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
	"pgregory.net/rapid"
)

var (
	groups      = []string{"org.a", "org.a.sub", "org.b", "com.c"}
	artifactIDs = []string{"core", "api", "impl", "util"}
	typeNames   = []string{"jar", "war", "pom", "test-jar"}
	classifiers = []string{"", "sources", "tests"}
	scopes      = []string{"", "compile", "provided", "runtime", "test", "system"}
)

func genArtifact() *rapid.Generator[types.ArtifactRef] {
	return rapid.Custom(func(t *rapid.T) types.ArtifactRef {
		return ref(
			rapid.SampledFrom(groups).Draw(t, "group"),
			rapid.SampledFrom(artifactIDs).Draw(t, "artifact"),
			rapid.SampledFrom(typeNames).Draw(t, "type"),
			rapid.SampledFrom(classifiers).Draw(t, "classifier"),
			rapid.SampledFrom(scopes).Draw(t, "scope"),
		)
	})
}

// tokens draws a comma separated subset of values, possibly empty
func tokens(t *rapid.T, label string, values []string) string {
	picked := rapid.SliceOfDistinct(rapid.SampledFrom(values), func(s string) string { return s }).Draw(t, label)
	var out []string
	for _, v := range picked {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ",")
}

// Anything rejected by a single filter must be absent from the chain's
// output, and the chain never invents artifacts.
func TestChainComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		artifacts := rapid.SliceOfN(genArtifact(), 0, 12).Draw(t, "artifacts")

		scopeFilter, err := filters.NewScopeFilter(
			rapid.SampledFrom([]string{"", "compile", "runtime", "provided", "system", "test"}).Draw(t, "includeScope"),
			rapid.SampledFrom([]string{"", "compile", "runtime", "provided", "system"}).Draw(t, "excludeScope"),
		)
		if err != nil {
			t.Fatalf("valid scopes rejected: %v", err)
		}
		members := []filters.Filter{
			filters.NewTransitivityFilter(rapid.Bool().Draw(t, "excludeTransitive"), []types.Dependency{
				{Coordinate: types.Coordinate{GroupID: "org.a", ArtifactID: "core"}},
			}),
			scopeFilter,
			filters.NewTypeFilter(tokens(t, "includeTypes", typeNames), tokens(t, "excludeTypes", typeNames)),
			filters.NewClassifierFilter(tokens(t, "includeClassifiers", classifiers), tokens(t, "excludeClassifiers", classifiers)),
			filters.NewGroupIDFilter(tokens(t, "includeGroups", groups), tokens(t, "excludeGroups", groups)),
			filters.NewArtifactIDFilter(tokens(t, "includeArtifacts", artifactIDs), tokens(t, "excludeArtifacts", artifactIDs)),
		}

		out := filters.NewChainOf(zerolog.Nop(), members...).Apply(artifacts)
		if len(out) > len(artifacts) {
			t.Fatalf("chain grew the set: %d > %d", len(out), len(artifacts))
		}
		for _, a := range out {
			for _, f := range members {
				if !f.Include(a) {
					t.Fatalf("%s survived the chain although the %s filter rejects it", a.ID(), f.Name())
				}
			}
		}

		// every artifact accepted by all filters survives
		accepted := 0
		for _, a := range artifacts {
			ok := true
			for _, f := range members {
				ok = ok && f.Include(a)
			}
			if ok {
				accepted++
			}
		}
		if accepted != len(out) {
			t.Fatalf("expected %d artifacts, chain kept %d", accepted, len(out))
		}
	})
}
