package filters_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/filesystem"
	"github.com/arthur-debert/artlink/pkg/filters"
	"github.com/arthur-debert/artlink/pkg/overwrite"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(g, a, typ, classifier, scope string) types.ArtifactRef {
	return types.NewArtifactRef(types.Coordinate{
		GroupID: g, ArtifactID: a, Version: "1.0", Type: typ, Classifier: classifier,
	}, "", scope)
}

func ids(artifacts []types.ArtifactRef) []string {
	out := make([]string, len(artifacts))
	for i, a := range artifacts {
		out[i] = a.ArtifactID
	}
	return out
}

func TestSplitTokens(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, filters.SplitTokens(" a, B,,c "))
	assert.Nil(t, filters.SplitTokens(""))
	assert.Nil(t, filters.SplitTokens(" , "))
}

func TestScopeFilter(t *testing.T) {
	artifacts := []types.ArtifactRef{
		ref("g", "compile", "jar", "", "compile"),
		ref("g", "provided", "jar", "", "provided"),
		ref("g", "runtime", "jar", "", "runtime"),
		ref("g", "test", "jar", "", "test"),
		ref("g", "system", "jar", "", "system"),
		ref("g", "unscoped", "jar", "", ""),
	}

	tests := []struct {
		name     string
		include  string
		exclude  string
		expected []string
	}{
		{"no restriction", "", "", []string{"compile", "provided", "runtime", "test", "system", "unscoped"}},
		{"include compile", "compile", "", []string{"compile", "provided", "system", "unscoped"}},
		{"include runtime", "runtime", "", []string{"compile", "runtime", "unscoped"}},
		{"include test", "test", "", []string{"compile", "provided", "runtime", "test", "system", "unscoped"}},
		{"include provided", "provided", "", []string{"provided"}},
		{"include system", "System", "", []string{"system"}},
		{"exclude compile", "", "compile", []string{"runtime", "test"}},
		{"exclude runtime", "", "runtime", []string{"provided", "test", "system"}},
		{"exclude provided", "", "provided", []string{"compile", "runtime", "test", "system", "unscoped"}},
		{"include wins over exclude", "provided", "provided", []string{"provided"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := filters.NewScopeFilter(tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(filters.Apply(f, artifacts)))
		})
	}
}

func TestScopeFilterErrors(t *testing.T) {
	tests := []struct {
		name    string
		include string
		exclude string
		message string
	}{
		{"unknown include", "bogus", "", "Invalid Scope in includeScope: bogus"},
		{"unknown exclude", "", "bogus", "Invalid Scope in excludeScope: bogus"},
		{"exclude test", "", "test", "Can't exclude Test scope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filters.NewScopeFilter(tt.include, tt.exclude)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFeatureFilters(t *testing.T) {
	artifacts := []types.ArtifactRef{
		ref("org.apache", "commons", "jar", "", ""),
		ref("org.apache.maven", "core", "jar", "sources", ""),
		ref("com.example", "webapp", "war", "", ""),
		ref("com.example", "tests", "test-jar", "tests", ""),
	}

	tests := []struct {
		name     string
		filter   filters.Filter
		expected []string
	}{
		{"type include", filters.NewTypeFilter("war", ""), []string{"webapp"}},
		{"type exclude", filters.NewTypeFilter("", "jar, war"), []string{"tests"}},
		{"type is case insensitive", filters.NewTypeFilter("WAR", ""), []string{"webapp"}},
		{"classifier include drops unclassified", filters.NewClassifierFilter("sources", ""), []string{"core"}},
		{"classifier exclude keeps unclassified", filters.NewClassifierFilter("", "sources,tests"), []string{"commons", "webapp"}},
		{"group include is a prefix match", filters.NewGroupIDFilter("org.apache", ""), []string{"commons", "core"}},
		{"group exclude is a prefix match", filters.NewGroupIDFilter("", "org.apache.maven"), []string{"commons", "webapp", "tests"}},
		{"artifact include and exclude", filters.NewArtifactIDFilter("commons,core", "core"), []string{"commons"}},
		{"empty lists keep everything", filters.NewArtifactIDFilter(" ", ""), []string{"commons", "core", "webapp", "tests"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(filters.Apply(tt.filter, artifacts)))
		})
	}
}

func TestTransitivityFilter(t *testing.T) {
	direct := []types.Dependency{
		{Coordinate: types.Coordinate{GroupID: "g", ArtifactID: "direct", Version: "1.0"}},
		{Coordinate: types.Coordinate{GroupID: "g", ArtifactID: "classified", Version: "1.0", Classifier: "tests"}},
	}
	artifacts := []types.ArtifactRef{
		ref("g", "direct", "jar", "", ""),
		ref("g", "transitive", "jar", "", ""),
		ref("g", "classified", "jar", "", ""),
		ref("g", "classified", "jar", "tests", ""),
	}

	all := filters.Apply(filters.NewTransitivityFilter(false, direct), artifacts)
	assert.Len(t, all, 4)

	kept := filters.Apply(filters.NewTransitivityFilter(true, direct), artifacts)
	require.Len(t, kept, 2)
	assert.Equal(t, "direct", kept[0].ArtifactID)
	assert.Equal(t, "tests", kept[1].Classifier)
}

func TestChain(t *testing.T) {
	chain, err := filters.NewChain(filters.Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"transitivity", "scope", "type", "classifier", "groupId", "artifactId"}, chain.Names())

	artifacts := []types.ArtifactRef{
		ref("org.example", "api", "jar", "", "compile"),
		ref("org.example", "impl", "jar", "", "runtime"),
		ref("org.example", "api", "jar", "sources", "compile"),
		ref("org.other", "tool", "jar", "", "test"),
	}

	chain, err = filters.NewChain(filters.Options{
		IncludeScope:       "runtime",
		ExcludeClassifiers: "sources",
		IncludeGroupIDs:    "org.example",
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "impl"}, ids(chain.Apply(artifacts)))

	_, err = filters.NewChain(filters.Options{IncludeScope: "nope"}, zerolog.Nop())
	require.Error(t, err)
}

func TestDestFileFilter(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "present.jar")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))

	policy := overwrite.NewPolicy(filesystem.NewOS(), overwrite.Flags{}, zerolog.Nop())
	f := filters.NewDestFileFilter(policy, func(a types.ArtifactRef) string {
		return filepath.Join(dir, a.ArtifactID+".jar")
	})

	resolved, skipped := f.Split([]types.ArtifactRef{
		ref("g", "present", "jar", "", ""),
		ref("g", "absent", "jar", "", ""),
	})
	assert.Equal(t, []string{"absent"}, ids(resolved))
	assert.Equal(t, []string{"present"}, ids(skipped))
}
