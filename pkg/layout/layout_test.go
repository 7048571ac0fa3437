package layout_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func artifact(g, a, v, classifier, typ string) types.ArtifactRef {
	return types.NewArtifactRef(types.Coordinate{
		GroupID: g, ArtifactID: a, Version: v, Classifier: classifier, Type: typ,
	}, "", "")
}

func TestFileName(t *testing.T) {
	a := artifact("g", "a", "1.0", "c", "jar")

	tests := []struct {
		name     string
		artifact types.ArtifactRef
		opts     layout.NameOptions
		expected string
	}{
		{"all flags off", a, layout.NameOptions{}, "a-1.0-c.jar"},
		{"strip version", a, layout.NameOptions{StripVersion: true}, "a-c.jar"},
		{"strip both", a, layout.NameOptions{StripVersion: true, StripClassifier: true}, "a.jar"},
		{"prepend group", a, layout.NameOptions{StripVersion: true, StripClassifier: true, PrependGroupID: true}, "g-a.jar"},
		{"no classifier", artifact("g", "a", "1.0", "", "jar"), layout.NameOptions{}, "a-1.0.jar"},
		{"extension from handler", artifact("g", "a", "1.0", "tests", "test-jar"), layout.NameOptions{}, "a-1.0-tests.jar"},
		{"unknown type", artifact("g", "a", "1.0", "", "zip"), layout.NameOptions{}, "a-1.0.zip"},
		{
			"base version for timestamped snapshot",
			artifact("g", "a", "1.0-20240102.030405-7", "", "jar"),
			layout.NameOptions{UseBaseVersion: true},
			"a-1.0-SNAPSHOT.jar",
		},
		{
			"full timestamp without base version",
			artifact("g", "a", "1.0-20240102.030405-7", "", "jar"),
			layout.NameOptions{},
			"a-1.0-20240102.030405-7.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, layout.FileName(tt.artifact, tt.opts))
		})
	}
}

func TestOutputDir(t *testing.T) {
	root := filepath.Join("out", "lib")
	a := artifact("org.example", "lib", "1.0", "", "jar")
	a.Scope = "runtime"

	tests := []struct {
		name     string
		artifact types.ArtifactRef
		opts     layout.DirOptions
		expected string
	}{
		{"flat", a, layout.DirOptions{}, root},
		{"per scope", a, layout.DirOptions{PerScope: true}, filepath.Join(root, "runtime")},
		{"per type", a, layout.DirOptions{PerType: true}, filepath.Join(root, "jars")},
		{"per artifact", a, layout.DirOptions{PerArtifact: true}, filepath.Join(root, "lib-1.0-jar")},
		{
			"all nested in order",
			a,
			layout.DirOptions{PerScope: true, PerType: true, PerArtifact: true},
			filepath.Join(root, "runtime", "jars", "lib-1.0-jar"),
		},
		{
			"per artifact without version or type",
			a,
			layout.DirOptions{PerArtifact: true, StripVersion: true, StripType: true},
			filepath.Join(root, "lib"),
		},
		{
			"classifier equal to type is not repeated",
			artifact("g", "lib", "1.0", "sources", "sources"),
			layout.DirOptions{PerArtifact: true},
			filepath.Join(root, "lib-1.0-sources"),
		},
		{
			"repository layout wins",
			a,
			layout.DirOptions{RepositoryLayout: true, PerScope: true, PerType: true},
			filepath.Join(root, "org", "example", "lib", "1.0"),
		},
		{
			"repository layout uses base version",
			artifact("org.example", "lib", "1.0-20240102.030405-7", "", "jar"),
			layout.DirOptions{RepositoryLayout: true},
			filepath.Join(root, "org", "example", "lib", "1.0-SNAPSHOT"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, layout.OutputDir(root, tt.artifact, tt.opts))
		})
	}
}

func TestOutputDirDefaultsScope(t *testing.T) {
	a := artifact("g", "a", "1.0", "", "jar")
	assert.Equal(t, filepath.Join("root", "compile"), layout.OutputDir("root", a, layout.DirOptions{PerScope: true}))
}

func TestLayoutIsDeterministic(t *testing.T) {
	token := rapid.StringMatching(`[a-z][a-z0-9.]{0,8}`)
	rapid.Check(t, func(t *rapid.T) {
		a := artifact(
			token.Draw(t, "group"),
			token.Draw(t, "artifact"),
			rapid.StringMatching(`[0-9]\.[0-9](-SNAPSHOT)?`).Draw(t, "version"),
			rapid.SampledFrom([]string{"", "sources", "tests"}).Draw(t, "classifier"),
			rapid.SampledFrom([]string{"jar", "war", "test-jar", "pom"}).Draw(t, "type"),
		)
		nameOpts := layout.NameOptions{
			StripVersion:    rapid.Bool().Draw(t, "stripVersion"),
			StripClassifier: rapid.Bool().Draw(t, "stripClassifier"),
			PrependGroupID:  rapid.Bool().Draw(t, "prependGroupId"),
			UseBaseVersion:  rapid.Bool().Draw(t, "useBaseVersion"),
		}
		dirOpts := layout.DirOptions{
			PerScope:         rapid.Bool().Draw(t, "perScope"),
			PerType:          rapid.Bool().Draw(t, "perType"),
			PerArtifact:      rapid.Bool().Draw(t, "perArtifact"),
			RepositoryLayout: rapid.Bool().Draw(t, "repositoryLayout"),
			StripVersion:     nameOpts.StripVersion,
		}

		first := filepath.Join(layout.OutputDir("root", a, dirOpts), layout.FileName(a, nameOpts))
		second := filepath.Join(layout.OutputDir("root", a, dirOpts), layout.FileName(a, nameOpts))
		if first != second {
			t.Fatalf("paths differ: %q vs %q", first, second)
		}

		name := layout.FileName(a, nameOpts)
		if nameOpts.StripVersion && nameOpts.StripClassifier && !nameOpts.PrependGroupID {
			expected := a.ArtifactID + "." + a.Extension()
			if name != expected {
				t.Fatalf("expected %q, got %q", expected, name)
			}
		}
	})
}
