package types_test

import (
	"testing"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Coordinate
		wantErr  bool
	}{
		{
			name:     "three tokens defaults to jar",
			input:    "org.example:lib:1.0",
			expected: types.Coordinate{GroupID: "org.example", ArtifactID: "lib", Version: "1.0", Type: "jar"},
		},
		{
			name:     "explicit type",
			input:    "org.example:lib:1.0:war",
			expected: types.Coordinate{GroupID: "org.example", ArtifactID: "lib", Version: "1.0", Type: "war"},
		},
		{
			name:     "type and classifier",
			input:    "org.example:lib:1.0:jar:sources",
			expected: types.Coordinate{GroupID: "org.example", ArtifactID: "lib", Version: "1.0", Type: "jar", Classifier: "sources"},
		},
		{
			name:     "empty tokens are skipped",
			input:    "org.example::lib:1.0",
			expected: types.Coordinate{GroupID: "org.example", ArtifactID: "lib", Version: "1.0", Type: "jar"},
		},
		{name: "too few tokens", input: "org.example:lib", wantErr: true},
		{name: "too many tokens", input: "a:b:c:d:e:f", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseCoordinate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				assert.Contains(t, err.Error(), "groupId:artifactId:version[:packaging[:classifier]]")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCoordinateMatching(t *testing.T) {
	base := types.Coordinate{GroupID: "g", ArtifactID: "a", Version: "1.0", Type: "jar"}

	assert.True(t, base.MatchesExact(types.Coordinate{GroupID: "g", ArtifactID: "a"}), "empty type reads as jar")
	assert.False(t, base.MatchesExact(types.Coordinate{GroupID: "g", ArtifactID: "a", Classifier: "tests"}))
	assert.False(t, base.MatchesExact(types.Coordinate{GroupID: "g", ArtifactID: "a", Type: "war"}))
	assert.True(t, base.MatchesLoose(types.Coordinate{GroupID: "g", ArtifactID: "a", Type: "war", Classifier: "x"}))
	assert.False(t, base.MatchesLoose(types.Coordinate{GroupID: "g", ArtifactID: "b"}))

	assert.Equal(t, "g:a", base.Key())
	assert.Equal(t, "g:a:jar:1.0", base.String())
	withClassifier := base
	withClassifier.Classifier = "sources"
	assert.Equal(t, "g:a:jar:sources:1.0", withClassifier.String())
}

func TestHandlerFor(t *testing.T) {
	assert.Equal(t, "jar", types.HandlerFor("test-jar").Extension)
	assert.Equal(t, "tests", types.HandlerFor("test-jar").Classifier)
	assert.Equal(t, "war", types.HandlerFor("war").Extension)
	assert.Equal(t, "zip", types.HandlerFor("zip").Extension, "unknown types use the type as extension")
	assert.Equal(t, "jar", types.Coordinate{}.Extension())
}

func TestSnapshotVersions(t *testing.T) {
	tests := []struct {
		version  string
		snapshot bool
		base     string
	}{
		{"1.0", false, "1.0"},
		{"1.0-SNAPSHOT", true, "1.0-SNAPSHOT"},
		{"1.0-20240102.030405-7", true, "1.0-SNAPSHOT"},
		{"1.0-20240102", false, "1.0-20240102"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.snapshot, types.IsSnapshotVersion(tt.version))
			assert.Equal(t, tt.base, types.BaseVersionOf(tt.version))

			ref := types.NewArtifactRef(types.Coordinate{GroupID: "g", ArtifactID: "a", Version: tt.version}, "/x.jar", "")
			assert.Equal(t, tt.snapshot, ref.Snapshot)
			assert.Equal(t, tt.base, ref.Base())
		})
	}
}

func TestParseOverwrite(t *testing.T) {
	assert.Equal(t, types.OverwriteTrue, types.ParseOverwrite("true"))
	assert.Equal(t, types.OverwriteTrue, types.ParseOverwrite("TRUE"))
	assert.Equal(t, types.OverwriteFalse, types.ParseOverwrite("false"))
	assert.Equal(t, types.OverwriteUnset, types.ParseOverwrite(""))
	assert.Equal(t, types.OverwriteUnset, types.ParseOverwrite("yes"))

	assert.True(t, types.OverwriteTrue.Forced())
	assert.False(t, types.OverwriteFalse.Forced())
	assert.False(t, types.OverwriteUnset.Forced())
}

func TestItemBuilder(t *testing.T) {
	item, err := types.NewItemBuilder().
		GroupID("g").
		ArtifactID("a").
		Classifier("sources").
		OutputDirectory("/out").
		DestFileName("renamed.jar").
		Overwrite(types.OverwriteTrue).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "jar", item.Coordinate().Type)
	assert.False(t, item.HasVersion())
	assert.Equal(t, "/out", item.OutputDirectory())
	assert.Equal(t, "renamed.jar", item.DestFileName())
	assert.True(t, item.Overwrite().Forced())

	versioned := item.WithVersion("2.0")
	assert.Equal(t, "2.0", versioned.Coordinate().Version)
	assert.False(t, item.HasVersion(), "WithVersion must not modify the original")

	_, err = types.NewItemBuilder().ArtifactID("a").Build()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestParseArtifactItem(t *testing.T) {
	item, err := types.ParseArtifactItem("g:a:1.0:war:classes")
	require.NoError(t, err)
	assert.Equal(t, types.Coordinate{GroupID: "g", ArtifactID: "a", Version: "1.0", Type: "war", Classifier: "classes"}, item.Coordinate())

	_, err = types.ParseArtifactItem("g:a")
	require.Error(t, err)
}

func TestResultTotal(t *testing.T) {
	r := types.NewResult("link", false)
	r.Linked = append(r.Linked, types.Outcome{Method: types.MethodHardlink})
	r.Skipped = append(r.Skipped, types.Outcome{})
	r.Unresolved = append(r.Unresolved, "g:a")
	assert.Equal(t, 3, r.Total())
}
