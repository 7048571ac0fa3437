package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/artlink/pkg/types"
)

func TestRenderOutcome(t *testing.T) {
	tests := []struct {
		name     string
		outcome  types.Outcome
		contains []string
	}{
		{
			name: "hard link",
			outcome: types.Outcome{
				Artifact:    ref("g", "a"),
				Destination: "out/a-1.0.jar",
				Method:      types.MethodHardlink,
			},
			contains: []string{"hardlink", "g:a:jar:1.0", "hard linked to out/a-1.0.jar"},
		},
		{
			name: "copy fallback",
			outcome: types.Outcome{
				Artifact:    ref("g", "a"),
				Destination: "out/a-1.0.jar",
				Method:      types.MethodCopy,
			},
			contains: []string{"copy", "copied to out/a-1.0.jar"},
		},
		{
			name: "symlink fallback",
			outcome: types.Outcome{
				Artifact:    ref("g", "a"),
				Destination: "out/a-1.0.jar",
				Method:      types.MethodSymlink,
			},
			contains: []string{"symlink", "symlinked at out/a-1.0.jar"},
		},
		{
			name: "dry run",
			outcome: types.Outcome{
				Artifact:    ref("g", "a"),
				Destination: "out/a-1.0.jar",
				Method:      types.MethodPlanned,
			},
			contains: []string{"planned", "will be linked to out/a-1.0.jar"},
		},
		{
			name: "gave up",
			outcome: types.Outcome{
				Artifact:    ref("g", "a"),
				Destination: "out/a-1.0.jar",
				Method:      types.MethodNone,
			},
			contains: []string{"none", "could not be placed at out/a-1.0.jar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderOutcome(tt.outcome)
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Expected %q in %q", want, result)
				}
			}
		})
	}
}

func TestOutcomeStatus(t *testing.T) {
	tests := []struct {
		method   types.Method
		expected Status
	}{
		{types.MethodHardlink, StatusLinked},
		{types.MethodCopy, StatusLinked},
		{types.MethodSymlink, StatusLinked},
		{types.MethodPlanned, StatusPlanned},
		{types.MethodNone, StatusFailed},
	}
	for _, tt := range tests {
		if got := OutcomeStatus(types.Outcome{Method: tt.method}); got != tt.expected {
			t.Errorf("OutcomeStatus(%s) = %s, want %s", tt.method, got, tt.expected)
		}
	}
}

func TestRenderResult(t *testing.T) {
	r := types.NewResult("link-deps", false)
	r.Linked = append(r.Linked, types.Outcome{Artifact: ref("g", "a"), Destination: "out/a-1.0.jar", Method: types.MethodHardlink})
	r.Skipped = append(r.Skipped, types.Outcome{Artifact: ref("g", "b"), Destination: "out/b-1.0.jar", Reason: "already exists in destination"})
	r.Unresolved = append(r.Unresolved, "g:c:jar:sources:1.0")

	result := RenderResult(r)
	for _, want := range []string{
		"link-deps:",
		"g:a:jar:1.0",
		"skipped",
		"already exists in destination",
		"unresolved",
		"g:c:jar:sources:1.0",
		"1 linked, 1 up to date, 1 unresolved",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in %q", want, result)
		}
	}
}

func TestRenderResult_Empty(t *testing.T) {
	result := RenderResult(types.NewResult("link", true))
	if !strings.Contains(result, "link: (dry run)") {
		t.Errorf("Expected dry run header in %q", result)
	}
	if !strings.Contains(result, "nothing to link") {
		t.Errorf("Expected empty marker in %q", result)
	}
}

func TestSummary(t *testing.T) {
	r := types.NewResult("link", true)
	r.Linked = append(r.Linked, types.Outcome{}, types.Outcome{})
	if got := Summary(r); got != "2 planned" {
		t.Errorf("Summary = %q", got)
	}
}

func ref(groupID, artifactID string) types.ArtifactRef {
	return types.NewArtifactRef(types.Coordinate{GroupID: groupID, ArtifactID: artifactID, Version: "1.0", Type: "jar"}, "", "")
}
