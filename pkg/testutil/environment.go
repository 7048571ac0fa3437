package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/artlink/pkg/filesystem"
	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/types"
)

// TestEnvironment provides an isolated filesystem layout for a test
type TestEnvironment struct {
	// Repository is the root of the local artifact repository
	Repository string
	// Output is the default output directory
	Output string
	// WorkDir stands in for the project directory
	WorkDir string
	HomeDir string

	FS types.FS

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Repository: filepath.Join(root, "repository"),
		Output:     filepath.Join(root, "output"),
		WorkDir:    filepath.Join(root, "project"),
		HomeDir:    filepath.Join(root, "home"),
		FS:         filesystem.NewOS(),
		t:          t,
	}

	for _, dir := range []string{env.Repository, env.WorkDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))

	return env
}

// Install writes an artifact into the repository and returns it as a
// resolved reference. The content is the coordinate string.
func (env *TestEnvironment) Install(c types.Coordinate, scope string) types.ArtifactRef {
	env.t.Helper()
	return env.InstallContent(c, scope, c.String())
}

// InstallContent is Install with explicit file content
func (env *TestEnvironment) InstallContent(c types.Coordinate, scope, content string) types.ArtifactRef {
	env.t.Helper()
	if c.Type == "" {
		c.Type = types.DefaultType
	}
	a := types.NewArtifactRef(c, "", scope)
	a.File = filepath.Join(layout.RepositoryDir(env.Repository, a), layout.RepositoryFileName(a, false))
	env.WriteFile(a.File, content)
	return a
}

// InstallPom writes a minimal pom for c, optionally declaring a parent
func (env *TestEnvironment) InstallPom(c types.Coordinate, parent *types.Coordinate) types.ArtifactRef {
	env.t.Helper()
	c.Type = "pom"
	c.Classifier = ""

	body := "<project><modelVersion>4.0.0</modelVersion>"
	if parent != nil {
		body += "<parent><groupId>" + parent.GroupID + "</groupId><artifactId>" + parent.ArtifactID +
			"</artifactId><version>" + parent.Version + "</version></parent>"
	}
	body += "<groupId>" + c.GroupID + "</groupId><artifactId>" + c.ArtifactID +
		"</artifactId><version>" + c.Version + "</version><packaging>pom</packaging></project>"
	return env.InstallContent(c, "", body)
}

// WriteFile writes content to path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists without following symlinks
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Lstat(path)
	return err == nil
}

// ModTime returns the modification time of path
func (env *TestEnvironment) ModTime(path string) time.Time {
	env.t.Helper()
	info, err := env.FS.Stat(path)
	if err != nil {
		env.t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.ModTime()
}

// OutputPath joins elements onto the output directory
func (env *TestEnvironment) OutputPath(elem ...string) string {
	return filepath.Join(append([]string{env.Output}, elem...)...)
}
