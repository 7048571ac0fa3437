package config

import (
	"fmt"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/materialize"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/arthur-debert/artlink/pkg/utils"
)

// Config is the complete artlink configuration
type Config struct {
	Link       Link       `koanf:"link"`
	Overwrite  Overwrite  `koanf:"overwrite"`
	Repository Repository `koanf:"repository"`
	Project    Project    `koanf:"project"`
	Items      Items      `koanf:"items"`
	Deps       Deps       `koanf:"deps"`
}

// Link holds settings shared by both link commands
type Link struct {
	OutputDirectory string `koanf:"output_directory"`
	Fallback        string `koanf:"fallback"`
	Silent          bool   `koanf:"silent"`
	Skip            bool   `koanf:"skip"`
	DryRun          bool   `koanf:"dry_run"`
	// OutputAbsoluteArtifactFilename logs absolute destination paths
	OutputAbsoluteArtifactFilename bool `koanf:"output_absolute_artifact_filename"`
}

// Overwrite holds the global overwrite switches
type Overwrite struct {
	Releases  bool `koanf:"releases"`
	Snapshots bool `koanf:"snapshots"`
	IfNewer   bool `koanf:"if_newer"`
}

// Repository points at the local artifact repository
type Repository struct {
	Local string `koanf:"local"`
}

// Project locates the consuming project's metadata
type Project struct {
	Pom      string `koanf:"pom"`
	Manifest string `koanf:"manifest"`
}

// Item is an explicitly configured artifact
type Item struct {
	Coordinate      string `koanf:"coordinate"`
	GroupID         string `koanf:"group_id"`
	ArtifactID      string `koanf:"artifact_id"`
	Version         string `koanf:"version"`
	Type            string `koanf:"type"`
	Classifier      string `koanf:"classifier"`
	OutputDirectory string `koanf:"output_directory"`
	DestFileName    string `koanf:"dest_file_name"`
	// Overwrite accepts a boolean or the strings "true" and "false"
	Overwrite interface{} `koanf:"overwrite"`
}

// Items configures the link command
type Items struct {
	// Artifact is a single groupId:artifactId:version[:type[:classifier]]
	Artifact        string `koanf:"artifact"`
	List            []Item `koanf:"list"`
	UseBaseVersion  bool   `koanf:"use_base_version"`
	StripVersion    bool   `koanf:"strip_version"`
	StripClassifier bool   `koanf:"strip_classifier"`
	PrependGroupID  bool   `koanf:"prepend_group_id"`
}

// Deps configures the link-deps command
type Deps struct {
	UseBaseVersion             bool `koanf:"use_base_version"`
	StripVersion               bool `koanf:"strip_version"`
	StripClassifier            bool `koanf:"strip_classifier"`
	StripType                  bool `koanf:"strip_type"`
	PrependGroupID             bool `koanf:"prepend_group_id"`
	UseSubDirectoryPerScope    bool `koanf:"use_sub_directory_per_scope"`
	UseSubDirectoryPerType     bool `koanf:"use_sub_directory_per_type"`
	UseSubDirectoryPerArtifact bool `koanf:"use_sub_directory_per_artifact"`
	UseRepositoryLayout        bool `koanf:"use_repository_layout"`
	LinkPom                    bool `koanf:"link_pom"`
	AddParentPoms              bool `koanf:"add_parent_poms"`

	ExcludeTransitive  bool   `koanf:"exclude_transitive"`
	IncludeScope       string `koanf:"include_scope"`
	ExcludeScope       string `koanf:"exclude_scope"`
	IncludeTypes       string `koanf:"include_types"`
	ExcludeTypes       string `koanf:"exclude_types"`
	IncludeClassifiers string `koanf:"include_classifiers"`
	ExcludeClassifiers string `koanf:"exclude_classifiers"`
	IncludeGroupIDs    string `koanf:"include_group_ids"`
	ExcludeGroupIDs    string `koanf:"exclude_group_ids"`
	IncludeArtifactIDs string `koanf:"include_artifact_ids"`
	ExcludeArtifactIDs string `koanf:"exclude_artifact_ids"`

	// Classifier and Type translate every artifact to a sibling artifact,
	// e.g. classifier "sources" links the sources jar of each dependency.
	Classifier                      string `koanf:"classifier"`
	Type                            string `koanf:"type"`
	FailOnMissingClassifierArtifact bool   `koanf:"fail_on_missing_classifier_artifact"`
}

// Strategy returns the parsed fallback strategy
func (c *Config) Strategy() (materialize.Strategy, error) {
	return materialize.ParseStrategy(c.Link.Fallback)
}

// ArtifactItems builds the configured items, the shorthand first
func (c *Config) ArtifactItems() ([]types.ArtifactItem, error) {
	var items []types.ArtifactItem
	if c.Items.Artifact != "" {
		item, err := types.ParseArtifactItem(c.Items.Artifact)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for i, it := range c.Items.List {
		coord := types.Coordinate{
			GroupID:    it.GroupID,
			ArtifactID: it.ArtifactID,
			Version:    it.Version,
			Type:       it.Type,
			Classifier: it.Classifier,
		}
		if it.Coordinate != "" {
			parsed, err := types.ParseCoordinate(it.Coordinate)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "items.list[%d]", i)
			}
			coord = parsed
		}
		item, err := types.ItemFromCoordinate(coord).
			OutputDirectory(it.OutputDirectory).
			DestFileName(it.DestFileName).
			Overwrite(overwriteOf(it.Overwrite)).
			Build()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "items.list[%d]", i)
		}
		items = append(items, item)
	}
	return items, nil
}

// Validate checks values that cannot be verified by decoding alone
func (c *Config) Validate() error {
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if c.Link.OutputDirectory == "" {
		return errors.Config("link.output_directory must not be empty")
	}
	if _, err := c.ArtifactItems(); err != nil {
		return err
	}
	return nil
}

// expandPaths expands ~ and environment variables in path settings
func (c *Config) expandPaths() {
	c.Link.OutputDirectory = utils.ExpandPath(c.Link.OutputDirectory)
	c.Repository.Local = utils.ExpandPath(c.Repository.Local)
	c.Project.Pom = utils.ExpandPath(c.Project.Pom)
	c.Project.Manifest = utils.ExpandPath(c.Project.Manifest)
	for i := range c.Items.List {
		c.Items.List[i].OutputDirectory = utils.ExpandPath(c.Items.List[i].OutputDirectory)
	}
}

func overwriteOf(v interface{}) types.Overwrite {
	if v == nil {
		return types.OverwriteUnset
	}
	return types.ParseOverwrite(fmt.Sprint(v))
}
