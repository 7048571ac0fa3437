package main

import (
	"github.com/arthur-debert/artlink/pkg/commands"
	"github.com/arthur-debert/artlink/pkg/config"
	"github.com/arthur-debert/artlink/pkg/filesystem"
	"github.com/arthur-debert/artlink/pkg/filters"
	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/logging"
	"github.com/arthur-debert/artlink/pkg/overwrite"
	"github.com/arthur-debert/artlink/pkg/repository"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/arthur-debert/artlink/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// flagBinding maps a command line flag onto a configuration key. Only flags
// given explicitly override the configuration.
type flagBinding struct {
	flag   string
	short  string
	key    string
	usage  string
	isBool bool
}

var commonFlags = []flagBinding{
	{flag: "output-directory", short: "o", key: "link.output_directory", usage: "Directory artifacts are linked into"},
	{flag: "fallback", key: "link.fallback", usage: "Cross-device fallback: log_only, copy, warn_and_copy, symlink, warn_and_symlink, throw_error"},
	{flag: "silent", key: "link.silent", usage: "Suppress all logging", isBool: true},
	{flag: "skip", key: "link.skip", usage: "Do nothing", isBool: true},
	{flag: "absolute-names", key: "link.output_absolute_artifact_filename", usage: "Log absolute destination paths", isBool: true},
	{flag: "overwrite-releases", key: "overwrite.releases", usage: "Always rewrite release artifacts", isBool: true},
	{flag: "overwrite-snapshots", key: "overwrite.snapshots", usage: "Always rewrite snapshot artifacts", isBool: true},
	{flag: "overwrite-if-newer", key: "overwrite.if_newer", usage: "Rewrite when the source is newer (default true)", isBool: true},
	{flag: "repository", key: "repository.local", usage: "Local repository root (default ~/.m2/repository)"},
	{flag: "manifest", key: "project.manifest", usage: "Project manifest (.toml or .yaml)"},
	{flag: "pom", key: "project.pom", usage: "Project pom supplying dependency versions"},
}

var linkFlags = []flagBinding{
	{flag: "artifact", short: "a", key: "items.artifact", usage: "Artifact to link, groupId:artifactId:version[:type[:classifier]]"},
	{flag: "use-base-version", key: "items.use_base_version", usage: "Name snapshots by their base version", isBool: true},
	{flag: "strip-version", key: "items.strip_version", usage: "Leave the version out of file names", isBool: true},
	{flag: "strip-classifier", key: "items.strip_classifier", usage: "Leave the classifier out of file names", isBool: true},
	{flag: "prepend-group-id", key: "items.prepend_group_id", usage: "Prefix file names with the groupId", isBool: true},
}

var linkDepsFlags = []flagBinding{
	{flag: "use-base-version", key: "deps.use_base_version", usage: "Name snapshots by their base version (default true)", isBool: true},
	{flag: "strip-version", key: "deps.strip_version", usage: "Leave the version out of names", isBool: true},
	{flag: "strip-classifier", key: "deps.strip_classifier", usage: "Leave the classifier out of file names", isBool: true},
	{flag: "strip-type", key: "deps.strip_type", usage: "Leave the type out of per-artifact directory names", isBool: true},
	{flag: "prepend-group-id", key: "deps.prepend_group_id", usage: "Prefix file names with the groupId", isBool: true},
	{flag: "per-scope", key: "deps.use_sub_directory_per_scope", usage: "Use a subdirectory per scope", isBool: true},
	{flag: "per-type", key: "deps.use_sub_directory_per_type", usage: "Use a subdirectory per type", isBool: true},
	{flag: "per-artifact", key: "deps.use_sub_directory_per_artifact", usage: "Use a subdirectory per artifact", isBool: true},
	{flag: "repository-layout", key: "deps.use_repository_layout", usage: "Lay artifacts out like a repository", isBool: true},
	{flag: "link-pom", key: "deps.link_pom", usage: "Also link the pom of every artifact", isBool: true},
	{flag: "add-parent-poms", key: "deps.add_parent_poms", usage: "Add the parent poms of every artifact", isBool: true},
	{flag: "exclude-transitive", key: "deps.exclude_transitive", usage: "Keep only direct dependencies", isBool: true},
	{flag: "include-scope", key: "deps.include_scope", usage: "Scope to include"},
	{flag: "exclude-scope", key: "deps.exclude_scope", usage: "Scope to exclude"},
	{flag: "include-types", key: "deps.include_types", usage: "Comma separated types to include"},
	{flag: "exclude-types", key: "deps.exclude_types", usage: "Comma separated types to exclude"},
	{flag: "include-classifiers", key: "deps.include_classifiers", usage: "Comma separated classifiers to include"},
	{flag: "exclude-classifiers", key: "deps.exclude_classifiers", usage: "Comma separated classifiers to exclude"},
	{flag: "include-group-ids", key: "deps.include_group_ids", usage: "Comma separated groupId prefixes to include"},
	{flag: "exclude-group-ids", key: "deps.exclude_group_ids", usage: "Comma separated groupId prefixes to exclude"},
	{flag: "include-artifact-ids", key: "deps.include_artifact_ids", usage: "Comma separated artifactIds to include"},
	{flag: "exclude-artifact-ids", key: "deps.exclude_artifact_ids", usage: "Comma separated artifactIds to exclude"},
	{flag: "classifier", key: "deps.classifier", usage: "Link this classifier of every dependency, e.g. sources"},
	{flag: "type", key: "deps.type", usage: "Type used with --classifier"},
	{flag: "fail-on-missing-classifier-artifact", key: "deps.fail_on_missing_classifier_artifact", usage: "Fail when a classifier artifact is missing", isBool: true},
}

func bindFlags(cmd *cobra.Command, groups ...[]flagBinding) {
	for _, group := range groups {
		for _, b := range group {
			if b.isBool {
				cmd.Flags().BoolP(b.flag, b.short, false, b.usage)
			} else {
				cmd.Flags().StringP(b.flag, b.short, "", b.usage)
			}
		}
	}
}

// overrides collects the explicitly set flags as configuration overrides
func overrides(cmd *cobra.Command, groups ...[]flagBinding) map[string]interface{} {
	out := map[string]interface{}{}
	if f := cmd.Flag("dry-run"); f != nil && f.Changed {
		out["link.dry_run"] = f.Value.String()
	}
	for _, group := range groups {
		for _, b := range group {
			if f := cmd.Flag(b.flag); f != nil && f.Changed {
				out[b.key] = f.Value.String()
			}
		}
	}
	return out
}

// session holds what both link commands need once configuration is loaded
type session struct {
	cfg      *config.Config
	fs       types.FS
	logger   zerolog.Logger
	project  *projectData
	resolver repository.Resolver
	renderer ui.Renderer
}

func newSession(cmd *cobra.Command, groups ...[]flagBinding) (*session, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides(cmd, groups...),
	})
	if err != nil {
		return nil, err
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cmd." + cmd.Name())
	if cfg.Link.Silent {
		logger = zerolog.Nop()
	}

	root := cfg.Repository.Local
	if root == "" {
		root = repository.DefaultRoot()
	}
	fs := filesystem.NewOS()
	resolver := repository.NewLocal(root, fs, logging.ComponentLogger(logger, "repository"))

	project, err := loadProject(cfg, fs, resolver, logger)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		fs:       fs,
		logger:   logger,
		project:  project,
		resolver: resolver,
		renderer: renderer,
	}, nil
}

func (s *session) overwriteFlags() overwrite.Flags {
	return overwrite.Flags{
		Releases:  s.cfg.Overwrite.Releases,
		Snapshots: s.cfg.Overwrite.Snapshots,
		IfNewer:   s.cfg.Overwrite.IfNewer,
	}
}

func (s *session) render(result *types.Result) error {
	if err := s.renderer.RenderResult(result); err != nil {
		return err
	}
	if result.DryRun {
		s.logger.Info().Msg(MsgDryRunNotice)
	}
	return nil
}

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, commonFlags, linkFlags)
			if err != nil {
				return err
			}
			strategy, err := s.cfg.Strategy()
			if err != nil {
				return err
			}
			items, err := s.cfg.ArtifactItems()
			if err != nil {
				return err
			}
			items = append(items, s.project.Items...)

			result, err := commands.LinkItems(commands.LinkItemsOptions{
				Items:           items,
				Project:         s.project.Project,
				Resolver:        s.resolver,
				FS:              s.fs,
				OutputDirectory: s.cfg.Link.OutputDirectory,
				Fallback:        strategy,
				Overwrite:       s.overwriteFlags(),
				Naming: layout.NameOptions{
					StripVersion:    s.cfg.Items.StripVersion,
					StripClassifier: s.cfg.Items.StripClassifier,
					PrependGroupID:  s.cfg.Items.PrependGroupID,
					UseBaseVersion:  s.cfg.Items.UseBaseVersion,
				},
				DryRun:        s.cfg.Link.DryRun,
				Skip:          s.cfg.Link.Skip,
				AbsoluteNames: s.cfg.Link.OutputAbsoluteArtifactFilename,
				Logger:        s.logger,
			})
			if err != nil {
				return err
			}
			return s.render(result)
		},
	}
	bindFlags(cmd, commonFlags, linkFlags)
	return cmd
}

func newLinkDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link-deps",
		Short:   MsgLinkDepsShort,
		Long:    MsgLinkDepsLong,
		Example: MsgLinkDepsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, commonFlags, linkDepsFlags)
			if err != nil {
				return err
			}
			strategy, err := s.cfg.Strategy()
			if err != nil {
				return err
			}
			if len(s.project.Artifacts) == 0 {
				s.logger.Warn().Msg(MsgNoArtifacts)
			}

			deps := s.cfg.Deps
			result, err := commands.LinkDeps(commands.LinkDepsOptions{
				Artifacts:       s.project.Artifacts,
				Project:         s.project.Project,
				Resolver:        s.resolver,
				FS:              s.fs,
				OutputDirectory: s.cfg.Link.OutputDirectory,
				Fallback:        strategy,
				Overwrite:       s.overwriteFlags(),
				Filters: filters.Options{
					ExcludeTransitive:  deps.ExcludeTransitive,
					IncludeScope:       deps.IncludeScope,
					ExcludeScope:       deps.ExcludeScope,
					IncludeTypes:       deps.IncludeTypes,
					ExcludeTypes:       deps.ExcludeTypes,
					IncludeClassifiers: deps.IncludeClassifiers,
					ExcludeClassifiers: deps.ExcludeClassifiers,
					IncludeGroupIDs:    deps.IncludeGroupIDs,
					ExcludeGroupIDs:    deps.ExcludeGroupIDs,
					IncludeArtifactIDs: deps.IncludeArtifactIDs,
					ExcludeArtifactIDs: deps.ExcludeArtifactIDs,
				},
				Naming: layout.NameOptions{
					StripVersion:    deps.StripVersion,
					StripClassifier: deps.StripClassifier,
					PrependGroupID:  deps.PrependGroupID,
					UseBaseVersion:  deps.UseBaseVersion,
				},
				Dirs: layout.DirOptions{
					PerScope:         deps.UseSubDirectoryPerScope,
					PerType:          deps.UseSubDirectoryPerType,
					PerArtifact:      deps.UseSubDirectoryPerArtifact,
					RepositoryLayout: deps.UseRepositoryLayout,
					StripVersion:     deps.StripVersion,
					StripType:        deps.StripType,
				},
				Classifier:                      deps.Classifier,
				Type:                            deps.Type,
				FailOnMissingClassifierArtifact: deps.FailOnMissingClassifierArtifact,
				LinkPom:                         deps.LinkPom,
				AddParentPoms:                   deps.AddParentPoms,
				DryRun:                          s.cfg.Link.DryRun,
				Skip:                            s.cfg.Link.Skip,
				AbsoluteNames:                   s.cfg.Link.OutputAbsoluteArtifactFilename,
				Logger:                          s.logger,
			})
			if err != nil {
				return err
			}
			return s.render(result)
		},
	}
	bindFlags(cmd, commonFlags, linkDepsFlags)
	return cmd
}
