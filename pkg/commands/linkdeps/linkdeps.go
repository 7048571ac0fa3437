package linkdeps

import (
	"path/filepath"

	"github.com/arthur-debert/artlink/pkg/commands/internal"
	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/filters"
	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/logging"
	"github.com/arthur-debert/artlink/pkg/materialize"
	"github.com/arthur-debert/artlink/pkg/overwrite"
	"github.com/arthur-debert/artlink/pkg/pom"
	"github.com/arthur-debert/artlink/pkg/repository"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// CommandName is reported in results
const CommandName = "link-deps"

// LinkDepsOptions defines the options for the LinkDeps command.
type LinkDepsOptions struct {
	// Artifacts is the resolved dependency set of the project.
	Artifacts []types.ArtifactRef
	// Project provides the direct dependency list for the transitivity filter.
	Project types.Project
	// Resolver is used for classifier translation, poms and parent poms.
	Resolver        repository.Resolver
	FS              types.FS
	OutputDirectory string
	Fallback        materialize.Strategy
	Overwrite       overwrite.Flags
	Filters         filters.Options
	Naming          layout.NameOptions
	Dirs            layout.DirOptions

	// Classifier and Type translate each artifact to a sibling artifact.
	// Translation only happens when Classifier is set.
	Classifier                      string
	Type                            string
	FailOnMissingClassifierArtifact bool

	LinkPom       bool
	AddParentPoms bool
	DryRun        bool
	Skip          bool
	AbsoluteNames bool
	Logger        zerolog.Logger
}

// LinkDeps links the project's dependencies into the output directory
func LinkDeps(opts LinkDepsOptions) (*types.Result, error) {
	log := opts.Logger.With().Str("command", CommandName).Logger()
	result := types.NewResult(CommandName, opts.DryRun)
	defer logging.LogOperationStart(log, CommandName)()

	if opts.Skip {
		log.Info().Msg("Skipping link-deps execution")
		return result, nil
	}

	sets, err := DependencySets(opts)
	if err != nil {
		return nil, err
	}
	for _, c := range sets.Unresolved {
		result.Unresolved = append(result.Unresolved, c.String())
	}

	linker := internal.NewLinker(internal.LinkerOptions{
		FS:            opts.FS,
		Fallback:      opts.Fallback,
		DryRun:        opts.DryRun,
		AbsoluteNames: opts.AbsoluteNames,
		Logger:        log,
	}, result)

	for _, a := range sets.Resolved {
		if err := linkArtifact(linker, opts, a); err != nil {
			return result, err
		}
	}

	for _, a := range sets.Skipped {
		log.Info().Msgf("%s already exists in destination.", a.ID())
		linker.Skip(a, Destination(opts, a), overwrite.ReasonUpToDate)
	}

	if opts.LinkPom && !opts.Dirs.RepositoryLayout {
		if err := linkPoms(linker, opts, sets.Resolved, log); err != nil {
			return result, err
		}
		if err := linkPoms(linker, opts, sets.Skipped, log); err != nil {
			return result, err
		}
	}

	log.Debug().
		Int("linked", len(result.Linked)).
		Int("skipped", len(result.Skipped)).
		Int("unresolved", len(result.Unresolved)).
		Msg("Command finished")
	return result, nil
}

// Sets partitions the dependency set after filtering
type Sets struct {
	Resolved   []types.ArtifactRef
	Skipped    []types.ArtifactRef
	Unresolved []types.Coordinate
}

// DependencySets runs the selection pipeline: parent pom expansion, the
// filter chain, classifier translation and finally the destination filter.
func DependencySets(opts LinkDepsOptions) (*Sets, error) {
	artifacts := opts.Artifacts
	if opts.AddParentPoms {
		expanded, err := addParentPoms(opts, artifacts)
		if err != nil {
			return nil, err
		}
		artifacts = expanded
	}

	filterOpts := opts.Filters
	if filterOpts.Direct == nil {
		filterOpts.Direct = opts.Project.Dependencies
	}
	chain, err := filters.NewChain(filterOpts, opts.Logger)
	if err != nil {
		return nil, err
	}
	artifacts = chain.Apply(artifacts)

	sets := &Sets{}
	if opts.Classifier != "" {
		translated := Translate(artifacts, opts.Classifier, opts.Type)
		resolved, unresolved, err := repository.ResolveAll(opts.Resolver, coordinates(translated), opts.FailOnMissingClassifierArtifact, opts.Logger)
		if err != nil {
			return nil, err
		}
		artifacts = withScopes(resolved, translated)
		sets.Unresolved = unresolved
	}

	policy := overwrite.NewPolicy(opts.FS, opts.Overwrite, opts.Logger)
	destFilter := filters.NewDestFileFilter(policy, func(a types.ArtifactRef) string {
		return Destination(opts, a)
	})
	sets.Resolved, sets.Skipped = destFilter.Split(artifacts)
	return sets, nil
}

// Destination is the file an artifact is linked to
func Destination(opts LinkDepsOptions, a types.ArtifactRef) string {
	if opts.Dirs.RepositoryLayout {
		return filepath.Join(layout.RepositoryDir(opts.OutputDirectory, a), layout.RepositoryFileName(a, false))
	}
	return filepath.Join(layout.OutputDir(opts.OutputDirectory, a, opts.Dirs), layout.FileName(a, opts.Naming))
}

// Translate maps each artifact to its classifier (and optionally type)
// sibling. The type falls back to the artifact's own type.
func Translate(artifacts []types.ArtifactRef, classifier, typ string) []types.ArtifactRef {
	out := make([]types.ArtifactRef, 0, len(artifacts))
	for _, a := range artifacts {
		c := a.Coordinate
		c.Classifier = classifier
		if typ != "" {
			c.Type = typ
		}
		out = append(out, types.NewArtifactRef(c, "", a.Scope))
	}
	return out
}

func linkArtifact(linker *internal.Linker, opts LinkDepsOptions, a types.ArtifactRef) error {
	if err := linker.Link(a, Destination(opts, a)); err != nil {
		return err
	}

	// timestamped snapshots are also installed under their base version
	if opts.Dirs.RepositoryLayout && a.Base() != a.Version {
		dest := filepath.Join(layout.RepositoryDir(opts.OutputDirectory, a), layout.RepositoryFileName(a, true))
		if err := linker.Link(a, dest); err != nil {
			return err
		}
	}
	return nil
}

// linkPoms links the pom of each artifact into the output root when it is
// not there yet. Poms that cannot be resolved are only logged.
func linkPoms(linker *internal.Linker, opts LinkDepsOptions, artifacts []types.ArtifactRef, log zerolog.Logger) error {
	for _, a := range artifacts {
		pomRef, err := opts.Resolver.Resolve(pom.PomCoordinate(a.Coordinate))
		if err != nil {
			log.Info().Err(err).Str("artifact", a.ID()).Msg("Unable to resolve pom")
			continue
		}
		dest := filepath.Join(opts.OutputDirectory, layout.FileName(pomRef, opts.Naming))
		if linker.Exists(dest) {
			continue
		}
		if err := linker.Link(pomRef, dest); err != nil {
			return err
		}
	}
	return nil
}

// addParentPoms appends the parent pom chain of every artifact, skipping
// duplicates.
func addParentPoms(opts LinkDepsOptions, artifacts []types.ArtifactRef) ([]types.ArtifactRef, error) {
	if opts.Resolver == nil {
		return nil, errors.Config("adding parent poms requires a repository")
	}
	seen := map[string]bool{}
	out := make([]types.ArtifactRef, 0, len(artifacts))
	for _, a := range artifacts {
		seen[a.Coordinate.String()] = true
		out = append(out, a)
	}
	for _, a := range artifacts {
		parents, err := pom.ParentChain(opts.Resolver, opts.FS, a.Coordinate)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if seen[p.Coordinate.String()] {
				continue
			}
			seen[p.Coordinate.String()] = true
			p.Scope = a.Scope
			out = append(out, p)
		}
	}
	return out, nil
}

func coordinates(artifacts []types.ArtifactRef) []types.Coordinate {
	out := make([]types.Coordinate, len(artifacts))
	for i, a := range artifacts {
		out[i] = a.Coordinate
	}
	return out
}

// withScopes carries the scope of each translated request onto the
// artifact resolved for it.
func withScopes(resolved, requested []types.ArtifactRef) []types.ArtifactRef {
	scopes := map[string]string{}
	for _, r := range requested {
		scopes[r.Coordinate.String()] = r.Scope
	}
	for i := range resolved {
		resolved[i].Scope = scopes[resolved[i].Coordinate.String()]
	}
	return resolved
}
