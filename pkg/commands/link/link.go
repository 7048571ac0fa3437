package link

import (
	"path/filepath"

	"github.com/arthur-debert/artlink/pkg/commands/internal"
	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/layout"
	"github.com/arthur-debert/artlink/pkg/logging"
	"github.com/arthur-debert/artlink/pkg/materialize"
	"github.com/arthur-debert/artlink/pkg/overwrite"
	"github.com/arthur-debert/artlink/pkg/repository"
	"github.com/arthur-debert/artlink/pkg/resolve"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// CommandName is reported in results
const CommandName = "link"

// LinkItemsOptions defines the options for the LinkItems command.
type LinkItemsOptions struct {
	// Items are the explicitly requested artifacts. At least one is required.
	Items []types.ArtifactItem
	// Project supplies versions for items that do not declare one.
	Project  types.Project
	Resolver repository.Resolver
	FS       types.FS
	// OutputDirectory is used for items without their own output directory.
	OutputDirectory string
	Fallback        materialize.Strategy
	Overwrite       overwrite.Flags
	Naming          layout.NameOptions
	DryRun          bool
	Skip            bool
	AbsoluteNames   bool
	Logger          zerolog.Logger
}

// LinkItems resolves every item, then links the ones whose destination is
// missing or out of date. Resolution happens for all items before anything
// is written, so a bad item fails the run without partial output.
func LinkItems(opts LinkItemsOptions) (*types.Result, error) {
	log := opts.Logger.With().Str("command", CommandName).Logger()
	result := types.NewResult(CommandName, opts.DryRun)
	defer logging.LogOperationStart(log, CommandName)()

	if opts.Skip {
		log.Info().Msg("Skipping link execution")
		return result, nil
	}
	if len(opts.Items) == 0 {
		return nil, errors.Config("there are no artifact items configured; use --artifact or the items section")
	}

	resolutions, err := ResolveItems(opts)
	if err != nil {
		return nil, err
	}

	linker := internal.NewLinker(internal.LinkerOptions{
		FS:            opts.FS,
		Fallback:      opts.Fallback,
		DryRun:        opts.DryRun,
		AbsoluteNames: opts.AbsoluteNames,
		Logger:        log,
	}, result)

	for _, r := range resolutions {
		dest := filepath.Join(r.OutputDirectory, r.DestFileName)
		if !r.NeedsProcessing {
			log.Info().Msgf("%s already exists in %s", r.DestFileName, r.OutputDirectory)
			linker.Skip(r.Artifact, dest, overwrite.ReasonUpToDate)
			continue
		}
		if err := linker.Link(r.Artifact, dest); err != nil {
			return result, err
		}
	}

	log.Debug().
		Int("linked", len(result.Linked)).
		Int("skipped", len(result.Skipped)).
		Msg("Command finished")
	return result, nil
}

// ResolveItems computes, for each item in order: the output directory, the
// version when missing, the backing file, the destination file name and
// whether the destination needs to be written.
func ResolveItems(opts LinkItemsOptions) ([]types.ItemResolution, error) {
	versions := resolve.NewVersionResolver(opts.Logger)
	policy := overwrite.NewPolicy(opts.FS, opts.Overwrite, opts.Logger)

	resolutions := make([]types.ItemResolution, 0, len(opts.Items))
	for _, requested := range opts.Items {
		outputDir := requested.OutputDirectory()
		if outputDir == "" {
			outputDir = opts.OutputDirectory
		}
		item, err := versions.ResolveItem(requested.WithOutputDirectory(outputDir), opts.Project)
		if err != nil {
			return nil, err
		}

		artifact, err := opts.Resolver.Resolve(item.Coordinate())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrResolve, "unable to find/resolve artifact %s", item).
				WithDetail("artifact", item.String())
		}

		destFileName := item.DestFileName()
		if destFileName == "" {
			destFileName = layout.FileName(artifact, opts.Naming)
		}

		decision := policy.Decide(artifact, filepath.Join(outputDir, destFileName), item.Overwrite())
		resolutions = append(resolutions, types.ItemResolution{
			Item:            item,
			Artifact:        artifact,
			OutputDirectory: outputDir,
			DestFileName:    destFileName,
			NeedsProcessing: decision.Materialize,
		})
	}
	return resolutions, nil
}
