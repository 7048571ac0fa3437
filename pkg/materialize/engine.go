package materialize

import (
	"path/filepath"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Engine materializes single files
type Engine struct {
	fs       types.FS
	fallback Fallback
	logger   zerolog.Logger
}

// NewEngine creates an engine. A nil fallback means the default strategy.
func NewEngine(fs types.FS, fallback Fallback, logger zerolog.Logger) *Engine {
	if fallback == nil {
		fallback = FallbackFor(DefaultStrategy)
	}
	return &Engine{fs: fs, fallback: fallback, logger: logger}
}

// Strategy returns the configured fallback strategy
func (e *Engine) Strategy() Strategy {
	return e.fallback.Strategy()
}

// Materialize hard links source to dest, replacing dest if present. A
// cross-device failure is handed to the fallback, whose result is returned
// unchanged.
func (e *Engine) Materialize(source, dest string) (types.Method, error) {
	info, err := e.fs.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return types.MethodNone, errors.NotYetProduced(source)
	}

	if _, err := e.fs.Lstat(dest); err == nil {
		if err := e.fs.Remove(dest); err != nil {
			return types.MethodNone, errors.Wrapf(err, errors.ErrMaterialize, "failed to remove existing %s", dest).
				WithDetail("destination", dest)
		}
	} else if err := e.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return types.MethodNone, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", dest).
			WithDetail("destination", dest)
	}

	err = e.fs.Link(source, dest)
	if err == nil {
		e.logger.Debug().
			Str("source", source).
			Str("destination", dest).
			Msg("Created hardlink")
		return types.MethodHardlink, nil
	}

	if !IsCrossDevice(err) {
		return types.MethodNone, errors.Wrapf(err, errors.ErrMaterialize, "failed to link %s to %s", source, dest).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}

	e.logger.Debug().
		Err(err).
		Str("fallback", string(e.fallback.Strategy())).
		Msg("Hardlink crosses devices")
	return e.fallback.Handle(e.fs, source, dest, err, e.logger)
}
