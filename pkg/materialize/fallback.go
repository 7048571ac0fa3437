package materialize

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Strategy names a fallback
type Strategy string

const (
	LogOnly        Strategy = "log_only"
	Copy           Strategy = "copy"
	WarnAndCopy    Strategy = "warn_and_copy"
	Symlink        Strategy = "symlink"
	WarnAndSymlink Strategy = "warn_and_symlink"
	ThrowError     Strategy = "throw_error"

	DefaultStrategy = WarnAndCopy
)

// Strategies lists every strategy in documentation order
var Strategies = []Strategy{LogOnly, Copy, WarnAndCopy, Symlink, WarnAndSymlink, ThrowError}

// Fallback handles a hard link that failed across devices
type Fallback interface {
	Strategy() Strategy
	// Handle is called with the original link error. It returns how the
	// destination was populated.
	Handle(fs types.FS, source, dest string, cause error, logger zerolog.Logger) (types.Method, error)
}

// ParseStrategy accepts strategy names case-insensitively, with either
// underscores or dashes.
func ParseStrategy(s string) (Strategy, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if name == "" {
		return DefaultStrategy, nil
	}
	for _, st := range Strategies {
		if string(st) == name {
			return st, nil
		}
	}
	return "", errors.Config("unknown link fallback %q", s).
		WithDetail("fallback", s)
}

// FallbackFor returns the implementation of a strategy. Unknown strategies
// get the default.
func FallbackFor(s Strategy) Fallback {
	switch s {
	case LogOnly:
		return logOnly{}
	case Copy:
		return copyFallback{}
	case Symlink:
		return symlinkFallback{}
	case WarnAndSymlink:
		return symlinkFallback{warn: true}
	case ThrowError:
		return throwError{}
	default:
		return copyFallback{warn: true}
	}
}

type logOnly struct{}

func (logOnly) Strategy() Strategy { return LogOnly }

func (logOnly) Handle(_ types.FS, source, dest string, cause error, logger zerolog.Logger) (types.Method, error) {
	logger.Error().
		Err(cause).
		Str("source", source).
		Str("destination", dest).
		Msgf("Unable create hardlink of %s at %s due to %s", source, dest, cause)
	return types.MethodNone, nil
}

type copyFallback struct {
	warn bool
}

func (c copyFallback) Strategy() Strategy {
	if c.warn {
		return WarnAndCopy
	}
	return Copy
}

func (c copyFallback) Handle(fs types.FS, source, dest string, cause error, logger zerolog.Logger) (types.Method, error) {
	ev := logger.Debug()
	if c.warn {
		ev = logger.Warn()
	}
	ev.Str("reason", cause.Error()).Msgf("Unable create hardlink of %s at %s creating a copy", source, dest)

	if err := fs.CopyFile(source, dest); err != nil {
		return types.MethodNone, errors.Wrapf(err, errors.ErrMaterialize, "failed to copy %s to %s", source, dest).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}
	return types.MethodCopy, nil
}

type symlinkFallback struct {
	warn bool
}

func (s symlinkFallback) Strategy() Strategy {
	if s.warn {
		return WarnAndSymlink
	}
	return Symlink
}

func (s symlinkFallback) Handle(fs types.FS, source, dest string, cause error, logger zerolog.Logger) (types.Method, error) {
	ev := logger.Debug()
	if s.warn {
		ev = logger.Warn()
	}
	ev.Str("reason", cause.Error()).Msgf("Unable create hardlink of %s at %s creating a symlink instead", source, dest)

	target, err := filepath.Abs(source)
	if err != nil {
		target = source
	}
	if err := fs.Symlink(target, dest); err != nil {
		return types.MethodNone, errors.Wrapf(err, errors.ErrMaterialize, "failed to symlink %s to %s", dest, target).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}
	return types.MethodSymlink, nil
}

type throwError struct{}

func (throwError) Strategy() Strategy { return ThrowError }

func (throwError) Handle(_ types.FS, _, _ string, cause error, _ zerolog.Logger) (types.Method, error) {
	return types.MethodNone, cause
}
