package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of configuration environment variables
	EnvPrefix = "ARTLINK_"
	// ProjectFile is looked up in the working directory
	ProjectFile = ".artlink.toml"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile replaces the project file lookup when set
	ConfigFile string
	// WorkDir is searched for ProjectFile; defaults to the current directory
	WorkDir string
	// Overrides are flag values keyed by dotted path, e.g. "deps.include_scope"
	Overrides map[string]interface{}
	// SkipUserConfig ignores the XDG user file
	SkipUserConfig bool
}

// Load merges every configuration layer and validates the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		if path := UserConfigPath(); fileExists(path) {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Project config
	projectPath, explicit := projectConfigPath(opts)
	if explicit && !fileExists(projectPath) {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", projectPath).
			WithDetail("path", projectPath)
	}
	if fileExists(projectPath) {
		if err := k.Load(file.Provider(projectPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", projectPath).
				WithDetail("path", projectPath)
		}
		logger.Debug().Str("path", projectPath).Msg("Loaded project config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				sliceToCommaStringHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigPath returns $XDG_CONFIG_HOME/artlink/config.toml
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "artlink", "config.toml")
}

func projectConfigPath(opts LoadOptions) (string, bool) {
	if opts.ConfigFile != "" {
		return opts.ConfigFile, true
	}
	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ProjectFile), false
}

// envKey maps ARTLINK_DEPS__INCLUDE_SCOPE to deps.include_scope
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// sliceToCommaStringHookFunc lets include/exclude lists be written as TOML
// arrays while the filters consume comma separated strings.
func sliceToCommaStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Slice || t.Kind() != reflect.String {
			return data, nil
		}
		var parts []string
		switch s := data.(type) {
		case []interface{}:
			for _, v := range s {
				if str, ok := v.(string); ok {
					parts = append(parts, str)
				}
			}
		case []string:
			parts = s
		default:
			return data, nil
		}
		return strings.Join(parts, ","), nil
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
