package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/generator"
	"github.com/toyz/crudgen/internal/project"
)

const (
	// FileName is looked up in the project root when no --config is given
	FileName = ".crudgen.yaml"
	// EnvPrefix prefixes environment overrides, e.g. CRUDGEN_BASE_PACKAGE
	EnvPrefix = "CRUDGEN"
)

// Config holds the settings that shape a generation run
type Config struct {
	BasePackage  string   `mapstructure:"base_package"`
	JavaRoot     string   `mapstructure:"java_root"`
	Indicators   []string `mapstructure:"indicators"`
	Components   []string `mapstructure:"components"`
	Force        bool     `mapstructure:"force"`
	APIDocPrefix string   `mapstructure:"api_doc_prefix"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"base-package": "base_package",
	"java-root":    "java_root",
	"only":         "components",
	"force":        "force",
}

// Loader layers flags over environment over config file over defaults
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment lookup set up
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("base_package", "")
	v.SetDefault("java_root", project.DefaultJavaRoot)
	v.SetDefault("indicators", project.DefaultIndicators)
	v.SetDefault("components", []string{})
	v.SetDefault("force", false)
	v.SetDefault("api_doc_prefix", generator.DefaultAPIDocPrefix)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlags lets explicitly set flags override every other source
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return errors.WrapConfigurationError("--"+name, "bind", err)
		}
	}
	return nil
}

// Load reads configFile, or FileName from projectDir when configFile is
// empty, and returns the merged configuration. Only an explicitly named
// file has to exist.
func (l *Loader) Load(projectDir, configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigFile(filepath.Join(projectDir, FileName))
	}

	read := true
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !(stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)) {
			return nil, errors.WrapConfigurationError(l.v.ConfigFileUsed(), "read", err).
				WithSuggestions("Check that " + l.v.ConfigFileUsed() + " exists and is valid YAML")
		}
		read = false
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapConfigurationError(l.v.ConfigFileUsed(), "decode", err)
	}
	if read {
		cfg.File = l.v.ConfigFileUsed()
	}
	cfg.APIDocPrefix = normalizePrefix(cfg.APIDocPrefix)
	cfg.Components = splitList(cfg.Components)
	cfg.Indicators = splitList(cfg.Indicators)
	return cfg, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}

// splitList flattens comma-joined entries, which is how lists arrive from
// environment variables and repeated flags
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
