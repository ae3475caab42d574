package cli

import (
	"github.com/toyz/crudgen/internal/config"
	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/utils"
)

const (
	javaPackagePattern = `^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`
	packagePartPattern = `^[A-Za-z_][A-Za-z0-9_]*$`
)

// Config holds the configuration for one CLI run
type Config struct {
	// Entity is the class name to generate, e.g. Product
	Entity string

	// Fields is the raw field-definition string from --fields
	Fields string

	// ProjectDir is where Java root detection starts
	ProjectDir string

	// BasePackage overrides base-package inference when set
	BasePackage string

	// JavaRoot is the source root relative to a project directory
	JavaRoot string

	// Indicators are the subpackage names that mark the base package
	Indicators []string

	// Components restricts generation to the named components
	Components []string

	// Force overwrites existing files
	Force bool

	// DryRun reports what would change without touching the filesystem
	DryRun bool

	// APIDocPrefix is the URL prefix quoted in controller docs
	APIDocPrefix string

	// ConfigFile is the config file that was read, if any
	ConfigFile string
}

// FromSettings builds a run configuration from merged settings
func FromSettings(settings *config.Config, projectDir string) Config {
	return Config{
		ProjectDir:   projectDir,
		BasePackage:  settings.BasePackage,
		JavaRoot:     settings.JavaRoot,
		Indicators:   settings.Indicators,
		Components:   settings.Components,
		Force:        settings.Force,
		APIDocPrefix: settings.APIDocPrefix,
		ConfigFile:   settings.File,
	}
}

// DetectorOptions returns the project detection options of the run
func (c Config) DetectorOptions() project.Options {
	return project.Options{
		JavaRoot:    c.JavaRoot,
		BasePackage: c.BasePackage,
		Indicators:  c.Indicators,
	}
}

// Validate checks the merged settings before anything touches the project
func (c Config) Validate() error {
	errs := errors.NewMultipleErrors()
	collect := func(err error) {
		if err == nil {
			return
		}
		switch e := err.(type) {
		case *errors.MultipleErrors:
			errs.Errors = append(errs.Errors, e.Errors...)
		case errors.GenError:
			errs.Add(e)
		}
	}

	collect(utils.Optional(utils.MatchesRegex("base package", javaPackagePattern, "a dotted Java package name"))(c.BasePackage))
	collect(utils.NewValidatorChain(
		utils.NotEmpty("java root"),
	).Validate(c.JavaRoot))
	collect(utils.Optional(utils.HasPrefix("api doc prefix", "/"))(c.APIDocPrefix))
	collect(utils.Each(utils.MatchesRegex("indicator", packagePartPattern, "a single package name"))(c.Indicators))

	return errs.ErrOrNil()
}
