package cli

import (
	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/naming"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/utils"
	"github.com/toyz/crudgen/internal/writer"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	diagnostics *utils.DiagnosticSystem
	logger      *zap.Logger
}

// NewCleaner creates a new cleaner
func NewCleaner(diagnostics *utils.DiagnosticSystem, logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		diagnostics: diagnostics,
		logger:      logger,
	}
}

// CleanEntity removes the files recorded in the manifest for an entity
func (c *Cleaner) CleanEntity(config Config) ([]string, error) {
	names, err := naming.NewEntityNames(config.Entity)
	if err != nil {
		return nil, err
	}

	// the manifest records the base package, so only the roots are needed
	layout, err := project.NewDetector(config.DetectorOptions(), c.logger).Root(config.ProjectDir)
	if err != nil {
		return nil, err
	}

	removed, err := writer.New(layout, c.logger).Clean(names.Name, config.DryRun)
	if err != nil {
		return removed, err
	}

	if config.DryRun {
		c.diagnostics.Section("Dry run, the following files would be removed:")
	} else if len(removed) > 0 {
		c.diagnostics.Section("Removed the following files:")
	}
	for _, file := range removed {
		c.diagnostics.List("%s", file)
	}
	if !config.DryRun {
		c.diagnostics.Success("Cleaned %s (%d files)", names.Name, len(removed))
	}
	return removed, nil
}
