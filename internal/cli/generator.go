package cli

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/fieldspec"
	"github.com/toyz/crudgen/internal/generator"
	"github.com/toyz/crudgen/internal/naming"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/templates"
	"github.com/toyz/crudgen/internal/utils"
	"github.com/toyz/crudgen/internal/writer"
)

// nextSteps are printed after a successful run
var nextSteps = []string{
	"Review and customize the generated files",
	"Compile the project: ./gradlew compileJava",
	"Test the endpoints using your API client",
}

// Generator coordinates the CLI generation process
type Generator struct {
	codeGenerator generator.CodeGenerator
	diagnostics   *utils.DiagnosticSystem
	logger        *zap.Logger
	summary       GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry, err := templates.NewRegistry()
	if err != nil {
		return nil, err
	}
	return &Generator{
		codeGenerator: generator.NewGenerator(registry, logger),
		diagnostics:   diagnostics,
		logger:        logger,
	}, nil
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Detect resolves the project layout for a run
func (g *Generator) Detect(config Config) (project.Layout, error) {
	layout, err := project.NewDetector(config.DetectorOptions(), g.logger).Detect(config.ProjectDir)
	if err != nil {
		return project.Layout{}, err
	}
	g.diagnostics.Verbose("Java root: %s", layout.JavaRoot)
	g.diagnostics.Verbose("Base package: %s", displayPackage(layout.BasePackage))
	return layout, nil
}

// Run executes the complete generation process
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{DryRun: config.DryRun}

	// validate everything the user typed before touching the filesystem
	names, err := naming.NewEntityNames(config.Entity)
	if err != nil {
		return err
	}
	fields, err := fieldspec.Parse(config.Fields)
	if err != nil {
		return err
	}
	g.summary.Entity = names.Name

	g.diagnostics.Header("Generating CRUD components for entity: " + names.Name)
	if strings.TrimSpace(config.Fields) != "" {
		g.diagnostics.Info("Fields: %s", config.Fields)
	}
	if config.ConfigFile != "" {
		g.diagnostics.Verbose("Using config file %s", config.ConfigFile)
	}

	layout, err := g.Detect(config)
	if err != nil {
		return err
	}
	g.summary.Layout = layout

	files, err := g.codeGenerator.Generate(names, fields, layout, generator.Options{
		Components:   config.Components,
		APIDocPrefix: config.APIDocPrefix,
	})
	if err != nil {
		return err
	}
	g.diagnostics.Debug("Rendered %d components", len(files))

	result, err := writer.New(layout, g.logger).Write(names.Name, files, writer.Options{
		Force:  config.Force,
		DryRun: config.DryRun,
	})
	if result != nil {
		g.summary.RunID = result.RunID
		g.summary.GeneratedFiles = result.Written
		g.summary.SkippedFiles = result.Skipped
	}
	if err != nil {
		return err
	}
	g.summary.Duration = time.Since(startTime)

	g.ReportSuccess()
	return nil
}

// ReportSuccess prints the outcome of the last run
func (g *Generator) ReportSuccess() {
	s := g.summary

	switch {
	case s.DryRun:
		g.diagnostics.Section("Dry run, the following files would be written:")
	case len(s.GeneratedFiles) > 0:
		g.diagnostics.Section("Successfully generated the following files:")
	}
	for _, file := range s.GeneratedFiles {
		g.diagnostics.Written(file)
	}
	for _, file := range s.SkippedFiles {
		g.diagnostics.Skipped(file, "exists, use --force to overwrite")
	}

	if s.DryRun {
		return
	}
	if len(s.GeneratedFiles) == 0 {
		g.diagnostics.Warn("No files were written for %s", s.Entity)
		return
	}
	g.diagnostics.Verbose("Run %s finished in %s", s.RunID, s.Duration.Round(time.Millisecond))
	g.diagnostics.Success("CRUD generation completed for %s!", s.Entity)
	g.diagnostics.Steps("Next steps:", nextSteps...)
}

func displayPackage(pkg string) string {
	if pkg == "" {
		return "(default package)"
	}
	return pkg
}
