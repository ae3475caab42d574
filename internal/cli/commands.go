package cli

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/config"
	"github.com/toyz/crudgen/internal/generator"
	"github.com/toyz/crudgen/internal/logging"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/utils"
)

// App carries the state shared by every command of one invocation
type App struct {
	stdout, stderr io.Writer

	projectDir  string
	configFile  string
	basePackage string
	javaRoot    string
	verbose     bool
	quiet       bool
	debug       bool

	fields string
	only   []string
	force  bool
	dryRun bool

	diagnostics *utils.DiagnosticSystem
	logger      *zap.Logger
	loader      *config.Loader
}

// NewApp creates an App writing to the given streams
func NewApp(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	app := NewApp(stdout, stderr)
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		reporter := NewDiagnosticReporter(app.verbose || app.debug, stderr)
		reporter.SetColors(stderr == io.Writer(os.Stderr) && !color.NoColor)
		reporter.ReportError(err)
		return 1
	}
	return 0
}

// NewRootCommand builds the crudgen command tree
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crudgen [Entity]",
		Short: "Generate Spring Boot CRUD components",
		Long: `crudgen scaffolds a JPA entity, repositories, DTOs, a service, a MapStruct
mapper and a REST controller for one entity, inside the package layout of an
existing Spring Boot project.

Field definitions use name:Type[:annotation;annotation], separated by commas:
  crudgen generate Product --fields "name:String:@Size(max = 100),price:BigDecimal:@NotNull"`,
		Args:              cobra.MaximumNArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.runGenerate(cmd, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.projectDir, "project", "p", ".", "project directory to search for src/main/java")
	flags.StringVar(&app.configFile, "config", "", "config file (default <project>/"+config.FileName+")")
	flags.StringVar(&app.basePackage, "base-package", "", "base package, skips inference")
	flags.StringVar(&app.javaRoot, "java-root", "", "source root relative to the project (default "+project.DefaultJavaRoot+")")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "show detection details")
	flags.BoolVarP(&app.quiet, "quiet", "q", false, "only show errors")
	flags.BoolVar(&app.debug, "debug", false, "enable debug logging")

	addGenerateFlags(root, app)
	root.AddCommand(newGenerateCommand(app), newDetectCommand(app), newCleanCommand(app))
	return root
}

func addGenerateFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVarP(&app.fields, "fields", "f", "", `field definitions, e.g. "name:String:@NotBlank,price:BigDecimal"`)
	cmd.Flags().StringSliceVar(&app.only, "only", nil, "components to generate (default all): "+strings.Join(generator.ComponentNames(), ", "))
	cmd.Flags().BoolVar(&app.force, "force", false, "overwrite existing files")
	cmd.Flags().BoolVar(&app.dryRun, "dry-run", false, "show what would be written without writing")
}

func newGenerateCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <Entity>",
		Aliases: []string{"gen", "g"},
		Short:   "Generate the CRUD components for an entity",
		Example: `  crudgen generate Product --fields "name:String,price:BigDecimal:@DecimalMin(\"0.0\")"
  crudgen generate OrderItem --only model,repository --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGenerate(cmd, args[0])
		},
	}
	addGenerateFlags(cmd, app)
	return cmd
}

func newDetectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the detected Java root and base package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.runConfig(cmd)
			if err != nil {
				return err
			}
			gen, err := NewGenerator(app.diagnostics, app.logger)
			if err != nil {
				return err
			}
			layout, err := gen.Detect(cfg)
			if err != nil {
				return err
			}
			app.diagnostics.Summary("Detected project layout", map[string]interface{}{
				"Project root":   layout.ProjectRoot,
				"Java root":      layout.JavaRoot,
				"Base package":   displayPackage(layout.BasePackage),
				"Base directory": layout.BaseDir,
			})
			return nil
		},
	}
}

func newCleanCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <Entity>",
		Short: "Remove the files generated for an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.runConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Entity = args[0]
			cfg.DryRun = app.dryRun
			_, err = NewCleaner(app.diagnostics, app.logger).CleanEntity(cfg)
			return err
		},
	}
	cmd.Flags().BoolVar(&app.dryRun, "dry-run", false, "show what would be removed without removing")
	return cmd
}

// setup creates the logger and diagnostics once flags are parsed
func (a *App) setup(cmd *cobra.Command, args []string) error {
	a.logger = logging.New(a.stderr, a.debug)

	a.diagnostics = utils.NewDiagnosticSystem(utils.LevelFor(a.quiet, a.verbose, a.debug))
	a.diagnostics.SetOutput(a.stdout, a.stderr)

	a.loader = config.NewLoader()
	return nil
}

// runConfig merges flags, environment and config file for a command
func (a *App) runConfig(cmd *cobra.Command) (Config, error) {
	if err := a.loader.BindFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}
	settings, err := a.loader.Load(a.projectDir, a.configFile)
	if err != nil {
		return Config{}, err
	}
	a.logger.Debug("configuration loaded",
		zap.String("file", settings.File),
		zap.String("base_package", settings.BasePackage),
		zap.Strings("components", settings.Components))
	cfg := FromSettings(settings, a.projectDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (a *App) runGenerate(cmd *cobra.Command, entity string) error {
	cfg, err := a.runConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Entity = entity
	cfg.Fields = a.fields
	cfg.DryRun = a.dryRun

	gen, err := NewGenerator(a.diagnostics, a.logger)
	if err != nil {
		return err
	}
	err = gen.Run(cfg)

	summary := gen.GetSummary()
	a.logger.Debug("generation finished",
		zap.String("entity", summary.Entity),
		zap.String("run_id", summary.RunID),
		zap.Int("written", len(summary.GeneratedFiles)),
		zap.Int("skipped", len(summary.SkippedFiles)),
		zap.Duration("duration", summary.Duration),
		zap.Error(err))
	if err != nil && !summary.DryRun && len(summary.GeneratedFiles) > 0 {
		a.diagnostics.Warn("%d file(s) were written before the failure; run 'crudgen clean %s' to remove them",
			len(summary.GeneratedFiles), summary.Entity)
	}
	return err
}
