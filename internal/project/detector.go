package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/utils/fileops"
)

var packagePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// Options tunes detection. Zero values select the defaults.
type Options struct {
	JavaRoot    string   // source root relative to the project root
	BasePackage string   // explicit base package, skips inference
	Indicators  []string // subpackage names that mark the base package
}

// Detector finds the source root and base package of a project
type Detector struct {
	javaRoot    string
	basePackage string
	indicators  map[string]bool
	ops         *fileops.FileOps
	logger      *zap.Logger
}

// NewDetector creates a detector; a nil logger discards debug output
func NewDetector(opts Options, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	javaRoot := opts.JavaRoot
	if javaRoot == "" {
		javaRoot = DefaultJavaRoot
	}
	indicators := opts.Indicators
	if len(indicators) == 0 {
		indicators = DefaultIndicators
	}

	set := make(map[string]bool, len(indicators))
	for _, name := range indicators {
		set[name] = true
	}

	return &Detector{
		javaRoot:    filepath.Clean(filepath.FromSlash(javaRoot)),
		basePackage: strings.TrimSpace(opts.BasePackage),
		indicators:  set,
		ops:         fileops.NewFileOps(),
		logger:      logger.Named("detect"),
	}
}

// Detect resolves the full layout starting from dir
func (d *Detector) Detect(dir string) (Layout, error) {
	layout, err := d.Root(dir)
	if err != nil {
		return Layout{}, err
	}
	javaRoot := layout.JavaRoot

	if d.basePackage != "" {
		if !packagePattern.MatchString(d.basePackage) {
			return Layout{}, errors.NewValidationError("base package", "a dotted Java package like com.example.app", d.basePackage)
		}
		layout.BasePackage = d.basePackage
		layout.BaseDir = filepath.Join(append([]string{javaRoot}, strings.Split(d.basePackage, ".")...)...)
		d.logger.Debug("using explicit base package", zap.String("package", d.basePackage))
		return layout, nil
	}

	layout.BasePackage, layout.BaseDir, err = d.InferBasePackage(javaRoot)
	if err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Root resolves only the project and Java roots, leaving the base package
// empty. It is enough for operations driven by the manifest.
func (d *Detector) Root(dir string) (Layout, error) {
	javaRoot, err := d.FindJavaRoot(dir)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		ProjectRoot: strings.TrimSuffix(javaRoot, string(filepath.Separator)+d.javaRoot),
		JavaRoot:    javaRoot,
		BaseDir:     javaRoot,
	}, nil
}

// FindJavaRoot walks from dir up to the filesystem root and returns the first
// existing <ancestor>/src/main/java directory
func (d *Detector) FindJavaRoot(dir string) (string, error) {
	current, err := d.ops.PathValidator().GetAbsolutePath(dir)
	if err != nil {
		return "", err
	}
	start := current

	for {
		candidate := filepath.Join(current, d.javaRoot)
		if d.ops.IsDir(candidate) {
			d.logger.Debug("found java root", zap.String("path", candidate))
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", errors.DetectionError(start, "could not find "+filepath.ToSlash(d.javaRoot)+" in "+start+" or any parent directory").
		WithSuggestions(
			"Run crudgen from inside a Spring Boot project",
			"Use --project to point at the project root",
		)
}

// InferBasePackage descends from javaRoot until it reaches a directory that
// holds Spring Boot indicator subpackages or Java files, or has no
// subdirectories. It returns the dotted package and its directory.
func (d *Detector) InferBasePackage(javaRoot string) (string, string, error) {
	var parts []string
	current := javaRoot

	for {
		entries, err := os.ReadDir(current)
		if err != nil {
			return "", "", errors.WrapFileSystemError("read directory", current, err)
		}

		var subdirs []string
		hasIndicator, hasJava := false, false
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if d.indicators[name] {
					hasIndicator = true
				}
				if !strings.HasPrefix(name, ".") {
					subdirs = append(subdirs, name)
				}
				continue
			}
			if strings.HasSuffix(name, ".java") {
				hasJava = true
			}
		}

		if len(subdirs) == 0 || hasIndicator || hasJava {
			d.logger.Debug("base package directory reached",
				zap.String("dir", current),
				zap.Bool("indicator", hasIndicator),
				zap.Bool("java_files", hasJava))

			if len(parts) == 0 && !hasIndicator {
				return "", "", errors.DetectionError(javaRoot, "could not detect base package: no Java package structure found in "+javaRoot).
					WithSuggestions(
						"Create the base package directory (e.g. src/main/java/com/example/app/model)",
						"Or pass --base-package explicitly",
					)
			}
			return strings.Join(parts, "."), current, nil
		}

		// os.ReadDir sorts by name, so the descent is deterministic
		parts = append(parts, subdirs[0])
		current = filepath.Join(current, subdirs[0])
	}
}
