package writer

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/generator"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/utils/fileops"
)

// Options controls the overwrite policy
type Options struct {
	Force  bool // overwrite existing files
	DryRun bool // report only, touch nothing
}

// Result lists what a write pass did, as project-relative slash paths
type Result struct {
	RunID   string
	Written []string
	Skipped []string // existing files left alone
	DryRun  bool
}

// Writer puts generated files on disk and keeps the manifest current
type Writer struct {
	ops    *fileops.FileOps
	layout project.Layout
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

// New creates a writer for a detected layout. A nil logger disables logging.
func New(layout project.Layout, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		ops:    fileops.NewFileOps(),
		layout: layout,
		logger: logger.Named("write"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Write writes files for entity. Existing files are skipped unless
// opts.Force; with opts.DryRun nothing is written and the manifest is
// left alone. Files written before a failure are still recorded so that
// Clean can remove them.
func (w *Writer) Write(entity string, files []generator.File, opts Options) (result *Result, err error) {
	result = &Result{RunID: w.newID(), DryRun: opts.DryRun}
	guard := w.ops.PathValidator()

	defer func() {
		if opts.DryRun || len(result.Written) == 0 {
			return
		}
		if recordErr := w.record(entity, result); recordErr != nil {
			if err != nil {
				w.logger.Warn("failed to record partial run", zap.Error(recordErr))
				return
			}
			err = recordErr
		}
	}()

	for _, f := range files {
		if !guard.Within(w.layout.ProjectRoot, f.Path) {
			return result, errors.Newf(errors.FileSystemErrorCode, "refusing to write '%s' outside the project root", f.Path).
				WithContext("project_root", w.layout.ProjectRoot).
				WithSuggestions("Generated files must stay inside the project root")
		}
		rel := w.layout.Rel(f.Path)

		if !opts.Force {
			exists, err := w.ops.Exists(f.Path)
			if err != nil {
				return result, err
			}
			if exists {
				w.logger.Warn("file exists, skipping", zap.String("path", rel))
				result.Skipped = append(result.Skipped, rel)
				continue
			}
		}
		if opts.DryRun {
			result.Written = append(result.Written, rel)
			continue
		}
		if err := w.ops.WriteFile(f.Path, []byte(f.Content)); err != nil {
			return result, err
		}
		w.logger.Debug("wrote file", zap.String("path", rel), zap.String("component", f.Component))
		result.Written = append(result.Written, rel)
	}
	return result, nil
}

// record merges a run into the manifest
func (w *Writer) record(entity string, result *Result) error {
	manifest, err := LoadManifest(w.ops, w.layout.ProjectRoot)
	if err != nil {
		return err
	}
	manifest.Record(entity, Entry{
		RunID:       result.RunID,
		GeneratedAt: w.now().UTC().Truncate(time.Second),
		BasePackage: w.layout.BasePackage,
		Files:       append([]string(nil), result.Written...),
	})
	return manifest.Save(w.ops, w.layout.ProjectRoot)
}

// Clean removes every file recorded for entity and drops its manifest
// entry. Files already gone are ignored. It returns the removed files.
func (w *Writer) Clean(entity string, dryRun bool) ([]string, error) {
	manifest, err := LoadManifest(w.ops, w.layout.ProjectRoot)
	if err != nil {
		return nil, err
	}
	entry, ok := manifest.Entities[entity]
	if !ok {
		verr := errors.NewValidationError("entity", "an entity recorded in "+ManifestPath(w.layout.ProjectRoot), entity)
		if known := manifest.EntityNames(); len(known) > 0 {
			return nil, verr.WithSuggestions("Recorded entities: " + strings.Join(known, ", "))
		}
		return nil, verr.WithSuggestions("Nothing has been generated in this project yet")
	}

	// only the entity's own DTO subpackage directory is pruned once empty
	pruneStop := filepath.Join(append([]string{w.layout.JavaRoot}, append(packagePath(entry.BasePackage), "dto")...)...)

	var removed []string
	for _, rel := range entry.Files {
		path := filepath.Join(w.layout.ProjectRoot, filepath.FromSlash(rel))
		if !w.ops.PathValidator().Within(w.layout.ProjectRoot, path) {
			w.logger.Warn("manifest entry outside project root, skipping", zap.String("path", rel))
			continue
		}
		if dryRun {
			exists, err := w.ops.Exists(path)
			if err != nil {
				return removed, err
			}
			if exists {
				removed = append(removed, rel)
			}
			continue
		}
		gone, err := w.ops.RemoveFile(path)
		if err != nil {
			return removed, err
		}
		if gone {
			removed = append(removed, rel)
			w.ops.RemoveEmptyDirs(filepath.Dir(path), pruneStop)
		}
	}
	if dryRun {
		return removed, nil
	}

	delete(manifest.Entities, entity)
	if err := manifest.Save(w.ops, w.layout.ProjectRoot); err != nil {
		return removed, err
	}
	return removed, nil
}

func packagePath(pkg string) []string {
	if pkg == "" {
		return nil
	}
	return strings.Split(pkg, ".")
}
