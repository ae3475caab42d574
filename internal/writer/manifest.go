package writer

import (
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/utils/fileops"
)

const (
	// ManifestDir holds crudgen state inside the project root
	ManifestDir = ".crudgen"
	// ManifestFile is the manifest name inside ManifestDir
	ManifestFile = "manifest.yaml"

	manifestVersion = 1
)

// Manifest records which files were generated for which entity
type Manifest struct {
	Version  int              `yaml:"version"`
	Entities map[string]Entry `yaml:"entities"`
}

// Entry is the record of the last generation run for one entity
type Entry struct {
	RunID       string    `yaml:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	BasePackage string    `yaml:"base_package"`
	Files       []string  `yaml:"files"` // slash-separated, relative to the project root
}

// ManifestPath returns the manifest location for a project root
func ManifestPath(projectRoot string) string {
	return filepath.Join(projectRoot, ManifestDir, ManifestFile)
}

// LoadManifest reads the manifest of a project. A missing manifest is empty.
func LoadManifest(ops *fileops.FileOps, projectRoot string) (*Manifest, error) {
	path := ManifestPath(projectRoot)
	m := &Manifest{Version: manifestVersion, Entities: map[string]Entry{}}

	exists, err := ops.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return m, nil
	}
	content, err := ops.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, m); err != nil {
		return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to parse manifest", err).
			WithLocation(errors.SourceLocation{File: path}).
			WithSuggestions("Delete " + path + " to start a fresh manifest")
	}
	if m.Entities == nil {
		m.Entities = map[string]Entry{}
	}
	return m, nil
}

// Save writes the manifest back to the project
func (m *Manifest) Save(ops *fileops.FileOps, projectRoot string) error {
	m.Version = manifestVersion
	content, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "failed to encode manifest", err)
	}
	return ops.WriteFile(ManifestPath(projectRoot), content)
}

// Record replaces the entry for an entity. Files still listed from an
// earlier run are kept so a partial --only run does not orphan them.
func (m *Manifest) Record(entity string, entry Entry) {
	if prev, ok := m.Entities[entity]; ok {
		entry.Files = append(entry.Files, prev.Files...)
	}
	entry.Files = uniqueSorted(entry.Files)
	m.Entities[entity] = entry
}

// EntityNames lists the recorded entities in sorted order
func (m *Manifest) EntityNames() []string {
	names := make([]string, 0, len(m.Entities))
	for name := range m.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
