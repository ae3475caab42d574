package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/crudgen/internal/project"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader().Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.BasePackage)
	assert.Equal(t, project.DefaultJavaRoot, cfg.JavaRoot)
	assert.Equal(t, project.DefaultIndicators, cfg.Indicators)
	assert.Empty(t, cfg.Components)
	assert.False(t, cfg.Force)
	assert.Equal(t, "/api/v2", cfg.APIDocPrefix)
	assert.Empty(t, cfg.File)
}

func TestLoad_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, FileName, `
base_package: com.acme.store
components: [model, controller]
force: true
api_doc_prefix: api/v3/
indicators:
  - web
  - domain
`)

	cfg, err := NewLoader().Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "com.acme.store", cfg.BasePackage)
	assert.Equal(t, []string{"model", "controller"}, cfg.Components)
	assert.True(t, cfg.Force)
	assert.Equal(t, "/api/v3", cfg.APIDocPrefix)
	assert.Equal(t, []string{"web", "domain"}, cfg.Indicators)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := NewLoader().Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration")
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", "base_package: org.sample\n")

	cfg, err := NewLoader().Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "org.sample", cfg.BasePackage)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "base_package: [unclosed\n")

	_, err := NewLoader().Load(dir, "")
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "base_package: com.from.file\n")
	t.Setenv("CRUDGEN_BASE_PACKAGE", "com.from.env")
	t.Setenv("CRUDGEN_COMPONENTS", "model,mapper")

	cfg, err := NewLoader().Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "com.from.env", cfg.BasePackage)
	assert.Equal(t, []string{"model", "mapper"}, cfg.Components)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "base_package: com.from.file\nforce: false\n")
	t.Setenv("CRUDGEN_BASE_PACKAGE", "com.from.env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-package", "", "")
	flags.StringSlice("only", nil, "")
	flags.Bool("force", false, "")
	require.NoError(t, flags.Parse([]string{"--base-package", "com.from.flag", "--only", "service,service-impl", "--force"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlags(flags))
	cfg, err := loader.Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "com.from.flag", cfg.BasePackage)
	assert.Equal(t, []string{"service", "service-impl"}, cfg.Components)
	assert.True(t, cfg.Force)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "base_package: com.from.file\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-package", "", "")
	require.NoError(t, flags.Parse(nil))

	loader := NewLoader()
	require.NoError(t, loader.BindFlags(flags))
	cfg, err := loader.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "com.from.file", cfg.BasePackage)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c"}))
	assert.Nil(t, splitList(nil))
}
