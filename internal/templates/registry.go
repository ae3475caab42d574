package templates

import (
	"bytes"
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/naming"
)

//go:embed java/*.java.tmpl
var javaFS embed.FS

// files maps each component name to its embedded template
var files = map[string]string{
	"model":           "java/model.java.tmpl",
	"repository":      "java/repository.java.tmpl",
	"jdbc-repository": "java/jdbc_repository.java.tmpl",
	"create-request":  "java/create_request.java.tmpl",
	"update-request":  "java/update_request.java.tmpl",
	"response":        "java/response.java.tmpl",
	"service":         "java/service.java.tmpl",
	"service-impl":    "java/service_impl.java.tmpl",
	"mapper":          "java/mapper.java.tmpl",
	"controller":      "java/controller.java.tmpl",
}

// FuncMap is available to every template
var FuncMap = template.FuncMap{
	"lower":  strings.ToLower,
	"camel":  naming.ToLowerCamel,
	"snake":  naming.ToSnake,
	"kebab":  naming.ToKebab,
	"plural": naming.Pluralize,
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},
}

// Registry holds the parsed Java templates keyed by component name
type Registry struct {
	templates map[string]*template.Template
}

// NewRegistry parses every embedded template
func NewRegistry() (*Registry, error) {
	registry := &Registry{
		templates: make(map[string]*template.Template, len(files)),
	}
	for name, file := range files {
		src, err := javaFS.ReadFile(file)
		if err != nil {
			return nil, errors.WrapTemplateError(name, "load", err)
		}
		tmpl, err := template.New(name).Funcs(FuncMap).Option("missingkey=error").Parse(string(src))
		if err != nil {
			return nil, errors.WrapTemplateError(name, "parse", err)
		}
		registry.templates[name] = tmpl
	}
	return registry, nil
}

// MustNewRegistry is NewRegistry that panics on a broken embedded template
func MustNewRegistry() *Registry {
	registry, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get retrieves a template by name
func (r *Registry) Get(name string) (*template.Template, bool) {
	tmpl, ok := r.templates[name]
	return tmpl, ok
}

// Names lists the registered template names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with data
func (r *Registry) Render(name string, data any) (string, error) {
	tmpl, ok := r.Get(name)
	if !ok {
		return "", errors.TemplateError(name, "template not found").
			WithSuggestions("Known templates: " + strings.Join(r.Names(), ", "))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}
