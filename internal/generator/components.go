package generator

import (
	"path/filepath"
	"strings"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/naming"
	"github.com/toyz/crudgen/internal/project"
)

// Component is one generated Java source file kind
type Component struct {
	Name       string // template and --only name
	Subpackage string // dotted, relative to the base package
	Suffix     string // appended to the entity name to form the class name
	PerEntity  bool   // the entity's lowercase name is appended to Subpackage
}

// Components lists every component in generation order
var Components = []Component{
	{Name: "model", Subpackage: "model"},
	{Name: "repository", Subpackage: "repository.jpa", Suffix: "Repository"},
	{Name: "jdbc-repository", Subpackage: "repository.jdbc", Suffix: "JdbcRepository"},
	{Name: "create-request", Subpackage: "dto", Suffix: "CreateRequest", PerEntity: true},
	{Name: "update-request", Subpackage: "dto", Suffix: "UpdateRequest", PerEntity: true},
	{Name: "response", Subpackage: "dto", Suffix: "Response", PerEntity: true},
	{Name: "service", Subpackage: "service", Suffix: "Service"},
	{Name: "service-impl", Subpackage: "service.impl", Suffix: "ServiceImpl"},
	{Name: "mapper", Subpackage: "mapper", Suffix: "Mapper"},
	{Name: "controller", Subpackage: "controller", Suffix: "ApiController"},
}

// SubpackageFor returns the dotted subpackage holding this component for an entity
func (c Component) SubpackageFor(names naming.EntityNames) string {
	if c.PerEntity {
		return c.Subpackage + "." + names.Lower
	}
	return c.Subpackage
}

// ClassName returns the Java class name for an entity
func (c Component) ClassName(names naming.EntityNames) string {
	return names.Name + c.Suffix
}

// FileName returns the Java source file name for an entity
func (c Component) FileName(names naming.EntityNames) string {
	return c.ClassName(names) + ".java"
}

// Path returns where the component's file lives inside a layout
func (c Component) Path(layout project.Layout, names naming.EntityNames) string {
	return filepath.Join(layout.PackageDir(c.SubpackageFor(names)), c.FileName(names))
}

// ComponentNames returns the names of all components in generation order
func ComponentNames() []string {
	names := make([]string, len(Components))
	for i, c := range Components {
		names[i] = c.Name
	}
	return names
}

// Select returns the named components in generation order. An empty
// selection means all of them; unknown names are collected into one error.
func Select(names []string) ([]Component, error) {
	if len(names) == 0 {
		return Components, nil
	}

	wanted := make(map[string]bool, len(names))
	errs := errors.NewMultipleErrors()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := lookup(name); !ok {
			errs.Add(errors.NewValidationError("component", "one of "+strings.Join(ComponentNames(), ", "), name))
			continue
		}
		wanted[name] = true
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	if len(wanted) == 0 {
		return Components, nil
	}

	var out []Component
	for _, c := range Components {
		if wanted[c.Name] {
			out = append(out, c)
		}
	}
	return out, nil
}

func lookup(name string) (Component, bool) {
	for _, c := range Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}
