package generator

import (
	"go.uber.org/zap"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/fieldspec"
	"github.com/toyz/crudgen/internal/naming"
	"github.com/toyz/crudgen/internal/project"
	"github.com/toyz/crudgen/internal/templates"
)

// DefaultAPIDocPrefix is the URL prefix quoted in controller docs
const DefaultAPIDocPrefix = "/api/v2"

// auditTargets are BaseModel properties the mapper never copies from a request
var auditTargets = []string{"id", "createdBy", "updatedBy", "deletedBy", "createdAt", "updatedAt", "deletedAt"}

// File is a rendered source file that has not been written yet
type File struct {
	Component string
	Package   string
	Path      string
	Content   string
}

// Options controls what gets generated
type Options struct {
	Components   []string // empty means all
	APIDocPrefix string
}

// CodeGenerator renders the sources for one entity
type CodeGenerator interface {
	Generate(names naming.EntityNames, fields []fieldspec.Field, layout project.Layout, opts Options) ([]File, error)
}

// Generator renders components through the template registry
type Generator struct {
	registry *templates.Registry
	logger   *zap.Logger
}

// NewGenerator creates a generator. A nil logger disables logging.
func NewGenerator(registry *templates.Registry, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		registry: registry,
		logger:   logger.Named("generate"),
	}
}

// Generate renders the selected components for an entity into memory
func (g *Generator) Generate(names naming.EntityNames, fields []fieldspec.Field, layout project.Layout, opts Options) ([]File, error) {
	components, err := Select(opts.Components)
	if err != nil {
		return nil, err
	}
	prefix := opts.APIDocPrefix
	if prefix == "" {
		prefix = DefaultAPIDocPrefix
	}

	files := make([]File, 0, len(components))
	for _, c := range components {
		data := g.buildData(c, names, fields, layout)
		data.APIDocPrefix = prefix

		content, err := g.registry.Render(c.Name, data)
		if err != nil {
			return nil, errors.WrapGenerateError(c.Name, names.Name, err)
		}
		file := File{
			Component: c.Name,
			Package:   data.Package,
			Path:      c.Path(layout, names),
			Content:   content,
		}
		g.logger.Debug("rendered component",
			zap.String("component", c.Name),
			zap.String("package", file.Package),
			zap.Int("bytes", len(content)))
		files = append(files, file)
	}
	return files, nil
}

func (g *Generator) buildData(c Component, names naming.EntityNames, fields []fieldspec.Field, layout project.Layout) templates.Data {
	data := templates.Data{
		BasePackage: layout.BasePackage,
		Package:     layout.PackageName(c.SubpackageFor(names)),
		Entity:      names,
	}

	switch c.Name {
	case "model":
		data.Imports = componentImports(fields,
			"jakarta.persistence.*",
			data.Pkg("model.core.BaseModel"),
			"lombok.*",
			"lombok.experimental.SuperBuilder")
		data.Fields = fieldData(fields, nil)
	case "create-request":
		data.Imports = componentImports(fields,
			"jakarta.validation.constraints.*",
			"lombok.Data",
			"lombok.EqualsAndHashCode",
			data.Pkg("dto.core.BaseRequest"))
		data.Fields = fieldData(fields, fieldspec.CreateAnnotations)
	case "update-request":
		data.Imports = componentImports(fields,
			"jakarta.validation.constraints.*",
			"lombok.Data",
			"lombok.EqualsAndHashCode",
			data.Pkg("dto.core.BaseRequest"))
		data.Fields = fieldData(fields, fieldspec.UpdateAnnotations)
	case "response":
		data.Imports = componentImports(fields,
			"lombok.Data",
			"lombok.EqualsAndHashCode",
			data.Pkg("dto.core.BaseResponse"))
		data.Fields = fieldData(fields, nil)
	case "repository":
		data.SearchColumns = searchColumns(fields)
	case "jdbc-repository":
		data.Columns = allowedColumns(fields)
	case "mapper":
		data.IgnoredTargets = auditTargets
	}
	return data
}

func componentImports(fields []fieldspec.Field, base ...string) []string {
	return fieldspec.SortedImports(append(base, fieldspec.FieldImports(fields)...))
}

func fieldData(fields []fieldspec.Field, annotate func(fieldspec.Field) []string) []templates.FieldData {
	out := make([]templates.FieldData, len(fields))
	for i, f := range fields {
		out[i] = templates.FieldData{
			Name:   f.Name,
			Type:   f.JavaType(),
			Column: f.Column,
		}
		if annotate != nil {
			out[i].Annotations = annotate(f)
		}
	}
	return out
}

// allowedColumns is id and created_at followed by one column per field
func allowedColumns(fields []fieldspec.Field) []templates.Column {
	out := []templates.Column{
		{Name: "id", Filter: fieldspec.FilterNumber},
		{Name: "created_at", Filter: fieldspec.FilterDate},
	}
	for _, f := range fields {
		out = append(out, templates.Column{Name: f.Column, Filter: fieldspec.FilterTypeOf(f.Type)})
	}
	return out
}

// searchColumns is id plus every plain String property
func searchColumns(fields []fieldspec.Field) []string {
	out := []string{"id"}
	for _, f := range fields {
		if f.Type.IsPlain("String") {
			out = append(out, f.Name)
		}
	}
	return out
}
