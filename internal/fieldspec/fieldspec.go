// Package fieldspec parses the compact field definition language used on the
// command line:
//
//	name:String:@NotBlank;@Size(max = 80),price:BigDecimal,tags:List<String>
//
// Each entry is name:Type with an optional third part holding
// semicolon-separated annotations. Commas inside annotation arguments or
// generic type arguments do not split entries.
package fieldspec

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/naming"
)

// SourceName is the pseudo file name used in positions of parse errors
const SourceName = "--fields"

// reservedFields are provided by BaseModel / BaseResponse in the target project
var reservedFields = map[string]bool{
	"id":        true,
	"createdBy": true,
	"updatedBy": true,
	"deletedBy": true,
	"createdAt": true,
	"updatedAt": true,
	"deletedAt": true,
	"deleted":   true,
	"isDeleted": true,
	"isActive":  true,
}

// reservedColumns are the columns of reservedFields plus the fixed entries of
// the JDBC allowed-columns map
var reservedColumns = func() map[string]bool {
	cols := make(map[string]bool, len(reservedFields))
	for name := range reservedFields {
		cols[naming.ToSnake(name)] = true
	}
	return cols
}()

// javaKeywords cannot be used as field names in generated sources
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "var": true, "yield": true,
	"record": true, "_": true,
}

// Field is one generated property
type Field struct {
	Name        string
	Type        TypeRef
	Annotations []string // verbatim, each starting with @
	Column      string   // snake_case column name
	Loc         errors.SourceLocation
}

// JavaType returns the Java source spelling of the field type
func (f Field) JavaType() string {
	return f.Type.String()
}

// HasAnnotation reports whether a user annotation with the given simple name
// (without @) was supplied
func (f Field) HasAnnotation(name string) bool {
	for _, a := range f.Annotations {
		if AnnotationName(a) == name {
			return true
		}
	}
	return false
}

// TypeRef is a parsed Java type reference
type TypeRef struct {
	Name string // possibly dotted
	Args []TypeRef
	Dims int
}

// String renders the type as Java source
func (t TypeRef) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		b.WriteString("<")
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteString(">")
	}
	for i := 0; i < t.Dims; i++ {
		b.WriteString("[]")
	}
	return b.String()
}

// Simple returns the last segment of a dotted type name
func (t TypeRef) Simple() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// Qualified reports whether the type was written with its package
func (t TypeRef) Qualified() bool {
	return strings.Contains(t.Name, ".")
}

// IsPlain reports whether the type is exactly the simple, non-generic,
// non-array type name
func (t TypeRef) IsPlain(name string) bool {
	return t.Name == name && len(t.Args) == 0 && t.Dims == 0
}

// Parse parses a field definition string. An empty or blank input yields no
// fields.
func Parse(input string) ([]Field, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	ast, err := specParser.ParseString(SourceName, input)
	if err != nil {
		return nil, toSyntaxError(input, err)
	}

	var (
		fields  []Field
		columns = make(map[string]string)
		multi   = errors.NewMultipleErrors()
	)
	for _, entry := range ast.Entries {
		if entry == nil {
			continue
		}
		loc := location(entry.Pos)
		column := naming.ToSnake(entry.Name)

		switch {
		case javaKeywords[entry.Name]:
			multi.Add(errors.NewValidationError("field name", "a name that is not a Java keyword", entry.Name).
				WithLocation(loc))
			continue
		case reservedFields[entry.Name] || reservedColumns[column]:
			multi.Add(errors.NewValidationError("field name", "a name not provided by BaseModel", entry.Name).
				WithLocation(loc).
				WithSuggestions("Audit fields (id, createdAt, updatedAt, deletedAt, ...) are inherited; drop them from --fields"))
			continue
		case columns[column] == entry.Name:
			multi.Add(errors.NewValidationError("field name", "a unique name", entry.Name).
				WithLocation(loc))
			continue
		case columns[column] != "":
			multi.Add(errors.NewValidationError("field name", "a unique column", entry.Name).
				WithLocation(loc).
				WithSuggestions(fmt.Sprintf("'%s' and '%s' both map to column %s", columns[column], entry.Name, column)))
			continue
		}
		columns[column] = entry.Name

		fields = append(fields, Field{
			Name:        entry.Name,
			Type:        convertType(entry.Type),
			Annotations: annotationTexts(input, entry.Annotations),
			Column:      column,
			Loc:         loc,
		})
	}

	if err := multi.ErrOrNil(); err != nil {
		return nil, err
	}
	return fields, nil
}

// AnnotationName returns the simple name of an annotation, e.g.
// "@Size(max = 10)" -> "Size", "@jakarta.validation.constraints.NotNull" -> "NotNull"
func AnnotationName(annotation string) string {
	name := strings.TrimPrefix(strings.TrimSpace(annotation), "@")
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func convertType(t *javaType) TypeRef {
	ref := TypeRef{
		Name: strings.Join(t.Name, "."),
		Dims: len(t.Dims),
	}
	for _, arg := range t.Args {
		ref.Args = append(ref.Args, convertType(arg))
	}
	return ref
}

func annotationTexts(input string, anns []*annotation) []string {
	var out []string
	for _, a := range anns {
		if a == nil {
			continue
		}
		text := "@" + strings.Join(a.Name, ".")
		if a.Args != nil {
			text += strings.TrimSpace(input[a.Args.Pos.Offset:a.Args.EndPos.Offset])
		}
		out = append(out, text)
	}
	return out
}

func location(pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{
		File:   SourceName,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func toSyntaxError(input string, err error) error {
	var perr participle.Error
	if stderrors.As(err, &perr) {
		syntaxErr := errors.NewSyntaxError(input, perr.Message(), location(perr.Position()))
		syntaxErr.WithSuggestions(
			"Each field is name:Type or name:Type:@Annotation;@Annotation",
			"Separate fields with commas, e.g. \"name:String:@NotBlank,price:BigDecimal\"",
		)
		return syntaxErr
	}
	return errors.Wrap(errors.SyntaxErrorCode, fmt.Sprintf("failed to parse %s", SourceName), err)
}
