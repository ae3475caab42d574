package fieldspec

import (
	"sort"
)

// FilterType is the column category used by the JDBC pagination layer
type FilterType string

const (
	FilterString  FilterType = "STRING"
	FilterNumber  FilterType = "NUMBER"
	FilterDate    FilterType = "DATE"
	FilterBoolean FilterType = "BOOLEAN"
)

// knownImports maps simple type names to the import they need
var knownImports = map[string]string{
	"LocalDate":      "java.time.LocalDate",
	"LocalDateTime":  "java.time.LocalDateTime",
	"LocalTime":      "java.time.LocalTime",
	"Instant":        "java.time.Instant",
	"OffsetDateTime": "java.time.OffsetDateTime",
	"BigDecimal":     "java.math.BigDecimal",
	"BigInteger":     "java.math.BigInteger",
	"UUID":           "java.util.UUID",
	"List":           "java.util.List",
	"Set":            "java.util.Set",
	"Map":            "java.util.Map",
}

var filterTypes = map[string]FilterType{
	"String":        FilterString,
	"Long":          FilterNumber,
	"Integer":       FilterNumber,
	"Short":         FilterNumber,
	"Double":        FilterNumber,
	"Float":         FilterNumber,
	"BigDecimal":    FilterNumber,
	"BigInteger":    FilterNumber,
	"LocalDate":     FilterDate,
	"LocalDateTime": FilterDate,
	"Boolean":       FilterBoolean,
}

// ImportsFor returns the imports a type reference needs, walking generic
// arguments. Qualified names need none.
func ImportsFor(t TypeRef) []string {
	var out []string
	if !t.Qualified() {
		if imp, ok := knownImports[t.Name]; ok {
			out = append(out, imp)
		}
	}
	for _, arg := range t.Args {
		out = append(out, ImportsFor(arg)...)
	}
	return out
}

// FieldImports returns the sorted, de-duplicated imports needed by fields
func FieldImports(fields []Field) []string {
	var out []string
	for _, f := range fields {
		out = append(out, ImportsFor(f.Type)...)
	}
	return SortedImports(out)
}

// SortedImports sorts and de-duplicates an import list
func SortedImports(imports []string) []string {
	set := make(map[string]struct{}, len(imports))
	out := make([]string, 0, len(imports))
	for _, imp := range imports {
		if _, ok := set[imp]; ok || imp == "" {
			continue
		}
		set[imp] = struct{}{}
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// FilterTypeOf maps a Java type to its filter category; unknown types are
// filtered as strings
func FilterTypeOf(t TypeRef) FilterType {
	if t.Dims > 0 || len(t.Args) > 0 {
		return FilterString
	}
	if ft, ok := filterTypes[t.Simple()]; ok {
		return ft
	}
	return FilterString
}

// requiredOnCreate lists the types that get @NotNull on create requests
var requiredOnCreate = map[string]bool{
	"Long":          true,
	"Integer":       true,
	"BigDecimal":    true,
	"LocalDate":     true,
	"LocalDateTime": true,
}

// CreateAnnotations returns the annotations for a field on the create DTO:
// the user's annotations followed by @NotBlank (String) or @NotNull
// (numbers and dates) unless one of those was given.
func CreateAnnotations(f Field) []string {
	out := append([]string(nil), f.Annotations...)
	if f.HasAnnotation("NotBlank") || f.HasAnnotation("NotNull") {
		return out
	}
	switch {
	case f.Type.IsPlain("String"):
		out = append(out, "@NotBlank")
	case f.Type.Dims == 0 && len(f.Type.Args) == 0 && requiredOnCreate[f.Type.Name]:
		out = append(out, "@NotNull")
	}
	return out
}

// UpdateAnnotations returns the annotations for a field on the update DTO.
// Presence constraints are dropped so every field is optional; strings get
// @Size(max = 255) and Integer/Long get @Min(0) unless already constrained.
func UpdateAnnotations(f Field) []string {
	var out []string
	for _, a := range f.Annotations {
		switch AnnotationName(a) {
		case "NotBlank", "NotNull":
			continue
		}
		out = append(out, a)
	}

	has := func(name string) bool {
		for _, a := range out {
			if AnnotationName(a) == name {
				return true
			}
		}
		return false
	}

	switch {
	case f.Type.IsPlain("String"):
		if !has("Size") {
			out = append(out, "@Size(max = 255)")
		}
	case f.Type.IsPlain("Integer"), f.Type.IsPlain("Long"):
		if !has("Min") {
			out = append(out, "@Min(0)")
		}
	}
	return out
}
