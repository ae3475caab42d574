package templates

import (
	"strings"

	"github.com/toyz/crudgen/internal/fieldspec"
	"github.com/toyz/crudgen/internal/naming"
)

// Data is what every Java template is executed with
type Data struct {
	BasePackage    string
	Package        string // package of the file being rendered
	Imports        []string
	Entity         naming.EntityNames
	Fields         []FieldData
	Columns        []Column
	SearchColumns  []string
	IgnoredTargets []string
	APIDocPrefix   string
}

// FieldData is a field as one particular file declares it
type FieldData struct {
	Name        string
	Type        string
	Column      string
	Annotations []string
}

// Column is one entry of the JDBC allowed-columns map
type Column struct {
	Name   string
	Filter fieldspec.FilterType
}

// Pkg qualifies a dotted name with the base package
func (d Data) Pkg(sub string) string {
	switch {
	case d.BasePackage == "":
		return sub
	case sub == "":
		return d.BasePackage
	}
	return d.BasePackage + "." + strings.TrimPrefix(sub, ".")
}
