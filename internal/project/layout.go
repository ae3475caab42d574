// Package project locates the Java source root of a Spring Boot project and
// infers its base package from the directory structure.
package project

import (
	"path/filepath"
	"strings"
)

// DefaultJavaRoot is the Maven/Gradle source root relative to the project root
const DefaultJavaRoot = "src/main/java"

// DefaultIndicators are subpackage names that mark the base package of a
// conventional Spring Boot application
var DefaultIndicators = []string{
	"model",
	"controller",
	"service",
	"repository",
	"dto",
	"config",
	"exception",
	"mapper",
	"util",
	"filter",
}

// Layout describes where generated sources go
type Layout struct {
	ProjectRoot string // directory holding the java root
	JavaRoot    string // <ProjectRoot>/src/main/java
	BasePackage string // com.example.app, may be empty
	BaseDir     string // directory of BasePackage
}

// PackageName joins the base package with dotted subpackages
func (l Layout) PackageName(sub ...string) string {
	parts := make([]string, 0, len(sub)+1)
	if l.BasePackage != "" {
		parts = append(parts, l.BasePackage)
	}
	for _, s := range sub {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// PackageDir returns the directory for a dotted subpackage of the base package
func (l Layout) PackageDir(sub string) string {
	if sub == "" {
		return l.BaseDir
	}
	return filepath.Join(append([]string{l.BaseDir}, strings.Split(sub, ".")...)...)
}

// Rel returns path relative to the project root, or path itself if that fails
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.ProjectRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
