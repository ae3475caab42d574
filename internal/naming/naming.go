// Package naming holds the case conversion and pluralization rules used to
// derive class, table, route and variable names from an entity name.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	wordBoundary  = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	javaClassName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// ToSnake converts CamelCase to snake_case.
// Runs of capitals are treated as one word: HTTPServer -> http_server.
func ToSnake(s string) string {
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(lowerToUpper.ReplaceAllString(s, "${1}_${2}"))
}

// ToPascal converts snake_case to CamelCase.
func ToPascal(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// ToLowerCamel lowercases the first rune only.
func ToLowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// ToKebab converts CamelCase to kebab-case.
func ToKebab(s string) string {
	return strings.ReplaceAll(ToSnake(s), "_", "-")
}

// Pluralize returns the English plural of word, keeping the stem's casing.
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	upper := isAllUpper(word)
	suffix := func(s string) string {
		if upper {
			return strings.ToUpper(s)
		}
		return s
	}

	switch {
	case hasAnySuffix(lower, "s", "sh", "ch", "x", "z"):
		return word + suffix("es")
	case strings.HasSuffix(lower, "y"):
		if precededByVowel(lower, 1) {
			return word + suffix("s")
		}
		return word[:len(word)-1] + suffix("ies")
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + suffix("ves")
	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + suffix("ves")
	case strings.HasSuffix(lower, "o"):
		if precededByVowel(lower, 1) {
			return word + suffix("s")
		}
		return word + suffix("es")
	default:
		return word + suffix("s")
	}
}

// IsClassName reports whether s can be used as a Java class name.
func IsClassName(s string) bool {
	return javaClassName.MatchString(s)
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// precededByVowel reports whether the byte before the last n bytes is a vowel.
func precededByVowel(lower string, n int) bool {
	i := len(lower) - n - 1
	if i < 0 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(lower[i]))
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter && len(s) > 1
}
