package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/project"
)

// DiagnosticReporter provides user-friendly error reporting
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	red     *color.Color
}

// NewDiagnosticReporter creates a reporter writing to out
func NewDiagnosticReporter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
		red:     color.New(color.FgRed, color.Bold),
	}
}

// SetColors turns colored output on or off
func (r *DiagnosticReporter) SetColors(enabled bool) {
	if enabled {
		r.red.EnableColor()
	} else {
		r.red.DisableColor()
	}
}

// ReportError prints err with its location, context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	var multi *errors.MultipleErrors
	var genErr errors.GenError

	switch {
	case stderrors.As(err, &multi) && len(multi.Errors) > 1:
		r.printErrorHeader(multi.ErrorCode())
		fmt.Fprintf(r.out, "Found %d problems:\n", len(multi.Errors))
		for i, e := range multi.Errors {
			fmt.Fprintf(r.out, "   %d. %s\n", i+1, e.Error())
		}
		fmt.Fprintln(r.out)
		r.printSuggestions(multi.Suggestions())
	case stderrors.As(err, &genErr):
		r.reportGenError(err, genErr)
	default:
		r.printErrorHeader(errors.UnknownErrorCode)
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}
}

func (r *DiagnosticReporter) reportGenError(err error, genErr errors.GenError) {
	r.printErrorHeader(genErr.ErrorCode())
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if loc := genErr.Location(); !loc.IsEmpty() && loc.Line > 0 {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}
	if r.verbose && len(genErr.Context()) > 0 {
		r.printContext(genErr.Context())
	}
	r.printSuggestions(genErr.Suggestions())

	if r.verbose {
		r.printErrorChain(genErr.Unwrap())
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var title string
	switch code {
	case errors.SyntaxErrorCode:
		title = "Field Definition Syntax Error"
	case errors.ValidationErrorCode:
		title = "Validation Error"
	case errors.DetectionErrorCode:
		title = "Project Detection Error"
	case errors.ConfigurationErrorCode:
		title = "Configuration Error"
	case errors.GenerationErrorCode, errors.TemplateErrorCode:
		title = "Code Generation Error"
	case errors.FileSystemErrorCode:
		title = "File System Error"
	default:
		title = "Error"
	}

	r.red.Fprintf(r.out, "\nERROR: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("=", len(title)+7))
}

// printContext prints context information in sorted key order
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintln(r.out)
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.out, "      %s\n", line)
			}
		}
	}
	fmt.Fprintln(r.out)
}

func (r *DiagnosticReporter) printErrorChain(cause error) {
	if cause == nil {
		return
	}
	fmt.Fprintf(r.out, "Error chain:\n")
	for level := 1; cause != nil; level++ {
		fmt.Fprintf(r.out, "   %d. %s\n", level, cause.Error())
		cause = stderrors.Unwrap(cause)
	}
	fmt.Fprintln(r.out)
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	Entity         string
	RunID          string
	Layout         project.Layout
	GeneratedFiles []string
	SkippedFiles   []string
	DryRun         bool
	Duration       time.Duration
}
