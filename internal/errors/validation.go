package errors

import "fmt"

// SyntaxError is raised for malformed field definitions
type SyntaxError struct {
	*BaseError
	Input string // the text being parsed
}

// NewSyntaxError creates a syntax error at the given position of input
func NewSyntaxError(input, message string, loc SourceLocation) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message).WithLocation(loc),
		Input:     input,
	}
}

// ValidationError represents a rejected value with what was expected
type ValidationError struct {
	*BaseError
	Field    string
	Expected string
	Actual   string
}

// NewValidationError creates a new validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("invalid %s: expected %s, got %q", field, expected, actual)

	return &ValidationError{
		BaseError: New(ValidationErrorCode, message),
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// WithSuggestions adds suggestions and keeps the concrete type
func (e *ValidationError) WithSuggestions(suggestions ...string) *ValidationError {
	e.BaseError.WithSuggestions(suggestions...)
	return e
}

// WithLocation adds location information to the error
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}
