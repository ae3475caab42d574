package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/toyz/crudgen/internal/errors"
)

// Validator checks a single value
type Validator[T any] func(T) error

// ValidatorChain runs validators in order and stops at the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty rejects blank strings
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.NewValidationError(field, "a non-empty value", value)
		}
		return nil
	}
}

// HasPrefix requires value to start with prefix
func HasPrefix(field, prefix string) Validator[string] {
	return func(value string) error {
		if !strings.HasPrefix(value, prefix) {
			return errors.NewValidationError(field, fmt.Sprintf("a value starting with '%s'", prefix), value)
		}
		return nil
	}
}

// MatchesRegex requires value to match pattern. expected describes the
// pattern in error messages.
func MatchesRegex(field, pattern, expected string) Validator[string] {
	regex := regexp.MustCompile(pattern)
	return func(value string) error {
		if !regex.MatchString(value) {
			return errors.NewValidationError(field, expected, value)
		}
		return nil
	}
}

// Optional skips validation of empty values
func Optional(validator Validator[string]) Validator[string] {
	return func(value string) error {
		if value == "" {
			return nil
		}
		return validator(value)
	}
}

// Each applies validator to every element and collects all failures
func Each[T any](validator Validator[T]) Validator[[]T] {
	return func(values []T) error {
		errs := errors.NewMultipleErrors()
		for _, value := range values {
			if err := validator(value); err != nil {
				if genErr, ok := err.(errors.GenError); ok {
					errs.Add(genErr)
					continue
				}
				return err
			}
		}
		return errs.ErrOrNil()
	}
}
