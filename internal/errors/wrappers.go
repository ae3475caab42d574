package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("stage", operation)
}

// WrapConfigurationError wraps configuration loading errors
func WrapConfigurationError(source, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, source)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("source", source).
		WithContext("operation", operation)
}

// WrapGenerateError wraps an error raised while producing a component
func WrapGenerateError(component, entity string, cause error) *BaseError {
	message := fmt.Sprintf("failed to generate %s for %s", component, entity)
	return Wrap(GenerationErrorCode, message, cause).
		WithContext("component", component).
		WithContext("entity", entity)
}

// DetectionError reports a project layout that could not be understood
func DetectionError(path, message string) *BaseError {
	return New(DetectionErrorCode, message).
		WithContext("path", path)
}

// TemplateError creates a template error without a cause
func TemplateError(templateName, message string) *BaseError {
	return New(TemplateErrorCode, fmt.Sprintf("template error in '%s': %s", templateName, message)).
		WithContext("template", templateName)
}
