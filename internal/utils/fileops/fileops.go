package fileops

import (
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// FileOps provides a unified interface for the file operations the
// generator performs, combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file and returns its contents
func (fo *FileOps) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}
	return content, nil
}

// WriteFile writes content to a file, creating missing parent directories
func (fo *FileOps) WriteFile(filePath string, content []byte) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}

	if err := fo.MkdirAll(filepath.Dir(cleanPath)); err != nil {
		return err
	}
	if err := os.WriteFile(cleanPath, content, FilePerm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}
	return nil
}

// MkdirAll creates a directory and its parents
func (fo *FileOps) MkdirAll(dirPath string) error {
	if err := os.MkdirAll(dirPath, DirPerm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(dirPath, err)
	}
	return nil
}

// RemoveFile removes a file. A file that is already gone is not an error;
// the returned bool reports whether something was removed.
func (fo *FileOps) RemoveFile(filePath string) (bool, error) {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return false, err
	}

	err = os.Remove(cleanPath)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	}
	return false, fo.errorWrapper.WrapFileRemovalError(cleanPath, err)
}

// RemoveEmptyDirs removes dir and its empty parents, stopping at stop
func (fo *FileOps) RemoveEmptyDirs(dir, stop string) {
	stop = filepath.Clean(stop)
	for dir = filepath.Clean(dir); dir != stop && fo.pathValidator.Within(stop, dir); dir = filepath.Dir(dir) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
	}
}

// Stat returns file info, wrapping anything other than not-exist
func (fo *FileOps) Stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fo.errorWrapper.WrapFileCheckError(path, err)
	}
	return info, err
}

// Exists reports whether path exists. Not-exist is (false, nil); any other
// stat failure is returned so callers do not mistake it for an existing file.
func (fo *FileOps) Exists(path string) (bool, error) {
	_, err := fo.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	}
	return false, err
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}
