package utils

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// StdinPath is the path argument that selects standard input
const StdinPath = "-"

// IsSourceFile checks if a file name ends with one of the given extensions
func IsSourceFile(filename string, extensions []string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if strings.EqualFold(ext, NormalizeExtension(e)) {
			return true
		}
	}
	return false
}

// NormalizeExtension makes sure an extension starts with a dot
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// IsDirectory checks if the given path is a directory
func IsDirectory(fs afero.Fs, path string) (bool, error) {
	return afero.IsDir(fs, path)
}

// IsStdin checks if the path selects standard input
func IsStdin(path string) bool {
	return path == StdinPath
}
