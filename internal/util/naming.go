package util

import "strings"

// DefaultOutputBaseName is the file name, without extension, used for exported output.
const DefaultOutputBaseName = "codeguardian_output"

// OutputFileName returns the export file name for ext, e.g. "codeguardian_output.md".
func OutputFileName(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if ext == "" {
		return DefaultOutputBaseName
	}
	return DefaultOutputBaseName + "." + ext
}
