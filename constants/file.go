package constants

import "strings"

// AllowedExtensions holds the file extensions the ingest layer accepts.
// Images are intentionally absent: image OCR happens outside this core.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"text": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
