package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for schedule ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// Output format selectors for persisted per-document results.
const (
	OutputFormatMulti  = "multi"  // {"panels": [...], "error": ...}
	OutputFormatSingle = "single" // {"PanelName", "GenericPanelTypes", "circuits", "error"}
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
