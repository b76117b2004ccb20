package internal

import (
	"path/filepath"
	"strings"

	"codeberg.org/snonux/jsontrans/internal/dictionary"
)

// Version is the application version, overridden at build time with
// -ldflags "-X codeberg.org/snonux/jsontrans/internal.Version=..."
var Version = "dev"

// OutputFileName returns the default output file for a target language,
// e.g. translated_de.json. YAML and TOML input keep their extension.
func OutputFileName(inputFile, targetLang string) string {
	ext := ".json"
	if dictionary.FormatFor(inputFile) != dictionary.FormatJSON {
		ext = filepath.Ext(inputFile)
	}
	return "translated_" + SanitizeFilename(targetLang) + strings.ToLower(ext)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
