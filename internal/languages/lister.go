package languages

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"codeberg.org/snonux/jsontrans/internal/translation"
)

// Source provides the supported languages
type Source interface {
	Languages(ctx context.Context, displayLang string) ([]translation.Language, error)
}

// Lister handles listing available target languages
type Lister struct {
	source Source
	out    io.Writer
}

// NewLister creates a new language lister printing to out
func NewLister(source Source, out io.Writer) *Lister {
	return &Lister{
		source: source,
		out:    out,
	}
}

// ListAvailableLanguages prints all supported languages sorted by code.
// Names are shown in displayLang when it is not empty. An optional filter
// keeps only languages whose code or name contains it.
func (l *Lister) ListAvailableLanguages(ctx context.Context, displayLang, filter string) error {
	langs, err := l.source.Languages(ctx, displayLang)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}

	langs = Filter(langs, filter)
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].Code < langs[j].Code
	})

	if len(langs) == 0 {
		fmt.Fprintln(l.out, "No languages found")
		return nil
	}

	width := 0
	for _, lang := range langs {
		width = max(width, len(lang.Code))
	}

	fmt.Fprintln(l.out, "Available target languages:")
	for _, lang := range langs {
		if lang.Name == "" {
			fmt.Fprintf(l.out, "  %s\n", lang.Code)
			continue
		}
		fmt.Fprintf(l.out, "  %-*s  %s\n", width, lang.Code, lang.Name)
	}
	fmt.Fprintf(l.out, "\n%d languages\n", len(langs))

	return nil
}

// Filter returns the languages whose code or name contains substr,
// ignoring case
func Filter(langs []translation.Language, substr string) []translation.Language {
	if substr == "" {
		return langs
	}

	substr = strings.ToLower(substr)
	var matched []translation.Language
	for _, lang := range langs {
		if strings.Contains(strings.ToLower(lang.Code), substr) ||
			strings.Contains(strings.ToLower(lang.Name), substr) {
			matched = append(matched, lang)
		}
	}
	return matched
}
