// Package assets holds the embedded templates shipped with the
// binaries.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/word-sheet.md.go.tmpl
var fallbackWordSheetTemplate string

// ParseWordSheetTemplate parses the word-sheet markdown template from
// templatePath, falling back to the embedded copy when the path is
// empty, missing, or unparseable.
func ParseWordSheetTemplate(templatePath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New("word-sheet.md.go.tmpl").
		Funcs(funcMap).
		Parse(fallbackWordSheetTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
