package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/epinault/polydict/internal/assets"
	"github.com/epinault/polydict/internal/language"
	"github.com/epinault/polydict/internal/pdf"
	"github.com/epinault/polydict/internal/search"
)

type wordSheetData struct {
	Word         string
	LanguageName string
	Translations map[string]string
	Etymology    string
	Definitions  []string
	Examples     []string
}

func newExportCommand() *cobra.Command {
	var (
		lang         string
		outputDir    string
		templatePath string
	)
	command := &cobra.Command{
		Use:   "export <word>",
		Short: "Export a word sheet as markdown and PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			record, err := application.service.Search(ctx, args[0], lang)
			if err != nil {
				return fmt.Errorf("service.Search(%s) > %w", args[0], err)
			}

			if outputDir == "" {
				outputDir = application.cfg.Outputs.SheetDirectory
			}
			tmpl, err := assets.ParseWordSheetTemplate(templatePath)
			if err != nil {
				return fmt.Errorf("assets.ParseWordSheetTemplate() > %w", err)
			}

			sourceLang, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language.Parse(%s) > %w", lang, err)
			}
			markdownPath, err := writeWordSheet(tmpl, outputDir, sourceLang.Name, record)
			if err != nil {
				return fmt.Errorf("writeWordSheet() > %w", err)
			}

			pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
			}
			fmt.Printf("wrote %s and %s\n", markdownPath, pdfPath)
			return nil
		},
	}
	command.Flags().StringVar(&lang, "lang", "fr", "source language code")
	command.Flags().StringVar(&outputDir, "output", "", "output directory (defaults to outputs.sheet_directory)")
	command.Flags().StringVar(&templatePath, "template", "", "word sheet template path")
	return command
}

func writeWordSheet(tmpl *template.Template, outputDir, languageName string, record search.Record) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}

	markdownPath := filepath.Join(outputDir, record.Word+".md")
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	data := wordSheetData{
		Word:         record.Word,
		LanguageName: languageName,
		Translations: record.Translations,
		Etymology:    record.Etymology,
		Definitions:  record.Definitions,
		Examples:     record.Examples,
	}
	if err := tmpl.Execute(file, data); err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return markdownPath, nil
}
