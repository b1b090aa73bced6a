package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epinault/polydict/internal/search"
)

func newSearchCommand() *cobra.Command {
	var lang string
	command := &cobra.Command{
		Use:   "search <word>",
		Short: "Look up a word: translations, etymology, definitions and examples",
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

			printRecord(record)
			return nil
		},
	}
	command.Flags().StringVar(&lang, "lang", "fr", "source language code")
	return command
}

func printRecord(record search.Record) {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)

	bold.Println(record.Word)

	names := make([]string, 0, len(record.Translations))
	for name := range record.Translations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %s\n", name, record.Translations[name])
	}

	if record.Etymology != "" {
		fmt.Println()
		italic.Println(record.Etymology)
	}

	if len(record.Definitions) > 0 {
		fmt.Println()
		for i, definition := range record.Definitions {
			color.Green("%d. %s", i+1, definition)
		}
	}

	if len(record.Examples) > 0 {
		fmt.Println()
		for _, example := range record.Examples {
			fmt.Printf("  > %s\n", example)
		}
	}
}
