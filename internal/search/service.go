// Package search assembles the final search record from Wiktionary
// content and the translation fan-out.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/epinault/polydict/internal/history"
	"github.com/epinault/polydict/internal/language"
	"github.com/epinault/polydict/internal/wiktionary"
)

// ErrInvalidInput marks user-input errors, rejected before any network
// or cache access.
var ErrInvalidInput = errors.New("invalid input")

// Record is the assembled response for one search.
type Record struct {
	Word         string            `json:"word"`
	Translations map[string]string `json:"translations"`
	Etymology    string            `json:"etymology,omitempty"`
	Definitions  []string          `json:"definitions"`
	Examples     []string          `json:"examples"`
}

// LexiconReader provides the extracted lexical entry for a word.
type LexiconReader interface {
	Lookup(ctx context.Context, word string, lang language.Language) (wiktionary.LexicalEntry, error)
}

// TranslationProvider provides the full translation map for a word.
type TranslationProvider interface {
	TranslateAll(ctx context.Context, word string, source language.Language) map[string]string
}

// Service coordinates one search: validation, the parallel
// lexicon/translation split, history recording and record assembly.
type Service struct {
	lexicon      LexiconReader
	translations TranslationProvider
	history      history.Repository
}

// NewService creates a search service.
func NewService(lexicon LexiconReader, translations TranslationProvider, hist history.Repository) *Service {
	return &Service{
		lexicon:      lexicon,
		translations: translations,
		history:      hist,
	}
}

// Search looks up a word and returns the assembled record. The word
// must be non-empty after trimming and the language code must belong
// to the configured set.
func (s *Service) Search(ctx context.Context, rawWord, rawLang string) (Record, error) {
	word := strings.TrimSpace(rawWord)
	if word == "" {
		return Record{}, fmt.Errorf("%w: word must not be empty", ErrInvalidInput)
	}
	lang, err := language.Parse(rawLang)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		wg           sync.WaitGroup
		translations map[string]string
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		translations = s.translations.TranslateAll(ctx, word, lang)
	}()

	entry, lookupErr := s.lexicon.Lookup(ctx, word, lang)
	wg.Wait()

	if lookupErr != nil {
		return Record{}, fmt.Errorf("lexicon.Lookup(%s) > %w", word, lookupErr)
	}

	if s.history != nil {
		if err := s.history.Append(ctx, word, string(lang.Code)); err != nil {
			slog.Default().Warn("failed to record search history",
				slog.String("word", word),
				slog.Any("error", err))
		}
	}

	return Record{
		Word:         word,
		Translations: translations,
		Etymology:    entry.Etymology,
		Definitions:  entry.Definitions,
		Examples:     entry.Examples,
	}, nil
}
