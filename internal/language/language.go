// Package language defines the closed set of languages the service knows
// about, with the metadata needed to address and parse Wiktionary pages.
package language

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// Code is a two-letter language code from the configured set.
type Code string

// Language describes one supported language.
type Language struct {
	Code Code `yaml:"code"`
	// Name is the display name used as the key in translation maps
	// and as the primary section heading on Wiktionary pages.
	Name string `yaml:"name"`
	// Aliases are the heading and anchor spellings accepted when
	// locating the language's section. Source documents are
	// inconsistent about capitalization.
	Aliases []string `yaml:"aliases"`
	// EtymologyMarker is the heading token that introduces the
	// etymology block in this language's Wiktionary.
	EtymologyMarker string `yaml:"etymology_marker"`
	WiktionaryHost  string `yaml:"wiktionary_host"`
}

type registryFile struct {
	Languages []Language `yaml:"languages"`
}

var (
	registry []Language
	byCode   map[Code]Language
)

func init() {
	var file registryFile
	if err := yaml.Unmarshal(languagesYAML, &file); err != nil {
		panic(fmt.Errorf("yaml.Unmarshal(languages.yaml) > %w", err))
	}
	registry = file.Languages
	byCode = make(map[Code]Language, len(registry))
	for _, lang := range registry {
		if _, ok := byCode[lang.Code]; ok {
			panic(fmt.Errorf("duplicate language code %q in languages.yaml", lang.Code))
		}
		byCode[lang.Code] = lang
	}
}

// All returns every supported language in registry order.
func All() []Language {
	return registry
}

// Lookup returns the language for a code.
func Lookup(code Code) (Language, bool) {
	lang, ok := byCode[code]
	return lang, ok
}

// Parse validates a raw code string against the registry.
func Parse(raw string) (Language, error) {
	lang, ok := byCode[Code(strings.ToLower(strings.TrimSpace(raw)))]
	if !ok {
		return Language{}, fmt.Errorf("unsupported language code: %q", raw)
	}
	return lang, nil
}

// MatchesHeading reports whether a section heading text or anchor
// identifier belongs to this language. Both exact and lowercased
// spellings of the aliases are accepted.
func (l Language) MatchesHeading(text string) bool {
	text = strings.TrimSpace(text)
	for _, alias := range l.Aliases {
		if strings.Contains(text, alias) {
			return true
		}
		if strings.Contains(strings.ToLower(text), strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// IsLanguageHeading reports whether the heading text matches any
// registered language. Used as the section boundary predicate.
func IsLanguageHeading(text string) bool {
	for _, lang := range registry {
		if lang.MatchesHeading(text) {
			return true
		}
	}
	return false
}
