package wiktionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/epinault/polydict/internal/language"
)

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func mustLanguage(t *testing.T, code string) language.Language {
	t.Helper()
	lang, err := language.Parse(code)
	require.NoError(t, err)
	return lang
}

func TestLocateSection(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		code  string
		found bool
	}{
		{
			name:  "heading text match",
			page:  `<html><body><h2>Français</h2><ol><li>x</li></ol></body></html>`,
			code:  "fr",
			found: true,
		},
		{
			name:  "anchor id match without heading text",
			page:  `<html><body><h2><span id="Français"></span></h2></body></html>`,
			code:  "fr",
			found: true,
		},
		{
			name:  "case-insensitive heading accepted",
			page:  `<html><body><h2>FRANÇAIS</h2></body></html>`,
			code:  "fr",
			found: true,
		},
		{
			name:  "other languages only",
			page:  `<html><body><h2>English</h2><h2>Deutsch</h2></body></html>`,
			code:  "fr",
			found: false,
		},
		{
			name:  "no headings at all",
			page:  `<html><body><ol><li>x</li></ol></body></html>`,
			code:  "fr",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heading := LocateSection(parsePage(t, tt.page), mustLanguage(t, tt.code))
			if tt.found {
				assert.NotNil(t, heading)
			} else {
				assert.Nil(t, heading)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name                string
		page                string
		code                string
		expectedEtymology   string
		expectedDefinitions []string
		expectedExamples    []string
	}{
		{
			name: "full section with parenthetical-only item dropped",
			page: `<html><body>
<h2><span id="Français">Français</span></h2>
<h3>Étymologie</h3>
<p>Du latin  bonus diurnus.</p>
<h3>Nom commun</h3>
<ol>
<li>(interj.) bonjour</li>
<li>au revoir<ul><li>bonjour tout le monde</li></ul></li>
</ol>
<h2>English</h2>
<ol><li>never extracted</li></ol>
</body></html>`,
			code:                "fr",
			expectedEtymology:   "Du latin bonus diurnus.",
			expectedDefinitions: []string{"au revoir"},
			expectedExamples:    []string{"bonjour tout le monde"},
		},
		{
			name: "definitions and examples keep document order and caps",
			page: `<html><body>
<h2>Français</h2>
<ol>
<li>d1<ul><li>e1</li><li>e2</li></ul></li>
<li>d2<ul><li>e3</li><li>e4</li></ul></li>
<li>d3</li>
<li>d4</li>
<li>d5</li>
<li>d6</li>
<li>d7</li>
</ol>
</body></html>`,
			code:                "fr",
			expectedDefinitions: []string{"d1", "d2", "d3", "d4", "d5"},
			expectedExamples:    []string{"e1", "e2", "e3"},
		},
		{
			name: "etymology is first-wins",
			page: `<html><body>
<h2>Français</h2>
<h3>Étymologie</h3>
<p>première origine</p>
<h3>Étymologie</h3>
<p>seconde origine</p>
</body></html>`,
			code:              "fr",
			expectedEtymology: "première origine",
		},
		{
			name: "section ends at next language heading",
			page: `<html><body>
<h2>English</h2>
<ol><li>greeting</li></ol>
<h2>Français</h2>
<ol><li>salutation</li></ol>
</body></html>`,
			code:                "en",
			expectedDefinitions: []string{"greeting"},
		},
		{
			name: "no matching section yields empty entry",
			page: `<html><body>
<h2>Deutsch</h2>
<ol><li>x</li></ol>
<h2>English</h2>
<ol><li>y</li></ol>
</body></html>`,
			code: "fr",
		},
		{
			name: "single-language page without heading falls back",
			page: `<html><body>
<p>un mot rare</p>
<ol><li>seule définition</li></ol>
</body></html>`,
			code:                "fr",
			expectedDefinitions: []string{"seule définition"},
		},
		{
			name: "item emptied by normalization is dropped",
			page: `<html><body>
<h2>Français</h2>
<ol>
<li>  </li>
<li>valide</li>
</ol>
</body></html>`,
			code:                "fr",
			expectedDefinitions: []string{"valide"},
		},
		{
			name: "rejected definition contributes no examples",
			page: `<html><body>
<h2>Français</h2>
<ol>
<li>(Désuet)<ul><li>ignored example</li></ul></li>
<li>gardée</li>
</ol>
</body></html>`,
			code:                "fr",
			expectedDefinitions: []string{"gardée"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Extract(parsePage(t, tt.page), mustLanguage(t, tt.code))

			assert.Equal(t, tt.expectedEtymology, entry.Etymology)
			if tt.expectedDefinitions == nil {
				assert.Empty(t, entry.Definitions)
			} else {
				assert.Equal(t, tt.expectedDefinitions, entry.Definitions)
			}
			if tt.expectedExamples == nil {
				assert.Empty(t, entry.Examples)
			} else {
				assert.Equal(t, tt.expectedExamples, entry.Examples)
			}
			assert.LessOrEqual(t, len(entry.Definitions), maxDefinitions)
			assert.LessOrEqual(t, len(entry.Examples), maxExamples)
		})
	}
}
