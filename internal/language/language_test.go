package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	languages := All()
	assert.Len(t, languages, 5)

	seenCodes := map[Code]bool{}
	seenNames := map[string]bool{}
	for _, lang := range languages {
		assert.False(t, seenCodes[lang.Code], "codes must be disjoint")
		assert.False(t, seenNames[lang.Name], "display names must be unique")
		seenCodes[lang.Code] = true
		seenNames[lang.Name] = true

		assert.NotEmpty(t, lang.Name)
		assert.NotEmpty(t, lang.Aliases)
		assert.NotEmpty(t, lang.EtymologyMarker)
		assert.NotEmpty(t, lang.WiktionaryHost)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		expectedName string
		wantErr      bool
	}{
		{name: "known code", raw: "fr", expectedName: "Français"},
		{name: "uppercase code", raw: "FR", expectedName: "Français"},
		{name: "code with whitespace", raw: " en ", expectedName: "English"},
		{name: "unknown code", raw: "xx", wantErr: true},
		{name: "empty code", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, lang.Name)
		})
	}
}

func TestLanguage_MatchesHeading(t *testing.T) {
	fr, ok := Lookup("fr")
	require.True(t, ok)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "exact display name", text: "Français", expected: true},
		{name: "lowercase alias", text: "français", expected: true},
		{name: "uppercase heading", text: "FRANÇAIS", expected: true},
		{name: "name inside longer heading", text: "Section Français", expected: true},
		{name: "other language", text: "English", expected: false},
		{name: "unrelated heading", text: "Nom commun", expected: false},
		{name: "empty text", text: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fr.MatchesHeading(tt.text))
		})
	}
}

func TestIsLanguageHeading(t *testing.T) {
	assert.True(t, IsLanguageHeading("English"))
	assert.True(t, IsLanguageHeading("Español"))
	assert.False(t, IsLanguageHeading("Étymologie"))
	assert.False(t, IsLanguageHeading(""))
}
