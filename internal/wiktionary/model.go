// Package wiktionary fetches Wiktionary pages and extracts the
// language-specific lexical content from their markup.
package wiktionary

const (
	// maxDefinitions bounds the definitions kept per entry.
	maxDefinitions = 5
	// maxExamples bounds the usage examples kept per entry.
	maxExamples = 3
)

// LexicalEntry is the structured content extracted for one word in one
// language. Definitions and examples keep document order and are
// truncated, never re-ordered. An empty entry is a legitimate result
// for word/language combinations without content.
type LexicalEntry struct {
	Word        string   `json:"word"`
	Etymology   string   `json:"etymology,omitempty"`
	Definitions []string `json:"definitions"`
	Examples    []string `json:"examples"`
}
