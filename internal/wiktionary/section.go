package wiktionary

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/epinault/polydict/internal/language"
)

// nodeKind classifies the node types the extractor cares about. All
// traversal decisions branch on kinds, never on raw tag inspection.
type nodeKind int

const (
	kindOther nodeKind = iota
	kindTopHeading
	kindSubHeading
	kindOrderedList
	kindUnorderedList
	kindParagraph
)

func classify(n *html.Node) nodeKind {
	if n == nil || n.Type != html.ElementNode {
		return kindOther
	}
	switch n.DataAtom {
	case atom.H2:
		return kindTopHeading
	case atom.H3, atom.H4:
		return kindSubHeading
	case atom.Ol:
		return kindOrderedList
	case atom.Ul:
		return kindUnorderedList
	case atom.P:
		return kindParagraph
	}
	return kindOther
}

// LocateSection returns the first heading node that starts the target
// language's content block, or nil when the page has no section for
// that language. Nil is an expected outcome, not an error.
func LocateSection(doc *html.Node, lang language.Language) *html.Node {
	var found *html.Node
	walk(doc, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		switch classify(n) {
		case kindTopHeading, kindSubHeading:
			if lang.MatchesHeading(nodeText(n, false)) || lang.MatchesHeading(anchorID(n)) {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Extract returns the lexical entry for the target language. When no
// heading matches, a page with no language headings at all and exactly
// one top-level definitions list is treated as a single-language page;
// otherwise the entry is empty.
func Extract(doc *html.Node, lang language.Language) LexicalEntry {
	entry := LexicalEntry{Definitions: []string{}, Examples: []string{}}

	start := LocateSection(doc, lang)
	switch {
	case start != nil:
		extractSiblings(start.NextSibling, lang, &entry)
	case isSingleLanguagePage(doc):
		if body := findElement(doc, atom.Body); body != nil {
			extractSiblings(body.FirstChild, lang, &entry)
		}
	}

	if len(entry.Definitions) > maxDefinitions {
		entry.Definitions = entry.Definitions[:maxDefinitions]
	}
	if len(entry.Examples) > maxExamples {
		entry.Examples = entry.Examples[:maxExamples]
	}
	return entry
}

// extractSiblings walks nodes in document order from first until the
// next language heading or the end of the block, filling entry.
func extractSiblings(first *html.Node, lang language.Language, entry *LexicalEntry) {
	marker := strings.ToLower(lang.EtymologyMarker)
	pendingEtymology := false

	for n := first; n != nil; n = n.NextSibling {
		switch classify(n) {
		case kindTopHeading:
			if language.IsLanguageHeading(nodeText(n, false)) {
				return
			}
		case kindSubHeading:
			text := strings.ToLower(nodeText(n, false))
			if entry.Etymology == "" && strings.Contains(text, marker) {
				pendingEtymology = true
			}
		case kindParagraph:
			if pendingEtymology {
				entry.Etymology = Normalize(nodeText(n, false))
				pendingEtymology = false
			}
		case kindOrderedList:
			collectDefinitions(n, entry)
		}
	}
}

// collectDefinitions reads the direct list items of a definitions
// container. Items that are empty or hold only a grammatical note
// (leading parenthesis) are skipped along with their examples.
func collectDefinitions(list *html.Node, entry *LexicalEntry) {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		raw := strings.TrimSpace(nodeText(li, true))
		if raw == "" || strings.HasPrefix(raw, "(") {
			continue
		}
		definition := Normalize(raw)
		if definition == "" {
			continue
		}
		entry.Definitions = append(entry.Definitions, definition)
		collectExamples(li, entry)
	}
}

// collectExamples appends every item of the nested unordered lists
// below an accepted definition to the entry's example sequence.
func collectExamples(li *html.Node, entry *LexicalEntry) {
	walk(li, func(n *html.Node) bool {
		if n != li && classify(n) == kindUnorderedList {
			for item := n.FirstChild; item != nil; item = item.NextSibling {
				if item.Type != html.ElementNode || item.DataAtom != atom.Li {
					continue
				}
				if example := Normalize(nodeText(item, false)); example != "" {
					entry.Examples = append(entry.Examples, example)
				}
			}
			return false
		}
		return true
	})
}

// isSingleLanguagePage reports whether the page omits language
// headings entirely yet carries exactly one definitions list.
func isSingleLanguagePage(doc *html.Node) bool {
	lists := 0
	hasLanguageHeading := false
	walk(doc, func(n *html.Node) bool {
		switch classify(n) {
		case kindTopHeading, kindSubHeading:
			if language.IsLanguageHeading(nodeText(n, false)) {
				hasLanguageHeading = true
			}
		case kindOrderedList:
			lists++
			return false
		}
		return true
	})
	return !hasLanguageHeading && lists == 1
}

// walk visits n and its descendants depth-first in document order.
// Returning false from visit skips the node's children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// nodeText concatenates the text content below n. With skipLists set,
// nested unordered lists are excluded so a definition's text does not
// swallow its example items.
func nodeText(n *html.Node, skipLists bool) string {
	var b strings.Builder
	walk(n, func(node *html.Node) bool {
		if skipLists && node != n && classify(node) == kindUnorderedList {
			return false
		}
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		return true
	})
	return b.String()
}

// anchorID returns the node's own anchor identifier, or the first one
// declared on a descendant span. Wiktionary marks section anchors both
// ways depending on the skin.
func anchorID(n *html.Node) string {
	if id := attribute(n, "id"); id != "" {
		return id
	}
	var id string
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.DataAtom == atom.Span {
			if candidate := attribute(node, "id"); candidate != "" {
				id = candidate
				return false
			}
		}
		return id == ""
	})
	return id
}

func attribute(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if found != nil {
			return false
		}
		if node.Type == html.ElementNode && node.DataAtom == a {
			found = node
			return false
		}
		return true
	})
	return found
}
