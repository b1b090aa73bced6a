package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epinault/polydict/internal/language"
	"github.com/epinault/polydict/internal/memcache"
)

// lookupResult is the cached outcome of a lookup. Not-found outcomes
// are cached as well so known-bad input does not cost repeated
// round-trips; transient fetch failures are never cached.
type lookupResult struct {
	entry    LexicalEntry
	notFound bool
}

// Reader resolves a word against Wiktionary and extracts its lexical
// entry, memoizing results per (word, language) for the cache TTL.
type Reader struct {
	resolver *Resolver
	cache    *memcache.Cache[lookupResult]
}

// NewReader creates a reader over a page fetcher.
func NewReader(fetcher PageFetcher, ttl time.Duration, maxEntries int) *Reader {
	return &Reader{
		resolver: NewResolver(fetcher),
		cache:    memcache.New[lookupResult](ttl, maxEntries),
	}
}

// Lookup returns the lexical entry for word in the given language.
// A page without a section for the language yields an empty entry and
// no error; a page absent under every case variant yields ErrNotFound.
func (r *Reader) Lookup(ctx context.Context, word string, lang language.Language) (LexicalEntry, error) {
	key := word + ":" + string(lang.Code)
	if result, ok := r.cache.Get(key); ok {
		if result.notFound {
			return result.entry, ErrNotFound
		}
		return result.entry, nil
	}

	empty := LexicalEntry{Word: word, Definitions: []string{}, Examples: []string{}}

	doc, err := r.resolver.Resolve(ctx, lang.WiktionaryHost, word)
	if errors.Is(err, ErrNotFound) {
		r.cache.Set(key, lookupResult{entry: empty, notFound: true})
		return empty, ErrNotFound
	}
	if err != nil {
		return empty, fmt.Errorf("resolver.Resolve(%s) > %w", word, err)
	}

	entry := Extract(doc, lang)
	entry.Word = word
	r.cache.Set(key, lookupResult{entry: entry})
	return entry, nil
}
