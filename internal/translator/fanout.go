package translator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/epinault/polydict/internal/language"
	"github.com/epinault/polydict/internal/memcache"
	"github.com/epinault/polydict/internal/worker"
)

// Fanout translates a word into every configured language
// concurrently, memoizing each (word, source, target) pair. Failed
// pairs resolve to the sentinel string so one slow or broken target
// never spoils the rest of the batch.
type Fanout struct {
	translator Translator
	pool       *worker.Pool
	cache      *memcache.Cache[string]
	sentinel   string
}

// NewFanout creates a fan-out over a shared worker pool. An empty
// sentinel selects the default.
func NewFanout(t Translator, pool *worker.Pool, cache *memcache.Cache[string], sentinel string) *Fanout {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	return &Fanout{
		translator: t,
		pool:       pool,
		cache:      cache,
		sentinel:   sentinel,
	}
}

// TranslateAll returns one entry per configured language, keyed by
// display name. The source language maps to the verbatim input word,
// never a round-tripped translation. The call completes when every
// target has returned a result or the sentinel.
func (f *Fanout) TranslateAll(ctx context.Context, word string, source language.Language) map[string]string {
	translations := make(map[string]string, len(language.All()))
	translations[source.Name] = word

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, target := range language.All() {
		if target.Code == source.Code {
			continue
		}
		wg.Add(1)
		job := func(_ context.Context) {
			defer wg.Done()
			value := f.translateOne(ctx, word, source.Code, target.Code)
			mu.Lock()
			translations[target.Name] = value
			mu.Unlock()
		}
		if err := f.pool.Submit(job); err != nil {
			wg.Done()
			mu.Lock()
			translations[target.Name] = f.sentinel
			mu.Unlock()
		}
	}
	wg.Wait()

	return translations
}

// translateOne serves a single pair from cache or the backend. Backend
// failures are absorbed into the sentinel, and the sentinel itself is
// cached to spare known-bad pairs repeated calls.
func (f *Fanout) translateOne(ctx context.Context, word string, source, target language.Code) string {
	key := fmt.Sprintf("%s:%s:%s", word, source, target)
	if value, ok := f.cache.Get(key); ok {
		return value
	}

	value, err := f.translator.Translate(ctx, word, source, target)
	if err != nil {
		slog.Default().Warn("translation failed",
			slog.String("word", word),
			slog.String("source", string(source)),
			slog.String("target", string(target)),
			slog.Any("error", err))
		value = f.sentinel
	}
	f.cache.Set(key, value)
	return value
}
