package wiktionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><body><h2>Français</h2><ol><li>salutation</li></ol></body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(2 * time.Second)
	client.scheme = "http"
	return client, strings.TrimPrefix(server.URL, "http://")
}

func TestClient_FetchPage(t *testing.T) {
	t.Run("ok response is parsed", func(t *testing.T) {
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wiki/bonjour", r.URL.Path)
			_, _ = w.Write([]byte(testPage))
		})

		doc, err := client.FetchPage(context.Background(), host, "bonjour")
		require.NoError(t, err)
		assert.NotNil(t, doc)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FetchPage(context.Background(), host, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server error is not ErrNotFound", func(t *testing.T) {
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchPage(context.Background(), host, "bonjour")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("succeeds on lowercase variant", func(t *testing.T) {
		var paths []string
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			if r.URL.Path == "/wiki/bonjour" {
				_, _ = w.Write([]byte(testPage))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		doc, err := NewResolver(client).Resolve(context.Background(), host, "Bonjour")
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, []string{"/wiki/Bonjour", "/wiki/bonjour"}, paths)
	})

	t.Run("all variants absent means exactly three attempts", func(t *testing.T) {
		var paths []string
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := NewResolver(client).Resolve(context.Background(), host, "xyzzy")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []string{"/wiki/xyzzy", "/wiki/xyzzy", "/wiki/Xyzzy"}, paths)
	})

	t.Run("transient failure aborts the cascade", func(t *testing.T) {
		requests := 0
		client, host := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := NewResolver(client).Resolve(context.Background(), host, "Bonjour")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, requests)
	})
}

func TestCaseVariants(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected []string
	}{
		{
			name:     "capitalized input",
			word:     "Bonjour",
			expected: []string{"Bonjour", "bonjour", "Bonjour"},
		},
		{
			name:     "lowercase input",
			word:     "bonjour",
			expected: []string{"bonjour", "bonjour", "Bonjour"},
		},
		{
			name:     "accented first rune",
			word:     "état",
			expected: []string{"état", "état", "État"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, caseVariants(tt.word))
		})
	}
}
