package wiktionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// ErrNotFound signals that the document source has no page for the
// word. It is the only condition the case-variant cascade retries on;
// every other failure is surfaced immediately.
var ErrNotFound = errors.New("wiktionary: page not found")

// PageFetcher fetches and parses one Wiktionary page.
type PageFetcher interface {
	FetchPage(ctx context.Context, host, word string) (*html.Node, error)
}

// Client fetches pages over HTTP with a short deadline per request.
type Client struct {
	httpClient *resty.Client
	scheme     string
}

// NewClient creates a page client. timeout bounds every fetch.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
		scheme:     "https",
	}
}

// FetchPage retrieves the page for word on the given Wiktionary host
// and parses it. A 404-class response maps to ErrNotFound; any other
// non-OK status or transport error is a distinct fetch failure.
func (c *Client) FetchPage(ctx context.Context, host, word string) (*html.Node, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s://%s/wiki/%s", c.scheme, host, url.PathEscape(word)))
	if err != nil {
		return nil, fmt.Errorf("client.R().Get(%s) > %w", word, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), word)
	}
	doc, err := html.Parse(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("html.Parse > %w", err)
	}
	return doc, nil
}

// Resolver finds the page for a word, retrying case variants when the
// source reports absence: the verbatim form first, then lowercase,
// then with the first character capitalized. Three attempts at most.
type Resolver struct {
	fetcher PageFetcher
}

// NewResolver creates a resolver on top of a page fetcher.
func NewResolver(fetcher PageFetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve fetches the document for word. Only a not-found signal moves
// the cascade to the next variant; transient failures abort it so the
// caller is not charged two wasted round-trips. The returned document
// belongs to whichever variant succeeded, but callers keep using the
// original input word downstream.
func (r *Resolver) Resolve(ctx context.Context, host, word string) (*html.Node, error) {
	for _, variant := range caseVariants(word) {
		doc, err := r.fetcher.FetchPage(ctx, host, variant)
		if err == nil {
			return doc, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return nil, fmt.Errorf("fetcher.FetchPage(%s) > %w", variant, err)
	}
	return nil, ErrNotFound
}

// caseVariants returns the ordered retry sequence for a word.
func caseVariants(word string) []string {
	return []string{word, strings.ToLower(word), capitalizeFirst(word)}
}

func capitalizeFirst(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
