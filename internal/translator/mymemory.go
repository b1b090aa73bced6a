package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/epinault/polydict/internal/language"
)

// DefaultMyMemoryEndpoint is the public MyMemory translation API.
const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"

// MyMemoryClient translates through the MyMemory REST API. Providing a
// contact email raises the API's daily quota.
type MyMemoryClient struct {
	endpoint   string
	email      string
	httpClient *resty.Client
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// NewMyMemoryClient creates a client for the given endpoint. An empty
// endpoint selects the public API.
func NewMyMemoryClient(endpoint, email string, timeout time.Duration) *MyMemoryClient {
	if endpoint == "" {
		endpoint = DefaultMyMemoryEndpoint
	}
	return &MyMemoryClient{
		endpoint:   endpoint,
		email:      email,
		httpClient: resty.New().SetTimeout(timeout),
	}
}

// Translate requests one translation for a language pair.
func (c *MyMemoryClient) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	request := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", fmt.Sprintf("%s|%s", source, target))
	if c.email != "" {
		request.SetQueryParam("de", c.email)
	}

	res, err := request.Get(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("request.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d, body: %s", res.StatusCode(), res.Body())
	}

	var body myMemoryResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("backend error %d: %s", body.ResponseStatus, body.ResponseDetails)
	}
	return body.ResponseData.TranslatedText, nil
}
