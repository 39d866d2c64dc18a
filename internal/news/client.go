package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 5 << 20

// Client calls a NewsAPI-compatible provider. It makes exactly one attempt per call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client whose requests are bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// KeyConfigured reports whether an API key was supplied.
func (c *Client) KeyConfigured() bool {
	return c.apiKey != ""
}

// URL builds the upstream request URL for q.
func (c *Client) URL(q Query) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(PageSize))

	endpoint := "/top-headlines"
	if q.Mode == ModeSearch {
		endpoint = "/everything"
		v.Set("q", q.Term)
		v.Set("sortBy", "publishedAt")
	} else {
		v.Set("category", q.Term)
	}

	return c.baseURL + endpoint + "?" + v.Encode()
}

type statusEnvelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fetch retrieves one page for q and returns the provider's JSON body unchanged.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decoding response (HTTP %d): %w", resp.StatusCode, err)}
	}
	if env.Status == "error" {
		return nil, &UpstreamError{Code: env.Code, Message: env.Message}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &NetworkError{Err: fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)}
	}

	return body, nil
}
