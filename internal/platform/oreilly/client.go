package oreilly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://learning.oreilly.com/api/v2/search/"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

// NewClientWithBaseURL points the client at an alternate endpoint.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Result is one entry of the search response, projected to the requested fields.
type Result struct {
	Title       string   `json:"title"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
	Authors     []string `json:"authors"`
}

// SearchResponse matches the search endpoint's JSON document. Only the
// results array is consumed.
type SearchResponse struct {
	Results []Result `json:"results"`
}

// SearchWorks issues one bounded request for works matching the topic,
// limited to the given count and projected to the given fields. There is
// no retry: any transport, status, or decode failure is returned as-is.
func (c *Client) SearchWorks(ctx context.Context, topic string, limit int, fields []string) ([]Result, error) {
	params := url.Values{}
	params.Set("query", topic)
	params.Set("limit", fmt.Sprintf("%d", limit))
	for _, f := range fields {
		params.Add("fields", f)
	}
	u := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var res SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return res.Results, nil
}
