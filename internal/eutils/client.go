// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API for PubMed records and
// parses the fetched article XML.
package eutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Error categories for the fetch stages. Wrapped by every failure path so
// callers can distinguish transport problems from malformed responses.
var (
	ErrNetwork = errors.New("network failure")
	ErrParse   = errors.New("malformed response")
)

const defaultMaxResults = 10

// Client issues ESearch and EFetch calls against the E-utilities API.
// It keeps no state between calls.
type Client struct {
	HTTPClient *http.Client
}

// Search queries the ESearch endpoint and returns matching PubMed IDs in
// API order. Transport failures and non-200 statuses wrap ErrNetwork; a
// response without the expected identifier list wraps ErrParse.
func (c *Client) Search(ctx context.Context, query string, cfg types.FetchConfig) ([]string, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
	}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}

	body, err := c.get(ctx, esearchBase, params, cfg)
	if err != nil {
		return nil, err
	}

	var sr esearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: decoding esearch response: %v", ErrParse, err)
	}
	if sr.Result == nil {
		return nil, fmt.Errorf("%w: esearch response has no result envelope", ErrParse)
	}

	return sr.Result.IDList, nil
}

// Fetch retrieves the EFetch article XML for the given IDs, joined into a
// single batch request. An empty ID list short-circuits to an empty body
// without a round trip.
func (c *Client) Fetch(ctx context.Context, ids []string, cfg types.FetchConfig) ([]byte, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}

	return c.get(ctx, efetchBase, params, cfg)
}

// get issues one GET request through the shared 429-retry helper and
// returns the response body.
func (c *Client) get(ctx context.Context, base string, params url.Values, cfg types.FetchConfig) ([]byte, error) {
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: E-utilities request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: E-utilities returned HTTP %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}
	return body, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
