// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

func testCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 5,
	}
}

// swapBase points an endpoint var at an httptest server for one test.
func swapBase(t *testing.T, target *string, url string) {
	t.Helper()
	old := *target
	*target = url
	t.Cleanup(func() { *target = old })
}

// --- Search ---

func TestSearch_ReturnsIDsInOrder(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"esearchresult":{"count":"3","idlist":["31000001","31000002","31000003"]}}`))
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	ids, err := c.Search(context.Background(), "cancer immunotherapy", testCfg())
	require.NoError(t, err)

	assert.Equal(t, []string{"31000001", "31000002", "31000003"}, ids)
	assert.Equal(t, "pubmed", gotQuery["db"][0])
	assert.Equal(t, "cancer immunotherapy", gotQuery["term"][0])
	assert.Equal(t, "json", gotQuery["retmode"][0])
	assert.Equal(t, "5", gotQuery["retmax"][0])
	assert.NotContains(t, gotQuery, "api_key")
}

func TestSearch_DefaultMaxResults(t *testing.T) {
	var retmax string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		retmax = r.URL.Query().Get("retmax")
		w.Write([]byte(`{"esearchresult":{"count":"0","idlist":[]}}`))
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	cfg := testCfg()
	cfg.MaxResults = 0

	c := &Client{HTTPClient: ts.Client()}
	ids, err := c.Search(context.Background(), "anything", cfg)
	require.NoError(t, err)

	assert.Empty(t, ids)
	assert.Equal(t, "10", retmax)
}

func TestSearch_APIKeyForwarded(t *testing.T) {
	var apiKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"esearchresult":{"count":"0","idlist":[]}}`))
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	cfg := testCfg()
	cfg.APIKey = "secret-key"

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.Search(context.Background(), "anything", cfg)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", apiKey)
}

func TestSearch_HTTPErrorIsNetwork(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.Search(context.Background(), "anything", testCfg())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestSearch_BadJSONIsParse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.Search(context.Background(), "anything", testCfg())
	assert.ErrorIs(t, err, ErrParse)
}

func TestSearch_MissingResultEnvelopeIsParse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"header":{"type":"esearch"}}`))
	}))
	defer ts.Close()
	swapBase(t, &esearchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.Search(context.Background(), "anything", testCfg())
	assert.ErrorIs(t, err, ErrParse)
}

// --- Fetch ---

func TestFetch_EmptyIDsShortCircuits(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("fetch endpoint should not be called for empty ID list")
	}))
	defer ts.Close()
	swapBase(t, &efetchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	body, err := c.Fetch(context.Background(), nil, testCfg())
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestFetch_JoinsIDsAndReturnsBody(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`<PubmedArticleSet></PubmedArticleSet>`))
	}))
	defer ts.Close()
	swapBase(t, &efetchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	body, err := c.Fetch(context.Background(), []string{"1", "2", "3"}, testCfg())
	require.NoError(t, err)

	assert.Equal(t, "<PubmedArticleSet></PubmedArticleSet>", string(body))
	assert.Equal(t, "1,2,3", gotQuery["id"][0])
	assert.Equal(t, "xml", gotQuery["retmode"][0])
	assert.Equal(t, "pubmed", gotQuery["db"][0])
}

func TestFetch_HTTPErrorIsNetwork(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()
	swapBase(t, &efetchBase, ts.URL)

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.Fetch(context.Background(), []string{"1"}, testCfg())
	assert.ErrorIs(t, err, ErrNetwork)
}
