// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the search and fetch stages.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of PubMed IDs requested (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// APIKey is an optional NCBI E-utilities API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Debug enables verbose stage tracing to stderr. Passed explicitly to
	// each stage; never ambient state.
	Debug bool `json:"debug" yaml:"debug"`
}
