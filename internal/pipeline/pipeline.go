// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the search, fetch, parse, and classify
// stages into a single pass.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/internal/classify"
	"github.com/pdiddy/get-papers-list/internal/eutils"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Fetcher is the remote-API surface the pipeline needs. eutils.Client
// implements it; tests substitute a mock.
type Fetcher interface {
	Search(ctx context.Context, query string, cfg types.FetchConfig) ([]string, error)
	Fetch(ctx context.Context, ids []string, cfg types.FetchConfig) ([]byte, error)
}

// Run executes the full pipeline for one query: search for IDs, fetch the
// article batch, parse it, and keep the papers with at least one
// company-affiliated author. Stage traces go to debug; pass io.Discard
// when tracing is off. A query matching nothing returns an empty slice
// without a fetch round trip.
func Run(ctx context.Context, client Fetcher, query string, cfg types.FetchConfig, debug io.Writer) ([]types.ClassifiedPaper, error) {
	ids, err := client.Search(ctx, query, cfg)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(debug, "found %d papers\n", len(ids))

	if len(ids) == 0 {
		return nil, nil
	}

	doc, err := client.Fetch(ctx, ids, cfg)
	if err != nil {
		return nil, err
	}

	papers, err := eutils.Parse(doc, debug)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(debug, "parsed %d records\n", len(papers))

	var classified []types.ClassifiedPaper
	for _, p := range papers {
		if cp := classify.Classify(p); cp != nil {
			classified = append(classified, *cp)
		}
	}
	fmt.Fprintf(debug, "retained %d company-affiliated papers\n", len(classified))

	return classified, nil
}
