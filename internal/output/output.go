// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders classified papers as JSON, YAML, or CSV.
package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// ErrWrite wraps output-file failures.
var ErrWrite = errors.New("write failure")

// csvHeader is the stable CSV column set, one column per output field.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Authors",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteJSON writes the papers as an indented JSON array. An empty input
// renders as "[]" rather than "null".
func WriteJSON(w io.Writer, papers []types.ClassifiedPaper) error {
	if papers == nil {
		papers = []types.ClassifiedPaper{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// WriteYAML writes the papers as a YAML sequence.
func WriteYAML(w io.Writer, papers []types.ClassifiedPaper) error {
	if papers == nil {
		papers = []types.ClassifiedPaper{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(papers)
}

// WriteCSV writes a header row and one row per paper to path. The file
// handle is closed on every exit path; any create, write, or close
// failure wraps ErrWrite.
func WriteCSV(papers []types.ClassifiedPaper, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, path, err)
	}

	writeErr := writeRows(f, papers)
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWrite, path, closeErr)
	}
	return nil
}

func writeRows(w io.Writer, papers []types.ClassifiedPaper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range papers {
		if err := cw.Write(csvRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(p types.ClassifiedPaper) []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		strings.Join(p.Authors, ", "),
		strings.Join(p.CompanyAffiliations, "; "),
		p.CorrespondingEmail,
	}
}
