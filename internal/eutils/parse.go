// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// titlePlaceholder is emitted when a record carries no ArticleTitle.
const titlePlaceholder = "N/A"

// emailPattern matches the first email address embedded in affiliation
// text. PubMed has no dedicated email field; corresponding-author emails
// appear inline.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Parse walks the EFetch article XML and returns one Paper per record.
// Records without a PMID are skipped with a trace to debug rather than
// aborting the batch. An empty document yields no papers.
func Parse(doc []byte, debug io.Writer) ([]types.Paper, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var set articleSet
	if err := xml.Unmarshal(doc, &set); err != nil {
		return nil, fmt.Errorf("%w: parsing article XML: %v", ErrParse, err)
	}

	var papers []types.Paper
	for _, a := range set.Articles {
		pmid := strings.TrimSpace(a.PMID)
		if pmid == "" {
			fmt.Fprintln(debug, "skipping record with no PMID")
			continue
		}

		title := strings.TrimSpace(a.Title)
		if title == "" {
			title = titlePlaceholder
		}

		p := types.Paper{
			PMID:    pmid,
			Title:   title,
			PubDate: assemblePubDate(a.PubDate),
		}

		for _, au := range a.Authors {
			p.Authors = append(p.Authors, parseAuthor(au))
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// parseAuthor builds an Author from the record's name parts and first
// affiliation entry, pulling the email out of the affiliation text.
func parseAuthor(au xmlAuthor) types.Author {
	last := strings.TrimSpace(au.LastName)
	initials := strings.TrimSpace(au.Initials)

	var name string
	switch {
	case last != "" && initials != "":
		name = last + " " + initials
	case last != "":
		name = last
	case initials != "":
		name = initials
	default:
		name = "Unknown"
	}

	var raw string
	if len(au.Affiliations) > 0 {
		raw = strings.TrimSpace(au.Affiliations[0])
	}

	return types.Author{
		Name:        name,
		Affiliation: scrubEmails(raw),
		Email:       emailPattern.FindString(raw),
	}
}

// scrubEmails removes email addresses from affiliation text so they do
// not duplicate into the affiliation output column.
func scrubEmails(affiliation string) string {
	s := emailPattern.ReplaceAllString(affiliation, "")
	return strings.TrimRight(strings.TrimSpace(s), " ,;.")
}

// assemblePubDate concatenates the structured date sub-fields into a
// human-readable string. Missing year or month degrade to "Unknown"; the
// day is omitted when absent. Values pass through unvalidated. When the
// record has only a MedlineDate, that is used verbatim.
func assemblePubDate(d pubDate) string {
	year := strings.TrimSpace(d.Year)
	month := strings.TrimSpace(d.Month)
	day := strings.TrimSpace(d.Day)

	if year == "" && month == "" && day == "" {
		if md := strings.TrimSpace(d.MedlineDate); md != "" {
			return md
		}
	}

	if year == "" {
		year = "Unknown"
	}
	if month == "" {
		month = "Unknown"
	}
	if day == "" {
		return year + "-" + month
	}
	return year + "-" + month + "-" + day
}

// EFetch XML structures (PubmedArticleSet subset).
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string      `xml:"MedlineCitation>PMID"`
	Title   string      `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate pubDate     `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors []xmlAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type xmlAuthor struct {
	LastName     string   `xml:"LastName"`
	Initials     string   `xml:"Initials"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}
