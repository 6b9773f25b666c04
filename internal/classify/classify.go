// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify applies the company-affiliation heuristic to parsed
// PubMed records.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// companyKeywords lists the employer-type indicators that mark an
// affiliation as commercial rather than academic. Matching is
// case-insensitive and requires a non-alphanumeric character (or start of
// string) before the keyword, so "Princeton" does not match "inc" while
// "Pharmaceuticals" still matches "pharma".
var companyKeywords = []string{
	"pharma", "biotech", "inc", "ltd", "corp", "gmbh", "s.a.", "s.r.l.",
	"llc", "co.", "laboratories", "technologies", "research institute",
	"private limited", "medical center", "hospital", "research lab",
	"clinical research", "drug development",
}

var keywordPatterns []*regexp.Regexp

func init() {
	for _, kw := range companyKeywords {
		p := regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(` + regexp.QuoteMeta(kw) + `)`)
		keywordPatterns = append(keywordPatterns, p)
	}
}

// IsCompanyAffiliated reports whether the affiliation string contains a
// company-indicator keyword. No academic-exclusion list is applied: an
// affiliation naming both a university and a company classifies as company.
func IsCompanyAffiliated(affiliation string) bool {
	return keywordIndex(affiliation) >= 0
}

// ExtractCompanyName returns the text preceding the earliest keyword
// match, trimmed of surrounding punctuation and whitespace. Empty when no
// keyword matches.
func ExtractCompanyName(affiliation string) string {
	idx := keywordIndex(affiliation)
	if idx < 0 {
		return ""
	}
	return strings.Trim(affiliation[:idx], " \t,.;:-")
}

// keywordIndex returns the byte offset of the earliest keyword match in
// the affiliation, or -1 when none matches.
func keywordIndex(affiliation string) int {
	best := -1
	for _, p := range keywordPatterns {
		loc := p.FindStringSubmatchIndex(affiliation)
		if loc == nil {
			continue
		}
		// loc[2] is the start of the captured keyword, past the boundary.
		if best < 0 || loc[2] < best {
			best = loc[2]
		}
	}
	return best
}

// Classify filters a paper through the affiliation heuristic. It returns
// nil when no author is company-affiliated; the paper is then dropped
// from the output. Otherwise it retains the company-affiliated author
// names and their affiliation strings in record order without duplicates,
// plus the first non-empty email found across all authors.
func Classify(p types.Paper) *types.ClassifiedPaper {
	var (
		authors      []string
		affiliations []string
		email        string
	)
	seenAuthor := make(map[string]bool)
	seenAffil := make(map[string]bool)

	for _, au := range p.Authors {
		if email == "" && au.Email != "" {
			email = au.Email
		}
		if au.Affiliation == "" || !IsCompanyAffiliated(au.Affiliation) {
			continue
		}
		if !seenAuthor[au.Name] {
			seenAuthor[au.Name] = true
			authors = append(authors, au.Name)
		}
		if !seenAffil[au.Affiliation] {
			seenAffil[au.Affiliation] = true
			affiliations = append(affiliations, au.Affiliation)
		}
	}

	if len(affiliations) == 0 {
		return nil
	}

	return &types.ClassifiedPaper{
		PubmedID:            p.PMID,
		Title:               p.Title,
		PublicationDate:     p.PubDate,
		Authors:             authors,
		CompanyAffiliations: affiliations,
		CorrespondingEmail:  email,
	}
}
