// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline.
package types

// Author holds one author entry parsed from a PubMed article record.
type Author struct {
	// Name is the author's last name followed by initials (e.g. "Doe J").
	// Falls back to whichever part is present, or "Unknown" if neither is.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the raw affiliation text with email addresses removed.
	// Empty when the record carries no affiliation.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// Email is the first email address found inside the affiliation text
	// block. PubMed embeds corresponding-author emails inline rather than
	// in a dedicated field. Empty when none was found.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Paper holds the parsed metadata of one PubMed article.
type Paper struct {
	// PMID is the PubMed identifier. Always present; records without one
	// are dropped during parsing.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, or "N/A" when the record has none.
	Title string `json:"title" yaml:"title"`

	// PubDate is a human-readable publication date assembled from the
	// record's Year/Month/Day sub-fields (e.g. "2023-Jun-15"). Missing
	// parts degrade to "Unknown"; no calendar validation is performed.
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// Authors lists the article authors in record order.
	Authors []Author `json:"authors" yaml:"authors"`
}

// ClassifiedPaper is a Paper that passed the company-affiliation filter,
// reduced to the fields emitted in the final output.
type ClassifiedPaper struct {
	// PubmedID is the PubMed identifier of the source record.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the assembled publication date string.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the names of company-affiliated authors, in record
	// order with duplicates removed.
	Authors []string `json:"authors" yaml:"authors"`

	// CompanyAffiliations lists the affiliation strings that matched the
	// company heuristic, in record order with duplicates removed.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first non-empty email found across the
	// record's authors, in author order. Empty when none was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}
