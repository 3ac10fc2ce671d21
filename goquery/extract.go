// Package goquery implements patentdump.Extractor on top of goquery CSS
// selectors.
package goquery

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patentdump"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements patentdump.Extractor at compile time.
var _ patentdump.Extractor = (*Extractor)(nil)

// Extractor locates patent fields on Google Patents pages.
//
// Each field is looked up independently through its own ordered strategy
// list; the first strategy that succeeds wins.
type Extractor struct {
	Title             []Strategy
	PublicationNumber []Strategy
	Abstract          []Strategy

	// ClaimSelectors match individual claim elements, highest priority
	// first. Only the first selector with any match is used.
	ClaimSelectors []string

	// ClaimBlockSelectors match containers whose combined text is split
	// into claims when ClaimSelectors yield no numbered claim.
	ClaimBlockSelectors []string
}

// NewExtractor creates an Extractor configured for Google Patents markup.
func NewExtractor() *Extractor {
	return &Extractor{
		Title: []Strategy{
			MetaContent(`meta[name="DC.title"]`),
			ElementText("title"),
		},
		PublicationNumber: []Strategy{
			MetaContent(`meta[scheme="citation_patent_number"]`),
		},
		Abstract: []Strategy{
			ElementVisibleText(`[itemprop="abstract"]`),
			MetaContent(`meta[name="description"]`),
		},
		ClaimSelectors: []string{
			`[itemprop="claims"] .claim`,
			`.claims .claim`,
			`.claim`,
		},
		ClaimBlockSelectors: []string{
			`[itemprop="claims"]`,
			`section#claims`,
		},
	}
}

// Extract parses the page and returns its normalized fields.
func (e *Extractor) Extract(page *patentdump.RawPage) (*patentdump.ExtractResult, error) {
	if page == nil {
		return nil, patentdump.Errorf(patentdump.EPARSE, "no page to extract")
	}

	doc, err := parseDocument(page)
	if err != nil {
		return nil, err
	}

	return &patentdump.ExtractResult{
		Title:             patentdump.Normalize(FirstOf(doc, e.Title)),
		PublicationNumber: patentdump.Normalize(FirstOf(doc, e.PublicationNumber)),
		Abstract:          patentdump.NormalizeAbstract(FirstOf(doc, e.Abstract)),
		Claims:            patentdump.ParseClaims(e.claimTexts(doc)),
	}, nil
}

// claimTexts returns the raw claim texts found on the page, one per claim
// candidate, in document order.
func (e *Extractor) claimTexts(doc *goquery.Document) []string {
	var texts []string
	for _, selector := range e.ClaimSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		sel.Each(func(_ int, s *goquery.Selection) {
			text := patentdump.Normalize(VisibleText(s))
			if patentdump.IsClaimText(text) {
				texts = append(texts, text)
			}
		})
		break
	}
	if len(texts) > 0 {
		return texts
	}

	// Fall back to splitting the text of a whole claims block.
	for _, selector := range e.ClaimBlockSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		for i := range sel.Nodes {
			if parts := patentdump.SplitClaims(VisibleText(sel.Eq(i))); len(parts) > 0 {
				return parts
			}
		}
		break
	}
	return nil
}

// parseDocument decodes the page body to UTF-8 and parses it.
// Scripting is disabled so <noscript> content is parsed as markup.
// An empty body parses to an empty document.
func parseDocument(page *patentdump.RawPage) (*goquery.Document, error) {
	var r io.Reader = bytes.NewReader(page.Body)
	if len(page.Body) > 0 {
		var err error
		if r, err = charset.NewReader(r, page.ContentType); err != nil {
			return nil, patentdump.Errorf(patentdump.EPARSE, "decoding %s: %w", page.URL, err)
		}
	}

	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EPARSE, "parsing %s: %w", page.URL, err)
	}

	return goquery.NewDocumentFromNode(root), nil
}
