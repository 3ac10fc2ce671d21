package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Strategy locates one field value in a parsed document.
// ok is false when nothing was found and the next strategy should run.
type Strategy func(doc *goquery.Document) (value string, ok bool)

// FirstOf evaluates strategies in order and returns the value of the first
// one that succeeds, or "" when none does.
func FirstOf(doc *goquery.Document, strategies []Strategy) string {
	for _, s := range strategies {
		if v, ok := s(doc); ok {
			return v
		}
	}
	return ""
}

// MetaContent returns the content attribute of the first element matching
// selector. A missing or empty attribute counts as not found.
func MetaContent(selector string) Strategy {
	return func(doc *goquery.Document) (string, bool) {
		content, exists := doc.Find(selector).First().Attr("content")
		if !exists || content == "" {
			return "", false
		}
		return content, true
	}
}

// ElementText returns the concatenated text of the first element matching
// selector. The element's presence is enough to succeed.
func ElementText(selector string) Strategy {
	return func(doc *goquery.Document) (string, bool) {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return "", false
		}
		return sel.Text(), true
	}
}

// ElementVisibleText is like ElementText but joins text nodes with spaces
// using VisibleText.
func ElementVisibleText(selector string) Strategy {
	return func(doc *goquery.Document) (string, bool) {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return "", false
		}
		return VisibleText(sel), true
	}
}

// VisibleText collects the text nodes under sel in document order, trims
// each one, drops the empty ones and joins the rest with single spaces.
// Script and style contents are skipped.
func VisibleText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
