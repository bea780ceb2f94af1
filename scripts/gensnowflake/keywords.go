package main

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

var keywordPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// parseKeywordsPage extracts the first-column keyword of every table row.
// The Snowflake page is a single table with 2 columns (Keyword, Comment).
func parseKeywordsPage(body []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	keywordSet := make(map[string]bool)

	var inTable bool
	var findKeywords func(*html.Node)
	findKeywords = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			inTable = true
		}

		if inTable && n.Type == html.ElementNode && n.Data == "tr" {
			kw := strings.ToUpper(extractKeywordFromRow(n))
			// Skip letter headers (single char A-Z) and prose cells
			if len(kw) > 1 && keywordPattern.MatchString(kw) {
				keywordSet[kw] = true
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findKeywords(c)
		}

		if n.Type == html.ElementNode && n.Data == "table" {
			inTable = false
		}
	}

	findKeywords(doc)

	return mapToSortedSlice(keywordSet), nil
}

// extractKeywordFromRow extracts the keyword cell from a table row.
func extractKeywordFromRow(tr *html.Node) string {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			return strings.TrimSpace(extractText(c))
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	var buf bytes.Buffer
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func mapToSortedSlice(m map[string]bool) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// keywordDiff lists keywords present on only one side.
type keywordDiff struct {
	Added   []string // on the page, missing from the table
	Removed []string // in the table, gone from the page
}

func diffKeywords(table, published []string) keywordDiff {
	inTable := make(map[string]bool, len(table))
	for _, kw := range table {
		inTable[kw] = true
	}
	onPage := make(map[string]bool, len(published))
	for _, kw := range published {
		onPage[kw] = true
	}

	var d keywordDiff
	for _, kw := range published {
		if !inTable[kw] {
			d.Added = append(d.Added, kw)
		}
	}
	for _, kw := range table {
		if !onPage[kw] {
			d.Removed = append(d.Removed, kw)
		}
	}
	sort.Strings(d.Added)
	sort.Strings(d.Removed)
	return d
}

func (d keywordDiff) empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

func (d keywordDiff) report(w io.Writer) {
	if d.empty() {
		_, _ = fmt.Fprintln(w, "reserved keyword table is up to date")
		return
	}
	for _, kw := range d.Added {
		_, _ = fmt.Fprintf(w, "+ %s\n", kw)
	}
	for _, kw := range d.Removed {
		_, _ = fmt.Fprintf(w, "- %s\n", kw)
	}
}
