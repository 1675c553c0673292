// Package goquery provides the heuristic HTML-to-text Extractor.
// It reduces a page to its main content through a layered strategy:
// semantic-selector match, meaningful-element aggregation, then a
// whole-document fallback, followed by noise filtering and deduplication.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagewatch/pagewatch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagewatch.Extractor at compile time.
var _ pagewatch.Extractor = (*Extractor)(nil)

var (
	multiSpace   = regexp.MustCompile(` {2,}`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// Extractor reduces raw HTML to normalized plain text using an injected
// Policy. Extraction is deterministic: the same input always yields the
// same output.
type Extractor struct {
	policy Policy
}

// NewExtractor creates an Extractor with the default policy.
func NewExtractor() *Extractor {
	return NewExtractorWithPolicy(DefaultPolicy())
}

// NewExtractorWithPolicy creates an Extractor with a custom policy.
func NewExtractorWithPolicy(policy Policy) *Extractor {
	return &Extractor{policy: policy}
}

// Extract processes raw HTML and returns the main content as text.
// Returns ENOCONTENT if nothing usable remains after cleaning.
func (e *Extractor) Extract(rawHTML string) (*pagewatch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagewatch.Errorf(pagewatch.ENOCONTENT, "empty HTML input")
	}

	doc, err := parseWithoutComments(rawHTML)
	if err != nil {
		return nil, pagewatch.Errorf(pagewatch.EINVALID, "failed to parse HTML: %v", err)
	}

	// Rule 1: strip non-content elements.
	for _, selector := range e.policy.UnwantedSelectors {
		doc.Find(selector).Remove()
	}

	// Rule 2: semantic selectors, first sufficient match wins.
	for _, selector := range e.policy.MainSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := textLines(sel)
		if len(text) <= e.policy.MinCandidateChars {
			continue
		}
		if cleaned := e.clean(text); len(cleaned) > e.policy.MinCleanedChars {
			return &pagewatch.ExtractResult{Text: cleaned}, nil
		}
	}

	// Rule 3: aggregate meaningful elements, skipping structural chrome.
	var fragments []string
	doc.Find(e.policy.ContentTags).Each(func(_ int, sel *goquery.Selection) {
		// An element whose child tag count exceeds a third of its word
		// count is navigation-like, not prose.
		childTags := sel.Find("*").Length()
		words := len(strings.Fields(sel.Text()))
		if childTags > words/3 {
			return
		}

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) < e.policy.MinElementChars {
			return
		}
		if e.meaningful(text) {
			fragments = append(fragments, text)
		}
	})
	if len(fragments) > 0 {
		if cleaned := e.clean(strings.Join(fragments, "\n")); len(cleaned) > e.policy.MinCleanedChars {
			return &pagewatch.ExtractResult{Text: cleaned}, nil
		}
	}

	// Rule 4: all visible text in the document.
	if cleaned := e.clean(textLines(doc.Selection)); len(cleaned) > e.policy.MinCleanedChars {
		return &pagewatch.ExtractResult{Text: cleaned}, nil
	}

	return nil, pagewatch.Errorf(pagewatch.ENOCONTENT, "no substantial content found")
}

// Metadata pulls title, description, and language from the raw document.
// Failures yield a zero value, never an error.
func (e *Extractor) Metadata(rawHTML string) pagewatch.PageMetadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return pagewatch.PageMetadata{}
	}

	return pagewatch.PageMetadata{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		Language:    strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
	}
}

// clean normalizes candidate text: short lines, duplicates, and noise lines
// are dropped (first occurrence wins, order preserved), runs of blank lines
// and repeated spaces are collapsed.
func (e *Extractor) clean(text string) string {
	var lines []string
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < e.policy.MinLineChars {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		if !e.meaningful(line) {
			continue
		}
		lines = append(lines, line)
		seen[line] = struct{}{}
	}

	result := strings.Join(lines, "\n")
	result = multiNewline.ReplaceAllString(result, "\n\n")
	result = multiSpace.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}

// meaningful reports whether a line is content rather than noise. A line
// qualifies with at least MinWords words, or by matching a technical
// allow-pattern; noise patterns always disqualify.
func (e *Extractor) meaningful(text string) bool {
	for _, re := range e.policy.NoisePatterns {
		if re.MatchString(text) {
			return false
		}
	}
	if len(strings.Fields(text)) >= e.policy.MinWords {
		return true
	}
	for _, re := range e.policy.TechnicalPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// parseWithoutComments parses HTML and removes comment nodes, which goquery
// selections cannot address.
func parseWithoutComments(rawHTML string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	stripComments(root)
	return goquery.NewDocumentFromNode(root), nil
}

func stripComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			stripComments(c)
		}
		c = next
	}
}

// textLines collects the trimmed text nodes under a selection in document
// order, one per line.
func textLines(sel *goquery.Selection) string {
	var lines []string
	for _, node := range sel.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*lines = append(*lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
