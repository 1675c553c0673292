package goquery

import "regexp"

// Policy holds the selector lists, noise patterns, and thresholds that
// drive content extraction. Keeping these as data rather than control flow
// lets them be tuned and tested independently of the traversal logic.
type Policy struct {
	// UnwantedSelectors match elements stripped before any extraction:
	// scripts, styles, navigation, footers, ads, cookie banners.
	UnwantedSelectors []string

	// MainSelectors are tried in order; the first match with sufficient
	// text wins. They cover semantic containers, article bodies, and
	// documentation-style wrappers.
	MainSelectors []string

	// ContentTags are aggregated in the meaningful-element fallback.
	ContentTags string

	// NoisePatterns reject lines that look like chrome rather than content.
	NoisePatterns []*regexp.Regexp

	// TechnicalPatterns rescue short factual technical lines that the word
	// count heuristic would otherwise reject.
	TechnicalPatterns []*regexp.Regexp

	// MinCandidateChars is the raw text length a rule must yield before
	// cleaning is attempted.
	MinCandidateChars int

	// MinCleanedChars is the cleaned text length required to accept a
	// rule's output.
	MinCleanedChars int

	// MinLineChars drops short lines during cleaning.
	MinLineChars int

	// MinElementChars drops short fragments during element aggregation.
	MinElementChars int

	// MinWords is the word count at which a line counts as meaningful
	// without consulting TechnicalPatterns.
	MinWords int
}

// DefaultPolicy returns the extraction policy tuned for technical
// documentation and general article pages.
func DefaultPolicy() Policy {
	return Policy{
		UnwantedSelectors: []string{
			"script", "style", "noscript", "nav", "footer", "header", "aside",
			"form", "iframe", ".advertisement", ".ad", ".ads",
			".social-share", ".share-buttons", ".comments",
			".cookie-banner", ".newsletter-signup", ".popup",
			`[role="banner"]`, `[role="navigation"]`, `[role="contentinfo"]`,
		},
		MainSelectors: []string{
			"main", "article", `[role="main"]`,
			".content", ".main-content", "#content", ".page-content",
			".post", ".blog-post", ".entry-content", ".post-content",
			".documentation", ".docs-content", ".api-content",
			".technical-content", ".tutorial-content", ".wiki-content",
			".markdown-body", ".readme", ".doc-content",
		},
		ContentTags: "p, div, section, li, h1, h2, h3, h4, h5, h6",
		NoisePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\d+\s*$`),
			regexp.MustCompile(`^[A-Z\s]{10,}$`),
			regexp.MustCompile(`(?i)^(Home|About|Contact|Menu|Login|Sign up|Subscribe|Search)(\s|$)`),
			regexp.MustCompile(`(?i)Cookie|Privacy Policy|Terms of Service|All rights reserved`),
			regexp.MustCompile(`(?i)^\d+\s+of\s+\d+$`),
			regexp.MustCompile(`(?i)^Page\s+\d+$`),
			regexp.MustCompile(`^©\s*\d{4}`),
			regexp.MustCompile(`(?i)^Back to top$`),
			regexp.MustCompile(`(?i)^Skip to main content$`),
		},
		TechnicalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(python|javascript|java|react|node|django|mongodb|docker|kubernetes)\b`),
			regexp.MustCompile(`\b\d+\.\d+(\.\d+)?\b`),
			regexp.MustCompile(`\b\d+%`),
			regexp.MustCompile(`(?i)\b\d+x\b`),
			regexp.MustCompile(`(?i)\b(faster|slower|better|performance|compatible|supports|requires)\b`),
			regexp.MustCompile(`(?i)\b(memory|cpu|storage|latency|throughput|index|query)\b`),
		},
		MinCandidateChars: 100,
		MinCleanedChars:   50,
		MinLineChars:      10,
		MinElementChars:   15,
		MinWords:          3,
	}
}
