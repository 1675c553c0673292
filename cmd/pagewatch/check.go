package main

import (
	"fmt"
	"strings"

	"github.com/pagewatch/pagewatch"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	meta := deps.Extractor.Metadata(html)
	if meta.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:    %s\n", meta.Title)
	}
	if meta.Description != "" {
		fmt.Fprintf(deps.Stdout, "About:    %s\n", meta.Description)
	}
	if meta.Language != "" {
		fmt.Fprintf(deps.Stdout, "Language: %s\n", meta.Language)
	}
	fmt.Fprintf(deps.Stdout, "Content:  %d chars, %d words, %d lines\n",
		len(result.Text),
		len(strings.Fields(result.Text)),
		strings.Count(result.Text, "\n")+1)

	if c.Full {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, result.Text)
	}

	return nil
}
