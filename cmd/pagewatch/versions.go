package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	versions, err := deps.Versions.FindVersionsByPage(deps.Ctx, c.ID, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	if len(versions) == 0 {
		fmt.Fprintln(deps.Stdout, "No versions captured yet.")
		return nil
	}

	for _, v := range versions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d chars, %d words\n",
			v.ID, v.CapturedAt.Format("2006-01-02 15:04:05"),
			v.Metadata.ContentLength, v.Metadata.WordCount)
		if c.Full {
			fmt.Fprintln(deps.Stdout, v.ExtractedText)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
