package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the diff command. It compares the most recent version of a
// page against the settled version before it.
func (c *DiffCmd) Run(deps *Dependencies) error {
	latest, err := deps.Versions.FindVersionsByPage(deps.Ctx, c.ID, 1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}
	if len(latest) == 0 {
		fmt.Fprintf(deps.Stderr, "error: page %q has no captured versions\n", c.ID)
		return pagewatch.Errorf(pagewatch.ENOTFOUND, "page %q has no captured versions", c.ID)
	}

	prev, err := deps.Versions.FindPreviousVersion(deps.Ctx, c.ID)
	if err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q has only one version, nothing to compare\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		}
		return err
	}

	result, err := deps.Differ.Compare(prev.ExtractedText, latest[0].ExtractedText)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s -> %s: %.1f%% changed (%s)\n",
		prev.CapturedAt.Format("2006-01-02 15:04:05"),
		latest[0].CapturedAt.Format("2006-01-02 15:04:05"),
		result.ChangeRatio, pagewatch.ClassifySeverity(result.ChangeRatio))

	for _, change := range result.Changes {
		switch change.Kind {
		case pagewatch.ChangeRemoved:
			for _, line := range change.OldLines {
				fmt.Fprintf(deps.Stdout, "- %s\n", line)
			}
		case pagewatch.ChangeAdded:
			for _, line := range change.NewLines {
				fmt.Fprintf(deps.Stdout, "+ %s\n", line)
			}
		case pagewatch.ChangeModified:
			for _, line := range change.OldLines {
				fmt.Fprintf(deps.Stdout, "- %s\n", line)
			}
			for _, line := range change.NewLines {
				fmt.Fprintf(deps.Stdout, "+ %s\n", line)
			}
		}
	}

	return nil
}
