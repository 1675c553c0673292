package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the pause command.
func (c *PauseCmd) Run(deps *Dependencies) error {
	return setActive(deps, c.ID, false)
}

// Run executes the resume command.
func (c *ResumeCmd) Run(deps *Dependencies) error {
	return setActive(deps, c.ID, true)
}

func setActive(deps *Dependencies, id string, active bool) error {
	page, err := deps.Pages.UpdatePage(deps.Ctx, id, pagewatch.PageUpdate{IsActive: &active})
	if err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'pagewatch list' to see tracked pages.\n", id)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		}
		return err
	}

	verb := "Paused"
	if active {
		verb = "Resumed"
	}
	fmt.Fprintf(deps.Stdout, "%s monitoring for %q\n", verb, page.DisplayName)
	return nil
}
