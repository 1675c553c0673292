package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagewatch.Errorf(pagewatch.EINVALID, "use --force to confirm deletion")
	}

	page, err := deps.Pages.FindPageByID(deps.Ctx, c.ID)
	if err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'pagewatch list' to see tracked pages.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Pages.DeletePage(deps.Ctx, page.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %q and its history\n", page.DisplayName)
	return nil
}
