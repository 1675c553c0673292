package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagewatch.PageFilter{ActiveOnly: !c.All}

	if c.Owner != "" {
		owner, err := deps.Users.FindUserByEmail(deps.Ctx, c.Owner)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
			return err
		}
		filter.OwnerID = &owner.ID
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No tracked pages found. Use 'pagewatch add' to track one.")
		return nil
	}

	for _, p := range pages {
		status := "active"
		if !p.IsActive {
			status = "paused"
		}
		last := "never"
		if p.LastCheckedAt != nil {
			last = p.LastCheckedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  every %-8s  last %-16s  %s\n",
			p.ID, status, p.CheckInterval, last, p.URL)
	}

	return nil
}
