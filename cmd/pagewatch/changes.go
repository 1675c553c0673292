package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the changes command.
func (c *ChangesCmd) Run(deps *Dependencies) error {
	if c.Page == "" && c.Owner == "" {
		fmt.Fprintf(deps.Stderr, "error: provide --page or --owner\n")
		return pagewatch.Errorf(pagewatch.EINVALID, "provide --page or --owner")
	}

	var changes []*pagewatch.ChangeRecord
	var err error
	if c.Page != "" {
		changes, err = deps.Changes.FindChangesByPage(deps.Ctx, c.Page, c.Limit)
	} else {
		var owner *pagewatch.User
		owner, err = deps.Users.FindUserByEmail(deps.Ctx, c.Owner)
		if err == nil {
			changes, err = deps.Changes.FindChangesByOwner(deps.Ctx, owner.ID, c.Limit)
		}
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(deps.Stdout, "No changes detected yet.")
		return nil
	}

	for _, ch := range changes {
		notified := ""
		if ch.NotificationSent {
			notified = "  notified"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %5.1f%%  %d -> %d chars%s\n",
			ch.DetectedAt.Format("2006-01-02 15:04:05"), ch.PageID,
			ch.Severity, ch.ChangePercentage, ch.PreviousLength, ch.NewLength, notified)
	}

	return nil
}
