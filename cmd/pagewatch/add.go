package main

import (
	"fmt"

	"github.com/pagewatch/pagewatch"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	owner, err := resolveOwner(deps, c.Owner, !c.NoAlerts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		return err
	}

	page := &pagewatch.TrackedPage{
		OwnerID:       owner.ID,
		URL:           c.URL,
		DisplayName:   c.Name,
		CheckInterval: c.Interval,
	}

	if err := deps.Pages.CreatePage(deps.Ctx, page); err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: %s already tracks %s\n", owner.Email, c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagewatch.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Tracking %q (%s) every %s\n", page.DisplayName, page.ID, page.CheckInterval)
	return nil
}

// resolveOwner finds a user by email, registering them on first use.
func resolveOwner(deps *Dependencies, email string, emailAlerts bool) (*pagewatch.User, error) {
	owner, err := deps.Users.FindUserByEmail(deps.Ctx, email)
	if err == nil {
		return owner, nil
	}
	if pagewatch.ErrorCode(err) != pagewatch.ENOTFOUND {
		return nil, err
	}

	owner = &pagewatch.User{Email: email, EmailAlerts: emailAlerts}
	if err := deps.Users.CreateUser(deps.Ctx, owner); err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stdout, "Registered owner %s\n", email)
	return owner, nil
}
