package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if c.Once {
		return deps.Scheduler.RunOnce(deps.Ctx)
	}

	deps.Scheduler.Start(deps.Ctx)
	fmt.Fprintf(deps.Stdout, "Watching tracked pages (tick %s, concurrency %d). Ctrl-C to stop.\n",
		c.Tick, c.Concurrency)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
	case <-deps.Ctx.Done():
	}

	deps.Scheduler.Stop()
	return nil
}
