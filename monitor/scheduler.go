// Package monitor provides the polling scheduler that drives the
// content-monitoring pipeline. On each tick it selects pages due for a
// check, fetches and extracts them under a concurrency cap, compares the
// text against the last settled version, and persists versions and change
// records.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pagewatch/pagewatch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultTickInterval is the poll-cycle granularity: the loop re-scans for
// due pages this often.
const DefaultTickInterval = 60 * time.Second

// DefaultConcurrency caps simultaneous in-flight page checks.
const DefaultConcurrency = 5

// Scheduler owns the polling loop. One scheduler instance drives one loop;
// Start and Stop move it between Stopped and Running.
type Scheduler struct {
	Pages    pagewatch.PageService
	Versions pagewatch.VersionService
	Changes  pagewatch.ChangeService
	Users    pagewatch.UserService

	Fetcher   pagewatch.Fetcher
	Extractor pagewatch.Extractor
	Differ    pagewatch.Differ
	Notifier  pagewatch.Notifier

	// Archiver, when set, receives the raw HTML of every captured version.
	Archiver pagewatch.Archiver

	// TickInterval defaults to DefaultTickInterval.
	TickInterval time.Duration

	// Concurrency defaults to DefaultConcurrency.
	Concurrency int

	// DispatchRate, when positive, smooths how fast page checks are
	// launched within a tick (checks per second).
	DispatchRate float64

	// Now returns the current time; defaults to time.Now. Exposed for
	// tests.
	Now func() time.Time

	Logger *slog.Logger

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	dispatch *rate.Limiter
}

// Start begins the polling loop. Calling Start while already running is a
// no-op logged as a warning.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger().Warn("scheduler is already running")
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger().Info("monitoring scheduler started", "tick", s.tickInterval())
}

// Stop cancels the running loop and awaits its cooperative exit. Safe to
// call when already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger().Info("monitoring scheduler stopped")
}

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SchedulePage is a hint only: newly created pages are picked up on the
// next due-scan because their LastCheckedAt is nil.
func (s *Scheduler) SchedulePage(page *pagewatch.TrackedPage) {
	s.logger().Info("page scheduled for monitoring", "url", page.URL)
}

// run is the main loop. Cancellation is observed at tick boundaries and at
// every fetch-await point inside page checks.
func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	for {
		if err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger().Error("error in scheduler loop", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.tickInterval()):
		}
	}
}

// RunOnce performs a single due-scan cycle: it loads due pages and checks
// them under the concurrency cap. A failure in one page never cancels the
// others.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := s.now()

	pages, err := s.Pages.FindDuePages(ctx, now)
	if err != nil {
		return fmt.Errorf("find due pages: %w", err)
	}
	if len(pages) == 0 {
		return nil
	}

	s.logger().Info("checking pages for changes", "count", len(pages))

	var g errgroup.Group
	g.SetLimit(s.concurrency())

	limiter := s.dispatchLimiter()
	for _, page := range pages {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return nil
				}
			}
			s.checkPage(ctx, page)
			return nil
		})
	}

	return g.Wait()
}

// checkPage runs one page through the pipeline. All expected failures are
// logged and swallowed; the page will be retried on its next due window.
func (s *Scheduler) checkPage(ctx context.Context, page *pagewatch.TrackedPage) {
	logger := s.logger().With("page_id", page.ID, "url", page.URL)

	html, fetchErr := s.Fetcher.Fetch(ctx, page.URL)

	var text string
	var extractErr error
	if fetchErr == nil {
		var res *pagewatch.ExtractResult
		res, extractErr = s.Extractor.Extract(html)
		if extractErr == nil {
			text = res.Text
		}
	}

	// The page counts as checked whether or not content was produced.
	now := s.now()
	if _, err := s.Pages.UpdatePage(ctx, page.ID, pagewatch.PageUpdate{LastCheckedAt: &now}); err != nil {
		logger.Error("failed to mark page checked", "error", err)
	}

	if fetchErr != nil {
		logger.Warn("fetch failed", "error", fetchErr)
		return
	}
	if extractErr != nil {
		logger.Warn("extraction failed", "error", extractErr)
		return
	}

	// The comparison baseline is the most recent stored version; once the
	// new version is written it becomes the settled previous one.
	var prev *pagewatch.PageVersion
	if latest, err := s.Versions.FindVersionsByPage(ctx, page.ID, 1); err != nil {
		logger.Error("failed to load latest version", "error", err)
		return
	} else if len(latest) > 0 {
		prev = latest[0]
	}

	hash := hashText(text)
	if prev != nil && prev.ContentHash == hash && prev.ExtractedText == text {
		return
	}

	var oldText string
	if prev != nil {
		oldText = prev.ExtractedText
	}

	diff, err := s.Differ.Compare(oldText, text)
	if err != nil {
		logger.Error("diff failed", "error", err)
		return
	}

	version := &pagewatch.PageVersion{
		PageID:        page.ID,
		CapturedAt:    now,
		ExtractedText: text,
		ContentHash:   hash,
		Metadata: pagewatch.VersionMetadata{
			ContentLength: len(text),
			WordCount:     len(strings.Fields(text)),
		},
	}
	if err := s.Versions.CreateVersion(ctx, version); err != nil {
		logger.Error("failed to create version", "error", err)
		return
	}

	if s.Archiver != nil {
		if err := s.Archiver.Archive(ctx, page.ID, version.ID, html); err != nil {
			logger.Warn("failed to archive raw HTML", "error", err)
		}
	}

	upd := pagewatch.PageUpdate{CurrentVersionID: &version.ID}
	if diff.ChangeRatio > 0 {
		upd.LastChangeDetectedAt = &now
	}
	if _, err := s.Pages.UpdatePage(ctx, page.ID, upd); err != nil {
		logger.Error("failed to update page version pointer", "error", err)
	}

	if diff.ChangeRatio > 0 {
		s.recordChange(ctx, logger, page, diff.ChangeRatio, len(oldText), len(text), now)
	}
}

// recordChange classifies the change, notifies the owner when alerts are
// enabled, and appends the audit record. Notification failures are logged
// and never abort the cycle.
func (s *Scheduler) recordChange(ctx context.Context, logger *slog.Logger, page *pagewatch.TrackedPage, ratio float64, oldLen, newLen int, now time.Time) {
	severity := pagewatch.ClassifySeverity(ratio)

	notified := false
	owner, err := s.Users.FindUserByID(ctx, page.OwnerID)
	if err != nil {
		logger.Error("failed to resolve page owner", "error", err)
	} else if owner.EmailAlerts && s.Notifier != nil {
		n := pagewatch.Notification{
			User:        owner,
			Page:        page,
			Severity:    severity,
			ChangeRatio: ratio,
			OldLength:   oldLen,
			NewLength:   newLen,
		}
		if err := s.Notifier.Notify(ctx, n); err != nil {
			logger.Error("notification failed", "error", err)
		} else {
			notified = true
		}
	}

	change := &pagewatch.ChangeRecord{
		PageID:           page.ID,
		OwnerID:          page.OwnerID,
		DetectedAt:       now,
		ChangePercentage: ratio,
		Severity:         severity,
		PreviousLength:   oldLen,
		NewLength:        newLen,
		NotificationSent: notified,
	}
	if err := s.Changes.CreateChange(ctx, change); err != nil {
		logger.Error("failed to create change record", "error", err)
		return
	}

	logger.Info("change detected",
		"severity", severity,
		"change_ratio", ratio,
	)
}

// dispatchLimiter lazily builds the launch limiter so that both the Start
// loop and a direct RunOnce honor DispatchRate.
func (s *Scheduler) dispatchLimiter() *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dispatch == nil && s.DispatchRate > 0 {
		s.dispatch = rate.NewLimiter(rate.Limit(s.DispatchRate), 1)
	}
	return s.dispatch
}

func (s *Scheduler) tickInterval() time.Duration {
	if s.TickInterval > 0 {
		return s.TickInterval
	}
	return DefaultTickInterval
}

func (s *Scheduler) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Scheduler) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// hashText computes an xxhash of the extracted text, stored on versions to
// short-circuit identical-content comparison.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
