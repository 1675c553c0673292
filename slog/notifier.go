package slog

import (
	"context"
	"log/slog"

	"github.com/pagewatch/pagewatch"
)

// Ensure Notifier implements pagewatch.Notifier.
var _ pagewatch.Notifier = (*Notifier)(nil)

// Notifier delivers change notifications to the log. It stands in for an
// email or webhook transport in single-binary deployments.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a new Notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Notify logs the change alert for the page owner.
func (n *Notifier) Notify(ctx context.Context, notification pagewatch.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.Info("change alert",
		"email", notification.User.Email,
		"url", notification.Page.URL,
		"page", notification.Page.DisplayName,
		"severity", notification.Severity,
		"change_ratio", notification.ChangeRatio,
		"previous_length", notification.OldLength,
		"new_length", notification.NewLength,
	)
	return nil
}
