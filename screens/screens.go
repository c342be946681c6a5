// Package screens holds the view state and reducer logic for the five app
// screens. Each screen owns its own state for its active lifetime; nothing
// is shared across screens, and state is discarded on navigation away.
package screens

import (
	"context"
	"log/slog"
	"time"

	"evently/internal/backend"
	"evently/models"
)

// detachTimeout bounds the best-effort sends that run off the critical
// path. They use a fresh context so they may still be in flight after the
// caller navigated away.
const detachTimeout = 15 * time.Second

// detachedNotify fires a push send as a detached task. The result is
// logged and otherwise unobserved; event creation and registration succeed
// regardless of delivery.
func detachedNotify(push backend.Notifier, n *models.Notification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()

		if err := push.Notify(ctx, n); err != nil {
			slog.Error("push notification failed", "title", n.Title, "error", err)
		}
	}()
}

// detachedAnnounce mirrors detachedNotify for the realtime channel.
func detachedAnnounce(announcer backend.Announcer, a *models.Announcement) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()

		if err := announcer.Announce(ctx, a); err != nil {
			slog.Error("event announcement failed", "name", a.Name, "error", err)
		}
	}()
}
