package backend

import (
	"context"
	"io"

	"evently/models"
)

// Identity wraps sign-in/sign-up against the identity provider. Both return
// the provider's opaque user id; a successful call establishes a session on
// the underlying client.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) (string, error)
}

// Store wraps the two document collections.
type Store interface {
	// UserRole is a point lookup. It returns "" when no role is set;
	// callers treat that as non-admin.
	UserRole(ctx context.Context, userID string) (string, error)

	// CreateUser is an idempotent profile merge keyed by userID.
	CreateUser(ctx context.Context, userID string, user models.User) error

	// ListEvents fetches the whole events collection in one call. Order is
	// store-defined; records missing required fields are dropped.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// CreateEvent appends one document and returns its generated id.
	CreateEvent(ctx context.Context, event models.Event) (string, error)
}

// Blob wraps image upload to object storage.
type Blob interface {
	// UploadImage writes the image under a time-namespaced key and returns
	// a publicly resolvable URL.
	UploadImage(ctx context.Context, image io.Reader, size int64) (string, error)
}

// Notifier wraps the push provider. Sends are best-effort: callers fire
// them detached and only log failures.
type Notifier interface {
	Notify(ctx context.Context, n *models.Notification) error
}

// Announcer wraps the realtime channel. Best-effort like Notifier.
type Announcer interface {
	Announce(ctx context.Context, a *models.Announcement) error

	// Listen invokes fn for every announcement until ctx is done.
	Listen(ctx context.Context, fn func(*models.Announcement))

	Close()
}
