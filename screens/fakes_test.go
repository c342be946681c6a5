package screens

import (
	"context"
	"io"
	"sync"

	"evently/internal/backend"
	"evently/models"
)

// fakeBackend implements every client contract with canned replies and a
// shared call log so tests can assert ordering across clients.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	signInID  string
	signInErr error
	signUpID  string
	signUpErr error

	role           string
	roleErr        error
	createUserErr  error
	events         []models.Event
	listErr        error
	createEventID  string
	createEventErr error

	uploadURL string
	uploadErr error

	notifyErr error
	notified  chan *models.Notification
	announced chan *models.Announcement
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		signInID:      "user-1",
		signUpID:      "user-1",
		createEventID: "event-1",
		uploadURL:     "http://blob.local/evently/event_images/1.jpg",
		notified:      make(chan *models.Notification, 4),
		announced:     make(chan *models.Announcement, 4),
	}
}

func (f *fakeBackend) clients() *backend.Clients {
	return &backend.Clients{
		Identity: f,
		Store:    f,
		Blob:     f,
		Push:     f,
		Announce: f,
	}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeBackend) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) SignIn(ctx context.Context, email, password string) (string, error) {
	f.record("SignIn")
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return f.signInID, nil
}

func (f *fakeBackend) SignUp(ctx context.Context, email, password string) (string, error) {
	f.record("SignUp")
	if f.signUpErr != nil {
		return "", f.signUpErr
	}
	return f.signUpID, nil
}

func (f *fakeBackend) UserRole(ctx context.Context, userID string) (string, error) {
	f.record("UserRole")
	if f.roleErr != nil {
		return "", f.roleErr
	}
	return f.role, nil
}

func (f *fakeBackend) CreateUser(ctx context.Context, userID string, user models.User) error {
	f.record("CreateUser")
	return f.createUserErr
}

func (f *fakeBackend) ListEvents(ctx context.Context) ([]models.Event, error) {
	f.record("ListEvents")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeBackend) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	f.record("CreateEvent")
	if f.createEventErr != nil {
		return "", f.createEventErr
	}
	return f.createEventID, nil
}

func (f *fakeBackend) UploadImage(ctx context.Context, image io.Reader, size int64) (string, error) {
	f.record("UploadImage")
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadURL, nil
}

func (f *fakeBackend) Notify(ctx context.Context, n *models.Notification) error {
	f.record("Notify")
	f.notified <- n
	return f.notifyErr
}

func (f *fakeBackend) Announce(ctx context.Context, a *models.Announcement) error {
	f.record("Announce")
	f.announced <- a
	return nil
}

func (f *fakeBackend) Listen(ctx context.Context, fn func(*models.Announcement)) {
	<-ctx.Done()
}

func (f *fakeBackend) Close() {}
