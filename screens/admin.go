package screens

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"evently/flow"
	"evently/internal/backend"
	"evently/models"
	"evently/utils"
)

// Admin is the create-event form. Submit validates locally, then runs
// upload, record write and notification strictly in that order,
// short-circuiting on the first failure of the gating steps.
type Admin struct {
	clients *backend.Clients

	Name         string
	Location     string
	Price        string
	ImagePath    string
	Loading      bool
	ErrorMessage string

	imageData []byte
}

func NewAdmin(clients *backend.Clients) *Admin {
	return &Admin{clients: clients}
}

// SelectImage loads the image bytes eagerly, the way the original picker
// decoded the bitmap at selection time.
func (s *Admin) SelectImage(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.ErrorMessage = fmt.Sprintf("Could not read image: %v", err)
		return err
	}
	s.ImagePath = path
	s.imageData = data
	return nil
}

// validate is the pre-flight gate. When it fails, no network call happens.
func (s *Admin) validate() (float64, error) {
	if s.Name == "" || s.Location == "" || s.Price == "" || len(s.imageData) == 0 {
		return 0, fmt.Errorf("All fields are required")
	}
	return utils.ParsePrice(s.Price)
}

// Submit runs the create flow. On failure the form stays populated for
// correction; the loading flag is cleared on every exit path.
func (s *Admin) Submit(ctx context.Context) (string, bool) {
	s.ErrorMessage = ""

	price, err := s.validate()
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	s.Loading = true
	defer func() { s.Loading = false }()

	imageURL, err := s.clients.Blob.UploadImage(ctx, bytes.NewReader(s.imageData), int64(len(s.imageData)))
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	_, err = s.clients.Store.CreateEvent(ctx, models.Event{
		Name:     s.Name,
		Location: s.Location,
		Price:    price,
		Image:    imageURL,
	})
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	detachedNotify(s.clients.Push, &models.Notification{
		Title:      "New Event: " + s.Name,
		Body:       "Check out the new event at " + s.Location + "!",
		Segments:   []string{"Subscribed Users"},
		BigPicture: imageURL,
	})
	detachedAnnounce(s.clients.Announce, &models.Announcement{
		Type:     "new_event",
		Name:     s.Name,
		Location: s.Location,
		Image:    imageURL,
	})

	return flow.RouteHome, true
}
