package screens

import (
	"context"
	"time"

	"evently/flow"
	"evently/internal/backend"
	"evently/models"
)

// Register collects credentials, creates the account and profile record,
// and fires a welcome notification off the critical path.
type Register struct {
	clients *backend.Clients

	Email           string
	Password        string
	ConfirmPassword string
	Loading         bool
	ErrorMessage    string
}

func NewRegister(clients *backend.Clients) *Register {
	return &Register{clients: clients}
}

// Submit runs the registration flow. The password match check happens
// before any network call. New accounts have no role, so success always
// routes home.
func (s *Register) Submit(ctx context.Context) (string, bool) {
	s.ErrorMessage = ""

	if s.Password != s.ConfirmPassword {
		s.ErrorMessage = "Passwords do not match!"
		return "", false
	}

	s.Loading = true
	defer func() { s.Loading = false }()

	userID, err := s.clients.Identity.SignUp(ctx, s.Email, s.Password)
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	err = s.clients.Store.CreateUser(ctx, userID, models.User{
		UID:       userID,
		Email:     s.Email,
		CreatedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	detachedNotify(s.clients.Push, &models.Notification{
		Title:           "Welcome to Evently!",
		Body:            "Thank you for joining us. Explore exciting events!",
		ExternalUserIDs: []string{s.Email},
	})

	return flow.RouteHome, true
}
