package screens

import (
	"context"

	"evently/flow"
	"evently/internal/backend"
	"evently/models"
)

// Login collects credentials and routes by the looked-up role on success.
type Login struct {
	clients *backend.Clients

	Email        string
	Password     string
	Loading      bool
	ErrorMessage string
}

func NewLogin(clients *backend.Clients) *Login {
	return &Login{clients: clients}
}

// Submit signs in and resolves the post-login route: admin when the stored
// role is "admin", home for anything else including an absent role. It
// returns "" and false when the screen should stay put with an error shown.
func (s *Login) Submit(ctx context.Context) (string, bool) {
	s.ErrorMessage = ""
	s.Loading = true
	defer func() { s.Loading = false }()

	userID, err := s.clients.Identity.SignIn(ctx, s.Email, s.Password)
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	role, err := s.clients.Store.UserRole(ctx, userID)
	if err != nil {
		s.ErrorMessage = err.Error()
		return "", false
	}

	if role == models.RoleAdmin {
		return flow.RouteAdmin, true
	}
	return flow.RouteHome, true
}
