package pb

import (
	"context"
	"net/http"
	"time"

	"evently/internal/status"
	"evently/monitoring"
)

type authReply struct {
	Token  string `json:"token"`
	Record struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"record"`
}

// SignIn authenticates with email and password and returns the opaque user
// id. The session token is kept on the client for later store calls.
func (c *Client) SignIn(ctx context.Context, email, password string) (userID string, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("identity", "sign_in", start, err) }()

	var reply authReply
	err = c.do(ctx, http.MethodPost, "/api/collections/users/auth-with-password", map[string]string{
		"identity": email,
		"password": password,
	}, &reply)
	if err != nil {
		return "", &status.AuthError{Err: err}
	}
	if reply.Record.ID == "" {
		return "", &status.AuthError{Err: status.ErrUserNotFound}
	}

	c.setToken(reply.Token)
	return reply.Record.ID, nil
}

// SignUp registers a new account and then authenticates it, so a successful
// call implicitly establishes a session like the provider SDKs do.
func (c *Client) SignUp(ctx context.Context, email, password string) (userID string, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("identity", "sign_up", start, err) }()

	var created struct {
		ID string `json:"id"`
	}
	err = c.do(ctx, http.MethodPost, "/api/collections/users/records", map[string]string{
		"email":           email,
		"password":        password,
		"passwordConfirm": password,
	}, &created)
	if err != nil {
		return "", &status.AuthError{Err: err}
	}

	var reply authReply
	err = c.do(ctx, http.MethodPost, "/api/collections/users/auth-with-password", map[string]string{
		"identity": email,
		"password": password,
	}, &reply)
	if err != nil {
		return "", &status.AuthError{Err: err}
	}

	c.setToken(reply.Token)
	return created.ID, nil
}
