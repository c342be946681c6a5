package pb

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"evently/internal/status"
	"evently/models"
	"evently/monitoring"
)

// listPageSize bounds one fetch. The list call is deliberately unpaginated;
// when the collection outgrows one page that shows up in the logs instead
// of silently truncating.
const listPageSize = 500

// UserRole looks up the role field on users/{userID}. An unset role comes
// back as "", which callers treat as non-admin.
func (c *Client) UserRole(ctx context.Context, userID string) (role string, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("store", "user_role", start, err) }()

	var reply struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	err = c.do(ctx, http.MethodGet, "/api/collections/users/records/"+userID, nil, &reply)
	if err != nil {
		return "", &status.StoreError{Err: err}
	}
	return reply.Role, nil
}

// CreateUser merges profile fields onto users/{userID}. The identity
// provider already created the record at sign-up, so this is a patch and
// stays idempotent.
func (c *Client) CreateUser(ctx context.Context, userID string, user models.User) (err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("store", "create_user", start, err) }()

	err = c.do(ctx, http.MethodPatch, "/api/collections/users/records/"+userID, map[string]any{
		"createdAt": user.CreatedAt,
	}, nil)
	if err != nil {
		return &status.StoreError{Err: err}
	}
	return nil
}

// ListEvents fetches the whole events collection in one call and applies
// the lenient-read policy. Order is whatever the store returns.
func (c *Client) ListEvents(ctx context.Context) (events []models.Event, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("store", "list_events", start, err) }()

	var reply struct {
		TotalItems int                  `json:"totalItems"`
		Items      []models.EventRecord `json:"items"`
	}
	err = c.do(ctx, http.MethodGet, fmt.Sprintf("/api/collections/events/records?perPage=%d", listPageSize), nil, &reply)
	if err != nil {
		return nil, &status.StoreError{Err: err}
	}

	if reply.TotalItems > len(reply.Items) {
		slog.Warn("events collection larger than one fetch", "totalItems", reply.TotalItems, "fetched", len(reply.Items))
	}

	return models.CollectEvents(reply.Items), nil
}

// CreateEvent appends one document and returns its generated id.
func (c *Client) CreateEvent(ctx context.Context, event models.Event) (id string, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("store", "create_event", start, err) }()

	var reply struct {
		ID string `json:"id"`
	}
	err = c.do(ctx, http.MethodPost, "/api/collections/events/records", map[string]any{
		"name":     event.Name,
		"location": event.Location,
		"price":    event.Price,
		"image":    event.Image,
	}, &reply)
	if err != nil {
		return "", &status.StoreError{Err: err}
	}
	if reply.ID == "" {
		return "", &status.StoreError{Err: status.ErrEmptyResponse}
	}
	return reply.ID, nil
}
