package screens

import (
	"context"
	"strings"

	"evently/internal/backend"
	"evently/models"
)

// Home fetches the event list once and filters it locally as the user
// types. Filtering never re-queries the store.
type Home struct {
	clients *backend.Clients

	Loading      bool
	ErrorMessage string
	Query        string
	Filtered     []models.Event

	events []models.Event
	loaded bool
}

func NewHome(clients *backend.Clients) *Home {
	return &Home{clients: clients}
}

// Load issues the single ListEvents call on first display. A failure
// surfaces its message and leaves the list empty; no retry is offered.
func (s *Home) Load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	s.Loading = true
	defer func() { s.Loading = false }()

	events, err := s.clients.Store.ListEvents(ctx)
	if err != nil {
		s.ErrorMessage = err.Error()
		return
	}

	s.events = events
	s.Filtered = events
}

// SetQuery recomputes the filtered view synchronously on every keystroke.
func (s *Home) SetQuery(query string) {
	s.Query = query
	s.Filtered = filterEvents(s.events, query)
}

// Empty reports whether the fetch succeeded but nothing matches the query.
func (s *Home) Empty() bool {
	return !s.Loading && s.ErrorMessage == "" && len(s.Filtered) == 0
}

// filterEvents keeps the events whose name or location contains the query,
// case-insensitive. An empty query returns the full set.
func filterEvents(events []models.Event, query string) []models.Event {
	if query == "" {
		return events
	}

	q := strings.ToLower(query)
	filtered := make([]models.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Location), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
