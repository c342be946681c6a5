package models

// Event is one listable record from the "events" collection.
type Event struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// EventRecord is the raw shape of an events document as the store returns
// it. Price is a pointer so an absent field can be told apart from zero.
type EventRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Price    *float64 `json:"price"`
	Image    string   `json:"image"`
}

// Valid reports whether the record carries every required field. Image is
// not required; an absent image defaults to "".
func (r EventRecord) Valid() bool {
	return r.Name != "" && r.Location != "" && r.Price != nil
}

// Event converts a valid record into the listable form.
func (r EventRecord) Event() Event {
	e := Event{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
		Image:    r.Image,
	}
	if r.Price != nil {
		e.Price = *r.Price
	}
	return e
}

// CollectEvents applies the lenient-read policy: records missing any of
// name, location or price are dropped rather than surfaced as errors.
func CollectEvents(records []EventRecord) []Event {
	events := make([]Event, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		events = append(events, r.Event())
	}
	return events
}
