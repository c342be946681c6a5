package models

// Notification is one push message. Segments and ExternalUserIDs select the
// audience; exactly one of them should be set.
type Notification struct {
	Title           string
	Body            string
	Segments        []string
	ExternalUserIDs []string
	BigPicture      string
}

// Announcement is one realtime broadcast about a newly created event.
type Announcement struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image"`
}
