package announce

import (
	"context"
	"testing"
	"time"

	pubnub "github.com/pubnub/go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evently/internal/status"
	"evently/models"
)

func newTestClient() *Client {
	return New(&Config{Channel: "event-announcements"})
}

func TestReceive(t *testing.T) {
	c := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *models.Announcement, 4)
	done := make(chan struct{})
	go func() {
		c.receive(ctx, func(a *models.Announcement) { got <- a })
		close(done)
	}()

	// Status events and malformed payloads are logged and skipped; the
	// loop keeps delivering what follows.
	c.lis.Status <- &pubnub.PNStatus{Category: pubnub.PNConnectedCategory}
	c.lis.Message <- &pubnub.PNMessage{Message: "not an announcement"}
	c.lis.Message <- &pubnub.PNMessage{Message: map[string]interface{}{
		"type":     "new_event",
		"name":     "Gala",
		"location": "Hall",
		"image":    "http://img/a.jpg",
	}}

	select {
	case a := <-got:
		assert.Equal(t, &models.Announcement{
			Type:     "new_event",
			Name:     "Gala",
			Location: "Hall",
			Image:    "http://img/a.jpg",
		}, a)
	case <-time.After(2 * time.Second):
		t.Fatal("announcement was not delivered")
	}
	assert.Empty(t, got)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("receive did not stop on context cancel")
	}
}

func TestAnnounce_HonorsContext(t *testing.T) {
	c := New(&Config{
		PublishKey:   "demo",
		SubscribeKey: "demo",
		Channel:      "event-announcements",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Announce(ctx, &models.Announcement{Type: "new_event", Name: "Gala"})

	require.Error(t, err)
	var notifyErr *status.NotifyError
	require.ErrorAs(t, err, &notifyErr)
}

func TestDecode(t *testing.T) {
	a, err := decode(map[string]interface{}{
		"type":     "new_event",
		"name":     "Gala",
		"location": "Hall",
		"image":    "http://img/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gala", a.Name)
	assert.Equal(t, "Hall", a.Location)

	_, err = decode("not an announcement")
	require.Error(t, err)
}
