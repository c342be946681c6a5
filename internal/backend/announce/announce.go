package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	pubnub "github.com/pubnub/go/v7"

	"evently/internal/status"
	"evently/models"
	"evently/monitoring"
)

type Config struct {
	PublishKey   string
	SubscribeKey string
	SecretKey    string
	Channel      string
}

// Client broadcasts new-event announcements over a PubNub channel and can
// listen for announcements published by other sessions.
type Client struct {
	pn      *pubnub.PubNub
	lis     *pubnub.Listener
	channel string
}

func New(cfg *Config) *Client {
	pnCfg := pubnub.NewConfigWithUserId(pubnub.UserId(uuid.NewString()))
	pnCfg.PublishKey = cfg.PublishKey
	pnCfg.SubscribeKey = cfg.SubscribeKey
	pnCfg.SecretKey = cfg.SecretKey

	return &Client{
		pn:      pubnub.NewPubNub(pnCfg),
		lis:     pubnub.NewListener(),
		channel: cfg.Channel,
	}
}

// Announce publishes one broadcast. Best-effort: the caller logs and moves
// on, same as the push send. The ctx deadline bounds the publish call.
func (c *Client) Announce(ctx context.Context, a *models.Announcement) (err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("announce", "publish", start, err) }()

	_, _, err = c.pn.PublishWithContext(ctx).
		Channel(c.channel).
		Message(map[string]any{
			"type":     a.Type,
			"name":     a.Name,
			"location": a.Location,
			"image":    a.Image,
		}).
		Execute()
	if err != nil {
		return &status.NotifyError{Err: fmt.Errorf("announce: %w", err)}
	}
	return nil
}

// Listen subscribes to the announcement channel and invokes fn for every
// decoded announcement until ctx is done.
func (c *Client) Listen(ctx context.Context, fn func(*models.Announcement)) {
	c.pn.AddListener(c.lis)
	c.pn.Subscribe().
		Channels([]string{c.channel}).
		Execute()

	c.receive(ctx, fn)
	c.pn.UnsubscribeAll()
}

// receive drains the listener channels until ctx is done.
func (c *Client) receive(ctx context.Context, fn func(*models.Announcement)) {
	for {
		select {
		case <-ctx.Done():
			return

		case st := <-c.lis.Status:
			switch st.Category {
			case pubnub.PNConnectedCategory:
				slog.Info("connected to announcement channel", "channel", c.channel)
			case pubnub.PNReconnectedCategory:
				slog.Info("reconnected to announcement channel", "channel", c.channel)
			case pubnub.PNDisconnectedCategory:
				slog.Warn("disconnected from announcement channel", "channel", c.channel)
			}

		case msg := <-c.lis.Message:
			a, err := decode(msg.Message)
			if err != nil {
				slog.Error("dropping malformed announcement", "error", err)
				continue
			}
			fn(a)
		}
	}
}

func (c *Client) Close() {
	c.pn.UnsubscribeAll()
	c.pn.Destroy()
}

func decode(raw any) (*models.Announcement, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode: json.Marshal: %w", err)
	}
	var a models.Announcement
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("decode: json.Unmarshal: %w", err)
	}
	return &a, nil
}
