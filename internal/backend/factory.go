package backend

import (
	"fmt"

	"evently/config"
	"evently/internal/backend/announce"
	"evently/internal/backend/objstore"
	"evently/internal/backend/onesignal"
	"evently/internal/backend/pb"
)

// Clients bundles the four external collaborators plus the realtime
// channel. Screens receive this set instead of reaching for globals, so
// tests can substitute fakes for any of them.
type Clients struct {
	Identity Identity
	Store    Store
	Blob     Blob
	Push     Notifier
	Announce Announcer
}

// NewClients wires the concrete providers from config. The PocketBase
// client backs both Identity and Store so they share one session.
func NewClients(cfg *config.Config) (*Clients, error) {
	pbClient := pb.New(cfg.BackendURL, cfg.RequestTimeout)

	blob, err := objstore.New(&objstore.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		PublicURL: cfg.MinioPublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("NewClients: %w", err)
	}

	push := onesignal.New(&onesignal.Config{
		BaseURL: cfg.OneSignalURL,
		AppID:   cfg.OneSignalAppID,
		APIKey:  cfg.OneSignalAPIKey,
	}, cfg.RequestTimeout)

	announcer := announce.New(&announce.Config{
		PublishKey:   cfg.PubNubPublishKey,
		SubscribeKey: cfg.PubNubSubscribeKey,
		SecretKey:    cfg.PubNubSecretKey,
		Channel:      cfg.PubNubChannel,
	})

	return &Clients{
		Identity: pbClient,
		Store:    pbClient,
		Blob:     blob,
		Push:     push,
		Announce: announcer,
	}, nil
}
