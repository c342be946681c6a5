package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"evently/internal/status"
	"evently/monitoring"
)

// Uploader is the slice of the MinIO client this package needs. Tests
// substitute a fake.
type Uploader interface {
	PutObject(ctx context.Context, bucket string, name string, reader io.Reader, size int64, options minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicURL is the base under which uploaded objects resolve. Empty
	// means derive it from the endpoint.
	PublicURL string
}

// Client uploads event images to an S3-compatible bucket and hands back
// public URLs for the event records to reference.
type Client struct {
	uploader  Uploader
	bucket    string
	publicURL string
}

func New(cfg *Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("objstore.New: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = mc.EndpointURL().String()
	}

	return &Client{
		uploader:  mc,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// UploadImage writes the image under event_images/{epoch-millis}.jpg and
// returns its public URL. Sub-millisecond collisions are accepted; uploads
// come from a single admin.
func (c *Client) UploadImage(ctx context.Context, image io.Reader, size int64) (url string, err error) {
	start := time.Now()
	defer func() { monitoring.ObserveRequest("blob", "upload_image", start, err) }()

	key := fmt.Sprintf("event_images/%d.jpg", time.Now().UnixMilli())

	_, err = c.uploader.PutObject(ctx, c.bucket, key, image, size, minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", &status.UploadError{Err: err}
	}

	return fmt.Sprintf("%s/%s/%s", c.publicURL, c.bucket, key), nil
}
