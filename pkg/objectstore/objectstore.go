package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/config"
)

// Client wraps the S3-compatible bucket holding uploaded boat-order PDFs.
// Objects are keyed by the original filename.
type Client struct {
	mc     *minio.Client
	bucket string
	logger *zap.Logger
}

// NewClient connects to the object store and ensures the bucket exists.
func NewClient(cfg *config.StorageConfig, logger *zap.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object store: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
	}

	logger.Info("object store connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return &Client{mc: mc, bucket: cfg.Bucket, logger: logger}, nil
}

// Put stores an object under the given name.
func (c *Client) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("store object %q: %w", name, err)
	}
	return nil
}

// PublicURL returns the retrieval URL for an object. The bucket is served
// with a public read policy, mirroring the hosted store's "get public URL".
func (c *Client) PublicURL(name string) string {
	u := url.URL{
		Scheme: "http",
		Host:   c.mc.EndpointURL().Host,
		Path:   fmt.Sprintf("/%s/%s", c.bucket, name),
	}
	if c.mc.EndpointURL().Scheme == "https" {
		u.Scheme = "https"
	}
	return u.String()
}
