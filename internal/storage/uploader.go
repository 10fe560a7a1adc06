// Package storage uploads shipment documents to a cloud bucket and returns
// the public URL the record's attachment fields reference.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type Uploader struct {
	client *gcs.Client
	bucket string
}

// New returns nil when no bucket is configured; the documents endpoint is
// then unavailable.
func New(ctx context.Context, bucket, credentialsJSON string) (*Uploader, error) {
	if bucket == "" {
		return nil, nil
	}
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

func (u *Uploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	name := fmt.Sprintf("documenti/%s/%s-%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString()[:8],
		sanitize(filename),
	)
	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, name), nil
}

func sanitize(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "documento"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
