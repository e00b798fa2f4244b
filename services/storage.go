package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"innovation-platform-api/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const thumbnailPrefix = "thumbnails/"

// UploadThumbnail writes one in-memory multipart file to object storage
// under a generated key and returns the public URL for it. The owning
// document is persisted with this URL afterwards, so a failed upload aborts
// the whole create.
func UploadThumbnail(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if config.Storage == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := thumbnailPrefix + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = config.Storage.PutObject(ctx, config.StorageBucket, key, src, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return PublicURL(key), nil
}

// DeleteThumbnail removes the stored object behind a previously returned
// public URL. Callers skip this entirely when no thumbnail was stored.
func DeleteThumbnail(ctx context.Context, thumbnailURL string) error {
	if config.Storage == nil {
		return fmt.Errorf("object storage is not configured")
	}

	key, err := ObjectKeyFromURL(thumbnailURL)
	if err != nil {
		return err
	}

	return config.Storage.RemoveObject(ctx, config.StorageBucket, key, minio.RemoveObjectOptions{})
}

// PublicURL builds the publicly addressable URL for an object key.
// STORAGE_PUBLIC_URL overrides the default endpoint/bucket form, for setups
// serving objects through a CDN or reverse proxy.
func PublicURL(key string) string {
	base := strings.TrimRight(os.Getenv("STORAGE_PUBLIC_URL"), "/")
	if base == "" {
		scheme := "https"
		if os.Getenv("STORAGE_USE_SSL") == "false" {
			scheme = "http"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, os.Getenv("STORAGE_ENDPOINT"), os.Getenv("STORAGE_BUCKET"))
	}
	return base + "/" + key
}

// ObjectKeyFromURL recovers the object key from a public URL produced by
// PublicURL.
func ObjectKeyFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(parsed.Path, "/")
	if idx := strings.Index(path, thumbnailPrefix); idx >= 0 {
		return path[idx:], nil
	}

	if path == "" {
		return "", fmt.Errorf("no object key in url %q", rawURL)
	}
	return path, nil
}
