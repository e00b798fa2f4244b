package config

import (
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage is the S3-compatible object storage client used for thumbnails.
// It stays nil when storage is not configured; upload endpoints then fail
// with a server error instead of the whole API refusing to start.
var Storage *minio.Client

// StorageBucket is the bucket thumbnails are written to.
var StorageBucket string

func InitStorage() {
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	accessKey := os.Getenv("STORAGE_ACCESS_KEY")
	secretKey := os.Getenv("STORAGE_SECRET_KEY")
	StorageBucket = os.Getenv("STORAGE_BUCKET")

	if endpoint == "" || StorageBucket == "" {
		log.Println("Object storage not configured, thumbnail uploads disabled")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: os.Getenv("STORAGE_USE_SSL") != "false",
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize object storage client: %v", err)
		return
	}

	Storage = client
	log.Println("Object storage client initialized")
}
