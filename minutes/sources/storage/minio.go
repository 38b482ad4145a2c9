package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"minutes/minutes/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archives raw recording audio so transcripts can be
// regenerated later. The object key is stored on the meeting row.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// StoreRecording uploads the complete audio of one meeting and returns the
// object key.
func (m *MinIOClient) StoreRecording(ctx context.Context, meetingID uuid.UUID, audio []byte) (string, error) {
	key := filepath.Join("recordings", fmt.Sprintf("%s.webm", meetingID))
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(audio), int64(len(audio)),
		minio.PutObjectOptions{ContentType: "audio/webm"})
	if err != nil {
		return "", err
	}
	return key, nil
}

// GetRecording fetches an archived audio blob by key.
func (m *MinIOClient) GetRecording(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
