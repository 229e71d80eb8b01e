package infra

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/feedhub/feedhub-service/config"
	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Endpoint string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, false)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: false,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Admin:    madminClient,
		Client:   minioClient,
		Endpoint: endpoint,
	}

	if err := client.EnsureBucket(context.Background(), cfg.Minio.UploadBucket); err != nil {
		panic(fmt.Sprintf("Failed to ensure upload bucket: %v", err))
	}

	log.Println("Connected to MinIO:", endpoint)

	return client
}

// EnsureBucket creates the bucket if it does not exist yet and attaches a
// public download policy so stored media can be served directly.
func (m *MinioClient) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := m.Client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := m.Client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", bucket, err)
	}

	policy := fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}
	]
}`, bucket)

	if err := m.Client.SetBucketPolicy(ctx, bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy for %q: %w", bucket, err)
	}

	return nil
}

func (m *MinioClient) PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.Client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store object %q: %w", objectName, err)
	}
	return nil
}

func (m *MinioClient) GetObject(ctx context.Context, bucket, objectName string) (*minio.Object, error) {
	obj, err := m.Client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object %q: %w", objectName, err)
	}
	return obj, nil
}

func (m *MinioClient) RemoveObject(ctx context.Context, bucket, objectName string) error {
	err := m.Client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %q: %w", objectName, err)
	}
	return nil
}

// ServerHealth probes the MinIO deployment through the admin API.
func (m *MinioClient) ServerHealth(ctx context.Context) (string, error) {
	info, err := m.Admin.ServerInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch MinIO server info: %w", err)
	}
	return info.Mode, nil
}
