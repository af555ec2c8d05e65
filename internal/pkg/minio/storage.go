package minio

import (
	"Ronghua/internal/api/config"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage 上传媒体文件的对象存储
type Storage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewStorage 连接 MinIO 并确保存储桶存在
func NewStorage(cfg config.MinIOConfig) (*Storage, error) {
	endpoint, useSSL := cfg.InternalEndpoint, cfg.InternalUseSSL
	if endpoint == "" {
		endpoint, useSSL = hostOf(cfg.ExternalEndpoint)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = ensureBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}

	public, publicSSL := endpoint, useSSL
	if cfg.ExternalEndpoint != "" {
		public, publicSSL = hostOf(cfg.ExternalEndpoint)
	}
	return &Storage{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: public,
		useSSL:   publicSSL,
	}, nil
}

// hostOf 拆出地址中的协议，未写协议时按 https 处理
func hostOf(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	default:
		return endpoint, true
	}
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if exists {
		return nil
	}
	if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	log.Info("MinIO bucket created", "bucket", bucket)
	return nil
}

// Put 上传对象，返回对象名
func (s *Storage) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return info.Key, nil
}

// PublicURL 对外访问地址
func (s *Storage) PublicURL(objectName string) string {
	return PublicURL(s.endpoint, s.useSSL, s.bucket, objectName)
}

func PublicURL(endpoint string, useSSL bool, bucket, objectName string) string {
	protocol := "http"
	if useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, strings.TrimSuffix(endpoint, "/"), bucket, strings.TrimPrefix(objectName, "/"))
}
