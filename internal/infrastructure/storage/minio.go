package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// MinIOStore 对象存储
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore 创建客户端，桶不存在时自动创建
func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建存储桶失败: %w", err)
		}
	}

	return &MinIOStore{client: client, bucket: cfg.Bucket}, nil
}

// Save 上传对象，同名覆盖
func (s *MinIOStore) Save(ctx context.Context, name string, content []byte) (string, error) {
	stored, err := objectName(name)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		stored,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{ContentType: http.DetectContentType(content)},
	)
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}
	return stored, nil
}
