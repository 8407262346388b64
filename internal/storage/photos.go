// Package storage загружает фотографии-доказательства в S3-совместимое хранилище.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/shenikar/systemfailed/internal/models"
)

type MinioPhotoStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioPhotoStore создаёт клиента хранилища. publicBaseURL - адрес, по которому объекты доступны публично.
func NewMinioPhotoStore(endpoint, accessKey, secretKey, region, bucket, publicBaseURL string, secure bool) (*MinioPhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       secure,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &MinioPhotoStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// EnsureBucket создаёт бакет, если его ещё нет
func (s *MinioPhotoStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Upload сохраняет фото под случайным именем и возвращает публичную ссылку
func (s *MinioPhotoStore) Upload(ctx context.Context, photo *models.Photo) (string, error) {
	objectName := ObjectName(photo.Name)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, photo.Body, photo.Size, minio.PutObjectOptions{
		ContentType: photo.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload evidence photo: %w", err)
	}
	return s.PublicURL(objectName), nil
}

// PublicURL возвращает публичный адрес объекта в бакете
func (s *MinioPhotoStore) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectName)
}

// ObjectName - uuid с расширением исходного файла
func ObjectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return uuid.NewString() + ext
}
