package s3client

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Provider хранилище файлов резюме. Сами файлы кладет backend, здесь только чтение.
type Provider interface {
	PresignedGet(ctx context.Context, objectName string, ttl time.Duration) (string, error)
	BucketExists(ctx context.Context) (bool, error)
}

type Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	UseSSL          bool
}

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func NewClient(opts Options) (Provider, error) {
	if opts.BucketName == "" {
		return nil, errors.New("не указан bucket для резюме")
	}
	// регион задается явно, иначе presign ходит в хранилище за location бакета
	minioClient, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента S3")
	}
	return &s3client{minioClient: minioClient, bucketName: opts.BucketName}, nil
}

func (s s3client) PresignedGet(ctx context.Context, objectName string, ttl time.Duration) (string, error) {
	u, err := s.minioClient.PresignedGetObject(ctx, s.bucketName, objectName, ttl, url.Values{})
	if err != nil {
		return "", errors.Wrapf(err, "ошибка формирования ссылки на объект %s", objectName)
	}
	return u.String(), nil
}

func (s s3client) BucketExists(ctx context.Context) (bool, error) {
	return s.minioClient.BucketExists(ctx, s.bucketName)
}
