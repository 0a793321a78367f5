package initializers

import (
	"context"
	"recruitment-dashboard/config"
	s3client "recruitment-dashboard/s3"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitS3 при выключенном или недоступном хранилище ссылки на резюме ведут на /uploads
func InitS3(ctx context.Context) s3client.Provider {
	if config.Conf.S3.Enabled == nil || !*config.Conf.S3.Enabled {
		return nil
	}
	client, err := s3client.NewClient(s3client.Options{
		Endpoint:        config.Conf.S3.Endpoint,
		AccessKeyID:     config.Conf.S3.AccessKeyID,
		SecretAccessKey: config.Conf.S3.SecretAccessKey,
		Region:          config.Conf.S3.Region,
		BucketName:      config.Conf.S3.BucketName,
		UseSSL:          config.Conf.S3.UseSSL != nil && *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return nil
	}

	// Проверка соединения
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(checkCtx)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось")
	} else if !exists {
		log.WithField("bucket", config.Conf.S3.BucketName).Warn("бакет S3 не найден")
	}
	log.Info("S3 клиент успешно инициализирован")
	return client
}
