package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	filestorage "recruitment-desk-backend/lib/file-storage"
)

// InitS3 без S3_ENDPOINT загрузка резюме недоступна, остальное работает
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, загрузка резюме недоступна")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
	err = filestorage.Instance.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет для резюме не создан")
	}
	log.Info("S3 клиент успешно инициализирован")
}
