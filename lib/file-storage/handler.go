package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider резюме кандидатов в S3, один файл на кандидата
type Provider interface {
	UploadResume(ctx context.Context, applicantID int, file io.Reader, fileSize int64, fileName, contentType string) error
	GetResume(ctx context.Context, applicantID int) (io.ReadCloser, FileInfo, error)
	DeleteResume(ctx context.Context, applicantID int) error
	MakeBucket(ctx context.Context) error
}

type FileInfo struct {
	FileName    string
	ContentType string
	Size        int64
}

var Instance Provider

// ErrNotFound резюме не загружено
var ErrNotFound = errors.New("файл не найден")

const fileNameMeta = "Filename"

func NewHandler(s3client *minio.Client, bucketName string) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadResume(ctx context.Context, applicantID int, file io.Reader, fileSize int64, fileName, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, ResumeKey(applicantID), file, fileSize, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{fileNameMeta: url.QueryEscape(fileName)},
	})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки резюме в S3")
	}
	log.WithField("applicant_id", applicantID).
		WithField("file_size", fileSize).
		Info("резюме кандидата загружено")
	return nil
}

func (i impl) GetResume(ctx context.Context, applicantID int) (io.ReadCloser, FileInfo, error) {
	key := ResumeKey(applicantID)
	stat, err := i.s3client.StatObject(ctx, i.bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, FileInfo{}, ErrNotFound
		}
		return nil, FileInfo{}, errors.Wrap(err, "ошибка получения сведений о резюме")
	}
	object, err := i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, FileInfo{}, errors.Wrap(err, "ошибка получения резюме из S3")
	}
	info := FileInfo{
		FileName:    fmt.Sprintf("resume-%d", applicantID),
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}
	if name, ok := stat.UserMetadata[fileNameMeta]; ok && name != "" {
		if decoded, err := url.QueryUnescape(name); err == nil {
			info.FileName = decoded
		}
	}
	return object, info, nil
}

func (i impl) DeleteResume(ctx context.Context, applicantID int) error {
	err := i.s3client.RemoveObject(ctx, i.bucketName, ResumeKey(applicantID), minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления резюме из S3")
	}
	return nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}

func ResumeKey(applicantID int) string {
	return fmt.Sprintf("applicants/%d/resume", applicantID)
}
