// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/config"
)

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
	logger   *logrus.Logger
}

type UploadResult struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

func NewStorageService(config *config.Config, logger *logrus.Logger) *StorageService {
	service := &StorageService{config: config, logger: logger}

	if config.AWS.AccessKeyID == "" {
		// No credentials: uploads get placeholder URLs for local development
		return service
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		logger.WithError(err).Warn("failed to create AWS session, uploads fall back to placeholder URLs")
		return service
	}

	service.s3Client = s3.New(sess)
	return service
}

// Upload stores the file and returns its public metadata. Without an S3
// client it returns an ipfs:// placeholder URL so the rest of the flow
// still works.
func (s *StorageService) Upload(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if s.s3Client == nil {
		s.logger.WithField("file_name", header.Filename).Info("storing upload with placeholder URL")
		return &UploadResult{
			FileURL:  fmt.Sprintf("ipfs://mock-hash-%d", time.Now().UnixMilli()),
			FileName: header.Filename,
			FileSize: header.Size,
			FileType: contentType,
		}, nil
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := s.generateKey(header.Filename)
	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":       key,
		"file_size": len(fileBytes),
	}).Info("uploaded file to S3")

	return &UploadResult{
		FileURL:  s.getS3URL(key),
		FileName: header.Filename,
		FileSize: int64(len(fileBytes)),
		FileType: contentType,
	}, nil
}

func (s *StorageService) generateKey(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")

	return fmt.Sprintf("ip-assets/%s_%s%s", timestamp, id.String()[:8], ext)
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
