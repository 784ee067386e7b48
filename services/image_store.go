package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/config"
)

// ImageStore uploads article, story and team images to an S3 bucket and hands
// back the public URL to persist on the entity. When S3_BUCKET is unset the
// store is disabled and uploads fail with ErrUploadsDisabled.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var ErrUploadsDisabled = fmt.Errorf("image uploads are not configured")

func NewImageStore(ctx context.Context, cfg map[string]string) *ImageStore {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		log.Info().Msg("S3_BUCKET not set, image uploads disabled")
		return &ImageStore{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load AWS config, image uploads disabled")
		return &ImageStore{}
	}

	region := awsCfg.Region
	if region == "" {
		region = "us-east-1"
	}
	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL",
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region))

	return &ImageStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Enabled reports whether a bucket is configured
func (s *ImageStore) Enabled() bool {
	return s.client != nil
}

// Upload stores the image under a generated key and returns its public URL
func (s *ImageStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if !s.Enabled() {
		return "", ErrUploadsDisabled
	}

	key := fmt.Sprintf("uploads/%s-%s", uuid.New().String(), sanitizeFilename(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
