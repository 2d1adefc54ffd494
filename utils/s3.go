package utils

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/aromabeans/coffee-feedback/config"
)

// FrameArchive stores captured emotion frames in S3 so the shopkeeper can
// audit misclassified detections later.
type FrameArchive struct {
	client *s3.Client
	bucket string
}

// NewFrameArchive initializes the S3 client for the configured bucket.
func NewFrameArchive(ctx context.Context) (*FrameArchive, error) {
	if appConfig.AWSBucketName == "" {
		return nil, fmt.Errorf("AWS_BUCKET_NAME is not set")
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(appConfig.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &FrameArchive{
		client: s3.NewFromConfig(cfg),
		bucket: appConfig.AWSBucketName,
	}, nil
}

// SaveFrame uploads a JPEG frame under the given object key.
func (a *FrameArchive) SaveFrame(ctx context.Context, objectKey string, data []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload frame to S3: %w", err)
	}
	return nil
}
