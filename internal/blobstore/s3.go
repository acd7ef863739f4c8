package blobstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store is an S3-backed bucket client. Public URLs use the path-style form
// so the bucket-path marker in them can be parsed back to an object name.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Store loads AWS configuration from the environment and returns a
// client bound to one bucket.
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to %s: %w", objectName, s.bucket, err)
	}
	return nil
}

func (s *S3Store) PublicURL(objectName string) string {
	return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, objectName)
}

func (s *S3Store) Remove(ctx context.Context, objectName string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", objectName, s.bucket, err)
	}
	return nil
}

func (s *S3Store) Bucket() string {
	return s.bucket
}
