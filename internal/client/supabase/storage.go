package supabase

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage defines the object-storage operations the client consumes: upload
// raw bytes under a key and derive the public URL of an uploaded object.
type Storage interface {
	Upload(ctx context.Context, bucket, key string, data []byte) error
	PublicURL(bucket, key string) string
}

// Seams for tests; production code never reassigns these.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// S3Storage uploads through the backend's S3-compatible storage endpoint and
// builds public URLs on the project's plain storage path.
type S3Storage struct {
	projectURL string
	client     *s3.Client
}

// NewS3Storage builds a storage client for one project. accessKey/secretKey
// are the project's storage credentials, not the anon key.
func NewS3Storage(ctx context.Context, projectURL, region, accessKey, secretKey string) (*S3Storage, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(awscredentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSuffix(projectURL, "/") + "/storage/v1/s3"
	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &S3Storage{projectURL: strings.TrimSuffix(projectURL, "/"), client: client}, nil
}

// Upload stores data under bucket/key.
func (s *S3Storage) Upload(ctx context.Context, bucket, key string, data []byte) error {
	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return err
	}
	return nil
}

// PublicURL returns the address a public-bucket object is served from.
func (s *S3Storage) PublicURL(bucket, key string) string {
	return s.projectURL + "/storage/v1/object/public/" + bucket + "/" + key
}
