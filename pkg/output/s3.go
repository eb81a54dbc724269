package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when publishing is configured without a bucket
var ErrNoBucket = errors.New("s3: bucket not configured")

// S3Config holds the object storage settings, usually read from S3_* environment variables
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string // Key prefix, such as "renders/"
}

// Enabled reports whether enough is configured to publish
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// ObjectPutter is the part of the S3 API the publisher uses
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads encoded renders to a bucket
type S3Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewS3Publisher opens a session against the configured endpoint
func NewS3Publisher(config S3Config) (*S3Publisher, error) {
	if !config.Enabled() {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewS3PublisherWithClient(s3.New(sess), config.Bucket, config.Prefix), nil
}

// NewS3PublisherWithClient publishes through an existing client
func NewS3PublisherWithClient(client ObjectPutter, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key a file name is stored under
func (p *S3Publisher) Key(name string) string {
	return path.Join(p.prefix, name)
}

// Publish encodes img in the format implied by name and uploads it
func (p *S3Publisher) Publish(ctx context.Context, name string, img *renderer.Image) (string, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", format, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.Key(name)
	size := int64(buf.Len())
	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(format.ContentType()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	core.Logger().Info("uploaded render", "bucket", p.bucket, "key", key, "bytes", size)
	return key, nil
}
