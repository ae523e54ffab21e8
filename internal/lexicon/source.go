package lexicon

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Source opens a word list by path
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSource reads word lists from the local filesystem
type FileSource struct{}

// Open opens a local file
func (FileSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// S3Source reads word lists from s3://bucket/key objects
type S3Source struct {
	client s3iface.S3API
}

// NewS3Source creates an S3 source with the default AWS credential chain
func NewS3Source(region string) (*S3Source, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Source{client: s3.New(sess)}, nil
}

// NewS3SourceWithClient wraps an existing S3 client
func NewS3SourceWithClient(client s3iface.S3API) *S3Source {
	return &S3Source{client: client}
}

// Open downloads the object behind an s3:// URL
func (s *S3Source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3URL(path)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("word list %s not found: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("S3 error: %w", err)
	}
	return out.Body, nil
}

// ParseS3URL splits s3://bucket/key into its parts
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL %q: %w", raw, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("invalid S3 URL %q: expected s3://bucket/key", raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 URL %q: missing object key", raw)
	}
	return u.Host, key, nil
}

// MultiSource dispatches s3:// paths to S3 and everything else to the filesystem.
// The S3 client is created on first use.
type MultiSource struct {
	Region string

	files FileSource
	s3    Source
}

// Open opens path with the matching source
func (m *MultiSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "s3://") {
		return m.files.Open(ctx, path)
	}
	if m.s3 == nil {
		src, err := NewS3Source(m.Region)
		if err != nil {
			return nil, err
		}
		m.s3 = src
	}
	return m.s3.Open(ctx, path)
}
