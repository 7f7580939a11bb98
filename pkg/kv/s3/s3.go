// Package s3 implements kv.Adapter on top of Amazon S3 or S3-compatible
// object storage.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/marmos91/dittokv/pkg/kv"
)

// Config contains settings for the S3 adapter.
type Config struct {
	// Bucket is the S3 bucket name. The bucket must already exist.
	Bucket string `mapstructure:"bucket"`

	// KeyPrefix is an optional prefix applied to every object key.
	// Example: "dittokv/" results in keys like "dittokv/foo/bar".
	KeyPrefix string `mapstructure:"key_prefix"`

	// Region is the AWS region (e.g., "eu-west-1").
	Region string `mapstructure:"region"`

	// Endpoint is an optional custom endpoint for S3-compatible storage
	// (MinIO, Cubbit DS3, etc.). Leave empty for AWS S3.
	Endpoint string `mapstructure:"endpoint"`

	// AccessKeyID and SecretAccessKey are static credentials. When empty,
	// the default AWS credential chain is used.
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	// UsePathStyle forces path-style addressing, required by most
	// S3-compatible servers.
	UsePathStyle bool `mapstructure:"use_path_style"`
}

// Adapter implements kv.Adapter using S3 object storage.
//
// Path-Based Key Design:
//   - The canonical rooted path maps to the object key with the leading "/"
//     stripped, so the bucket stays human-readable and inspectable
//   - An optional key prefix namespaces all entries under one bucket
//
// S3 Characteristics:
//   - Object storage: every Get downloads the whole object
//   - DeleteObject is idempotent, matching the adapter contract directly
//   - Last-write-wins under concurrent Set to the same key
//
// Thread Safety:
// The S3 client is safe for concurrent use; the adapter holds no mutable
// state.
type Adapter struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// New creates an S3-backed adapter.
//
// This builds the client from the configured credentials and endpoint, then
// verifies bucket access with a HEAD request. The bucket must already exist.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - cfg: Bucket, credential and endpoint settings
//
// Returns:
//   - *Adapter: Initialized adapter
//   - error: If configuration is invalid or the bucket is unreachable
func New(ctx context.Context, cfg Config) (*Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access bucket %q: %w", cfg.Bucket, err)
	}

	return &Adapter{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// newClient builds an S3 client from the adapter configuration.
func newClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return client, nil
}

// objectKey maps a canonical rooted path to its S3 object key.
//
// The leading "/" is dropped (S3 keys are relative) and the optional prefix
// is prepended.
func (a *Adapter) objectKey(path string) string {
	key := strings.TrimPrefix(path, "/")

	if a.keyPrefix != "" {
		return a.keyPrefix + key
	}

	return key
}

// Metadata reports the adapter identity and capability declaration.
func (a *Adapter) Metadata() kv.Metadata {
	return kv.Metadata{
		Scheme: "s3",
		Name:   "S3",
		Capability: kv.Capability{
			Read:   true,
			Write:  true,
			Delete: true,
		},
	}
}

// Get downloads the object stored at path.
func (a *Adapter) Get(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	result, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.objectKey(path)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read object body: %w", err)
	}

	return data, true, nil
}

// Set uploads value as the object at path, replacing any previous version.
func (a *Adapter) Set(ctx context.Context, path string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.objectKey(path)),
		Body:   bytes.NewReader(value),
	})
	if err != nil {
		return fmt.Errorf("failed to write object to S3: %w", err)
	}

	return nil
}

// Delete removes the object at path. S3 DeleteObject succeeds for missing
// objects, so the operation is naturally idempotent.
func (a *Adapter) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.objectKey(path)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}
