// Package uploads brokers time-boxed write access to object storage so
// that meal media never passes through the API layer itself.
package uploads

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mealsnap/mealsnap/internal/common"
	sc "github.com/mealsnap/mealsnap/internal/server/config"
	"github.com/mealsnap/mealsnap/internal/server/models"
)

// Seams for tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Broker mints upload capabilities: a fresh storage key plus a presigned
// PUT URL for that key only, valid for the configured window.
type Broker struct {
	config *sc.Config
}

func NewBroker(config *sc.Config) *Broker {
	return &Broker{config: config}
}

// NewStorageKey derives a globally unique object key for the given media
// kind: a random v4 UUID plus the kind's canonical extension.
func NewStorageKey(kind models.MediaKind) string {
	return fmt.Sprintf("%v%s", uuid.New(), kind.Ext())
}

func (b *Broker) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(b.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			b.config.S3RootUser,
			b.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(b.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// IssueUploadURL returns a fresh storage key and a presigned PUT URL that
// grants write access to that key only. The key is never reused; the URL
// expires after Config.UploadURLValidityDuration whether or not the object
// is ever written. Any storage-side failure is reported as
// common.ErrUploadUnavailable.
func (b *Broker) IssueUploadURL(ctx context.Context, kind models.MediaKind) (string, string, error) {

	presignClient, err := b.getPresignClient()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", common.ErrUploadUnavailable, err)
	}

	bucket := b.config.S3Bucket
	key := NewStorageKey(kind)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(b.config.UploadURLValidityDuration))

	if err != nil {
		return "", "", fmt.Errorf("%w: %v", common.ErrUploadUnavailable, err)
	}

	return key, req.URL, nil
}
