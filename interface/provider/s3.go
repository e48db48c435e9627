package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/captainceramic/himawari-nc/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// The NOAA open-data mirrors live in us-east-1.
const himawariAwsRegion = "us-east-1"

// S3Provider implements ObjectProvider on top of the S3 API
type S3Provider struct {
	downloader *manager.Downloader
}

// Name implements ObjectProvider
func (p *S3Provider) Name() string {
	return "S3"
}

// NewS3Provider creates a new ObjectProvider for S3 buckets.
// Without credentials the client is anonymous, which is all the public NOAA
// buckets require. The client is created once and reused for every object.
func NewS3Provider(ctx context.Context, accessKeyID, secretAccessKey string) (*S3Provider, error) {
	credentialsProvider := aws.CredentialsProvider(aws.AnonymousCredentials{})
	if accessKeyID != "" {
		credentialsProvider = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentialsProvider),
		config.WithRegion(himawariAwsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("S3Provider config.LoadDefaultConfig: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	return &S3Provider{
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			d.PartSize = 10 * 1024 * 1024 // 10MB per part
		}),
	}, nil
}

// Download implements ObjectProvider
func (p *S3Provider) Download(ctx context.Context, bucket, key, localFile string) error {
	file, err := os.Create(localFile)
	if err != nil {
		return fmt.Errorf("S3Provider: failed to create file %s: %w", localFile, err)
	}
	defer file.Close()

	if _, err = p.downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return ErrObjectNotFound{bucket + "/" + key}
		}
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			switch respErr.HTTPStatusCode() {
			case 403, 404:
				// anonymous GETs of missing keys answer 403
				return ErrObjectNotFound{bucket + "/" + key}
			case 408, 429, 500, 502, 503, 504:
				return service.MakeTemporary(fmt.Errorf("S3Provider: failed to download object %s/%s: %w", bucket, key, err))
			}
		}
		return fmt.Errorf("S3Provider: failed to download object %s/%s: %w", bucket, key, err)
	}

	return nil
}
