package employee

import (
	"context"
	"io"
	"os"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peoplelens/attritiond/internal/app/appconfig"
)

// Source yields the bytes of the employee table.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

func NewSource(conf *appconfig.Config) Source {
	loc := conf.DatasetURI
	if loc.Scheme == appconfig.SchemeS3 {
		return &S3Source{
			Bucket:   loc.Bucket,
			Key:      loc.Key,
			Attempts: conf.DatasetLoadRetries,
			conf:     conf,
		}
	}
	return FileSource(loc.Path)
}

// FileSource reads the table from the local filesystem.
type FileSource string

func (f FileSource) Fetch(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

func (f FileSource) String() string {
	return string(f)
}

// S3Source fetches the table from an S3 object once, retrying transient failures.
type S3Source struct {
	Bucket   string
	Key      string
	Attempts uint

	// Client is created from the default AWS credential chain when nil.
	Client *s3.Client

	conf *appconfig.Config
}

func (s *S3Source) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}

func (s *S3Source) client(ctx context.Context) (*s3.Client, error) {
	if s.Client != nil {
		return s.Client, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if s.conf != nil {
		if s.conf.DatasetS3Region != "" {
			opts = append(opts, awsconfig.WithRegion(s.conf.DatasetS3Region))
		}
		if s.conf.DatasetS3AccessKeyID != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(s.conf.DatasetS3AccessKeyID, s.conf.DatasetS3SecretAccessKey, ""),
			))
		}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	s.Client = s3.NewFromConfig(cfg)
	return s.Client, nil
}

func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	attempts := s.Attempts
	if attempts == 0 {
		attempts = 1
	}

	var body []byte
	err = retry.Do(
		func() error {
			out, err := client.GetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(s.Bucket),
				Key:    aws.String(s.Key),
			})
			if err != nil {
				return err
			}
			defer out.Body.Close()

			body, err = io.ReadAll(out.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "employee.source.retry").
				Err(err).
				Uint("attempt", n+1).
				Str("source", s.String()).
				Msg("retrying dataset fetch")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "get object %s", s.String())
	}
	return body, nil
}

func retryable(err error) bool {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return false
		}
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
