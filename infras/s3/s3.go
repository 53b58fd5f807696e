package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"roombook/config"
	"roombook/infras/otel"
	"roombook/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName  = "file_name"
	otelAttrBucket    = "bucket"
	otelAttrDirectory = "directory"
)

// Object describes a stored object relative to its directory.
type Object struct {
	Name         string
	Size         int64
	LastModified string
}

type S3 interface {
	Enabled() bool
	UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (key string, err error)
	DownloadFile(ctx context.Context, directory, fileName string) (data []byte, err error)
	ListFiles(ctx context.Context, directory string) (objects []Object, err error)
	DeleteFile(ctx context.Context, directory, fileName string) error
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) Enabled() bool {
	return svc.Client != nil
}

func (svc *s3Impl) bucket() string {
	return svc.Config.External.S3.BucketName
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (key string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   svc.bucket(),
	})

	objectKey := path.Join(directory, fileName)
	fileReader := bytes.NewReader(fileData)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket()),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return objectKey, nil
}

func (svc *s3Impl) DownloadFile(ctx context.Context, directory, fileName string) (data []byte, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DownloadFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   svc.bucket(),
	})

	output, err := svc.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket()),
		Key:    aws.String(path.Join(directory, fileName)),
	})
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to download file from S3")

		return nil, fmt.Errorf("failed to download file from S3: %w", err)
	}
	defer output.Body.Close()

	data, err = io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	return data, nil
}

func (svc *s3Impl) ListFiles(ctx context.Context, directory string) (objects []Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ListFiles")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrDirectory: directory,
		otelAttrBucket:    svc.bucket(),
	})

	prefix := strings.TrimSuffix(directory, "/") + "/"
	paginator := s3.NewListObjectsV2Paginator(svc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(svc.bucket()),
		Prefix: aws.String(prefix),
	})

	objects = []Object{}

	for paginator.HasMorePages() {
		page, pageErr := paginator.NextPage(ctx)
		if pageErr != nil {
			err = pageErr
			log.Error().Err(err).Str("directory", directory).Msg("failed to list files from S3")

			return nil, fmt.Errorf("failed to list files from S3: %w", err)
		}

		for _, item := range page.Contents {
			object := Object{
				Name: strings.TrimPrefix(aws.ToString(item.Key), prefix),
				Size: aws.ToInt64(item.Size),
			}

			if item.LastModified != nil {
				object.LastModified = item.LastModified.UTC().Format(constant.DateFormat)
			}

			objects = append(objects, object)
		}
	}

	return objects, nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, directory, fileName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   svc.bucket(),
	})

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket()),
		Key:    aws.String(path.Join(directory, fileName)),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// New builds the S3 client. When S3 is disabled the returned value reports Enabled() == false.
func New(config *config.Config, otel otel.Otel) S3 {
	if !config.External.S3.Enable {
		log.Info().Msg("S3 backup storage disabled")

		return &s3Impl{Config: config, otel: otel}
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
