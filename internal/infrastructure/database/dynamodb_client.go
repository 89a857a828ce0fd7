package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// NewAWSConfig loads the shared AWS configuration.
//
// With a local endpoint (DynamoDB Local, MinIO) static dummy credentials are
// used, since those emulators do not validate them but the SDK requires some.
func NewAWSConfig(ctx context.Context, region, localEndpoint string) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if localEndpoint != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// ConnectDynamoDB creates a DynamoDB client, pointing it at endpoint when set
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(cfg aws.Config, endpoint string, log *zap.Logger) *dynamodb.Client {
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Named("database.dynamodb").Info("dynamodb client initialized",
		zap.String("region", cfg.Region),
		zap.String("endpoint", endpoint),
	)
	return client
}
