package database

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	DefaultSnapshotsTable    = "payment_snapshots"
	DefaultTransactionsTable = "payment_transactions"
)

// DynamoDBConfig describes where payment snapshots are stored.
type DynamoDBConfig struct {
	Region            string
	AccessKeyID       string
	SecretAccessKey   string
	Endpoint          string
	SnapshotsTable    string
	TransactionsTable string
	Enabled           bool
}

// DynamoDBConfigFromEnv reads the DynamoDB settings.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - PAYMENT_SNAPSHOTS_TABLE (default: payment_snapshots)
//   - PAYMENT_TRANSACTIONS_TABLE (default: payment_transactions)
//   - SNAPSHOTS_ENABLED (default: true)
func DynamoDBConfigFromEnv() DynamoDBConfig {
	enabled := true
	if raw := strings.TrimSpace(os.Getenv("SNAPSHOTS_ENABLED")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			enabled = v
		}
	}
	return DynamoDBConfig{
		Region:            getenvDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:          os.Getenv("DYNAMODB_ENDPOINT"),
		SnapshotsTable:    getenvDefault("PAYMENT_SNAPSHOTS_TABLE", DefaultSnapshotsTable),
		TransactionsTable: getenvDefault("PAYMENT_TRANSACTIONS_TABLE", DefaultTransactionsTable),
		Enabled:           enabled,
	}
}

// ConnectDynamoDB creates a DynamoDB client using environment variables.
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, DynamoDBConfig, error) {
	cfg := DynamoDBConfigFromEnv()
	client, err := NewDynamoDBClient(ctx, cfg)
	if err != nil {
		log.Printf("[payment][database] failed to create dynamodb client err=%v", err)
		return nil, cfg, err
	}
	return client, cfg, nil
}

func NewDynamoDBClient(ctx context.Context, cfg DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var optFns []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	log.Printf("[payment][database] dynamodb client initialized region=%s endpoint=%q", cfg.Region, cfg.Endpoint)
	return dynamodb.NewFromConfig(awsCfg, optFns...), nil
}

func newAWSConfig(ctx context.Context, cfg DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
