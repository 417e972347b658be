package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamoDBConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT", "PAYMENT_SNAPSHOTS_TABLE", "PAYMENT_TRANSACTIONS_TABLE", "SNAPSHOTS_ENABLED"} {
			t.Setenv(key, "")
		}

		cfg := DynamoDBConfigFromEnv()
		assert.Equal(t, "us-east-1", cfg.Region)
		assert.Equal(t, "local", cfg.AccessKeyID)
		assert.Equal(t, DefaultSnapshotsTable, cfg.SnapshotsTable)
		assert.Equal(t, DefaultTransactionsTable, cfg.TransactionsTable)
		assert.True(t, cfg.Enabled)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
		t.Setenv("PAYMENT_SNAPSHOTS_TABLE", "snaps")
		t.Setenv("SNAPSHOTS_ENABLED", "false")

		cfg := DynamoDBConfigFromEnv()
		assert.Equal(t, "sa-east-1", cfg.Region)
		assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
		assert.Equal(t, "snaps", cfg.SnapshotsTable)
		assert.False(t, cfg.Enabled)
	})
}

func TestNewDynamoDBClient_Endpoint(t *testing.T) {
	client, err := NewDynamoDBClient(context.Background(), DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))
	assert.Equal(t, "us-east-1", client.Options().Region)
}
