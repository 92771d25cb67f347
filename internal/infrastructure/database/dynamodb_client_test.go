package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAWSConfig_LocalEndpoint(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), DynamoDBConfig{Endpoint: "http://localhost:8000"})
	require.NoError(t, err)
	require.Equal(t, "us-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
	require.Equal(t, "local", creds.SecretAccessKey)
}

func TestNewAWSConfig_StaticKeys(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), DynamoDBConfig{Region: "sa-east-1", AccessKeyID: "AKID", SecretAccessKey: "secret"})
	require.NoError(t, err)
	require.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "AKID", creds.AccessKeyID)
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoDBConfig{Endpoint: "http://localhost:8000"})
	require.NoError(t, err)
	require.NotNil(t, client)
	require.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
