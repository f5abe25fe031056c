package database

import (
	"context"
	"testing"

	appconfig "scenario_planning/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := appconfig.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "key", AWSSecretKey: "secret"}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	cfg := appconfig.Config{
		AWSRegion:        "us-east-1",
		AWSAccessKeyID:   "local",
		AWSSecretKey:     "local",
		DynamoDBEndpoint: "http://localhost:8000",
	}

	client, err := ConnectDynamoDB(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))
}
