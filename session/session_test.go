package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	smithy "github.com/aws/smithy-go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaderFor(t *testing.T, region string, captured *config.LoadOptions, calls *int) func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
	return func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		*calls++
		for _, fn := range optFns {
			require.NoError(t, fn(captured))
		}
		r := captured.Region
		if r == "" {
			r = region
		}
		return aws.Config{Region: r}, nil
	}
}

func TestConfigAppliesSettings(t *testing.T) {
	// Arrange
	var lo config.LoadOptions
	calls := 0
	logger := log.New()
	logger.SetLevel(log.DebugLevel)
	s := New(Settings{
		Region:      "eu-west-1",
		Profile:     "ops",
		AccessKey:   "AKID",
		SecretKey:   "SECRET",
		MaxAttempts: 7,
		Logger:      logger,
	})
	s.load = loaderFor(t, "", &lo, &calls)

	// Act
	cfg, err := s.Config(context.TODO())
	_, err2 := s.Config(context.TODO())

	// Assert
	require.NoError(t, err)
	require.NoError(t, err2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "ops", lo.SharedConfigProfile)
	assert.Equal(t, 7, lo.RetryMaxAttempts)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
	require.NotNil(t, lo.ClientLogMode)
	assert.True(t, lo.ClientLogMode.IsRetries())
	assert.NotNil(t, lo.Logger)
}

func TestConfigSkipsStaticCredentialsWithoutSecret(t *testing.T) {
	var lo config.LoadOptions
	calls := 0
	s := New(Settings{AccessKey: "AKID"})
	s.load = loaderFor(t, "us-east-1", &lo, &calls)

	_, err := s.Config(context.TODO())

	require.NoError(t, err)
	assert.Nil(t, lo.Credentials)
	assert.Equal(t, "us-east-1", s.Region())
}

func TestConfigRequiresRegion(t *testing.T) {
	var lo config.LoadOptions
	calls := 0
	s := New(Settings{})
	s.load = loaderFor(t, "", &lo, &calls)

	_, err := s.Config(context.TODO())

	assert.ErrorIs(t, err, ErrNoRegion)
}

func TestClientsShareOneConfig(t *testing.T) {
	var lo config.LoadOptions
	calls := 0
	s := New(Settings{Region: "us-west-2", EndpointURL: "http://localhost:4566"})
	s.load = loaderFor(t, "", &lo, &calls)

	kds, err := s.Kinesis(context.TODO())
	require.NoError(t, err)
	sh, err := s.SecurityHub(context.TODO())
	require.NoError(t, err)

	assert.NotNil(t, kds)
	assert.NotNil(t, sh)
	assert.Equal(t, 1, calls)
}

func TestFriendlyError(t *testing.T) {
	dns := &net.DNSError{Err: "no such host", Name: "kinesis.us-eest-1.amazonaws.com", IsNotFound: true}
	notFound := &types.ResourceNotFoundException{Message: aws.String("Stream orders not found")}
	opErr := &smithy.OperationError{ServiceID: "Kinesis", OperationName: "DescribeStream", Err: notFound}
	plain := errors.New("boom")

	t.Run("name resolution failures", func(t *testing.T) {
		err := FriendlyError(fmt.Errorf("send request: %w", dns), "us-eest-1")

		var re *ResolveError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "kinesis.us-eest-1.amazonaws.com", re.Host)
		assert.Contains(t, err.Error(), `check --region ("us-eest-1")`)
		assert.ErrorIs(t, err, dns)
	})

	t.Run("api errors", func(t *testing.T) {
		err := FriendlyError(opErr, "us-east-1")

		assert.Equal(t, "DescribeStream: ResourceNotFoundException: Stream orders not found", err.Error())
		var rnf *types.ResourceNotFoundException
		assert.ErrorAs(t, err, &rnf)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		assert.Same(t, plain, FriendlyError(plain, "us-east-1"))
		assert.NoError(t, FriendlyError(nil, "us-east-1"))
	})
}
