package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/stream/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnsureConsumerWhenConsumerIsActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	streamName := uuid.NewString()
	streamARN := "arn:aws:kinesis:us-east-1:123456789012:stream/" + streamName
	consumerARN := streamARN + "/consumer/shkin:1"
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DescribeStreamSummary(ctx, gomock.Any()).
		Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: &streamARN}}, nil)
	kds.
		EXPECT().
		DescribeStreamConsumer(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *kinesis.DescribeStreamConsumerInput, optFns ...func(*kinesis.Options)) (*kinesis.DescribeStreamConsumerOutput, error) {
			assert.Equal(t, "shkin", *input.ConsumerName)
			assert.Equal(t, streamARN, *input.StreamARN)
			return &kinesis.DescribeStreamConsumerOutput{ConsumerDescription: &types.ConsumerDescription{
				ConsumerARN:    &consumerARN,
				ConsumerStatus: types.ConsumerStatusActive,
			}}, nil
		})
	efo := NewEFO(streamName, "shkin", kds)

	// Act
	s, c, err := efo.EnsureConsumer(ctx)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, streamARN, *s)
	assert.Equal(t, consumerARN, *c)
}

func TestEnsureConsumerRegistersMissingConsumer(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	streamARN := uuid.NewString()
	consumerARN := uuid.NewString()
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DescribeStreamSummary(ctx, gomock.Any()).
		Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: &streamARN}}, nil)
	gomock.InOrder(
		kds.
			EXPECT().
			DescribeStreamConsumer(ctx, gomock.Any()).
			Return(nil, &types.ResourceNotFoundException{Message: aws.String("not found")}),
		kds.
			EXPECT().
			RegisterStreamConsumer(ctx, gomock.Any()).
			Return(&kinesis.RegisterStreamConsumerOutput{}, nil),
		kds.
			EXPECT().
			DescribeStreamConsumer(ctx, gomock.Any()).
			Return(&kinesis.DescribeStreamConsumerOutput{ConsumerDescription: &types.ConsumerDescription{ConsumerStatus: types.ConsumerStatusCreating}}, nil),
		kds.
			EXPECT().
			DescribeStreamConsumer(ctx, gomock.Any()).
			Return(&kinesis.DescribeStreamConsumerOutput{ConsumerDescription: &types.ConsumerDescription{
				ConsumerARN:    &consumerARN,
				ConsumerStatus: types.ConsumerStatusActive,
			}}, nil),
	)
	efo := NewEFO("orders", "shkin", kds)
	efo.pollInterval = time.Millisecond

	// Act
	_, c, err := efo.EnsureConsumer(ctx)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, consumerARN, *c)
}

func TestEnsureConsumerToleratesConcurrentRegistration(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	streamARN := uuid.NewString()
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DescribeStreamSummary(ctx, gomock.Any()).
		Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: &streamARN}}, nil)
	gomock.InOrder(
		kds.
			EXPECT().
			DescribeStreamConsumer(ctx, gomock.Any()).
			Return(nil, &types.ResourceNotFoundException{}),
		kds.
			EXPECT().
			RegisterStreamConsumer(ctx, gomock.Any()).
			Return(nil, &types.ResourceInUseException{}),
		kds.
			EXPECT().
			DescribeStreamConsumer(ctx, gomock.Any()).
			Return(&kinesis.DescribeStreamConsumerOutput{ConsumerDescription: &types.ConsumerDescription{
				ConsumerARN:    aws.String("c"),
				ConsumerStatus: types.ConsumerStatusActive,
			}}, nil),
	)
	efo := NewEFO("orders", "shkin", kds)
	efo.pollInterval = time.Millisecond

	// Act
	_, c, err := efo.EnsureConsumer(ctx)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "c", *c)
}

func TestEnsureConsumerWhenDescribeFails(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	e := errors.New("failed")
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DescribeStreamSummary(ctx, gomock.Any()).
		Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: aws.String("s")}}, nil)
	kds.
		EXPECT().
		DescribeStreamConsumer(ctx, gomock.Any()).
		Return(nil, e)
	efo := NewEFO("orders", "shkin", kds)

	// Act
	s, c, err := efo.EnsureConsumer(ctx)

	// Assert
	assert.Nil(t, s)
	assert.Nil(t, c)
	assert.Equal(t, e, err)
}

func TestEnsureConsumerStopsWhenCancelled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DescribeStreamSummary(ctx, gomock.Any()).
		Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: aws.String("s")}}, nil)
	kds.
		EXPECT().
		DescribeStreamConsumer(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *kinesis.DescribeStreamConsumerInput, optFns ...func(*kinesis.Options)) (*kinesis.DescribeStreamConsumerOutput, error) {
			cancel()
			return &kinesis.DescribeStreamConsumerOutput{ConsumerDescription: &types.ConsumerDescription{ConsumerStatus: types.ConsumerStatusCreating}}, nil
		})
	efo := NewEFO("orders", "shkin", kds)

	// Act
	_, _, err := efo.EnsureConsumer(ctx)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeregisterConsumer(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	kds := mocks.NewMockKDS(ctrl)
	kds.
		EXPECT().
		DeregisterStreamConsumer(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *kinesis.DeregisterStreamConsumerInput, optFns ...func(*kinesis.Options)) (*kinesis.DeregisterStreamConsumerOutput, error) {
			assert.Equal(t, "s", *input.StreamARN)
			assert.Equal(t, "c", *input.ConsumerARN)
			return &kinesis.DeregisterStreamConsumerOutput{}, nil
		})
	efo := NewEFO("orders", "shkin", kds)

	// Act
	err := efo.DeregisterConsumer(ctx, aws.String("s"), aws.String("c"))

	// Assert
	assert.NoError(t, err)
}
