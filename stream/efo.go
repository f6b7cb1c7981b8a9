// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package stream

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
)

const consumerPollInterval = time.Second * 5

// EFO is used to reliably create and delete
// an EFO consumer for subscribing to shards.
type EFO struct {
	stream       string
	consumerName string
	kds          KDS
	pollInterval time.Duration
}

func NewEFO(stream, consumerName string, kds KDS) *EFO {
	return &EFO{
		stream:       stream,
		consumerName: consumerName,
		kds:          kds,
		pollInterval: consumerPollInterval,
	}
}

// EnsureConsumer returns the stream ARN and the ARN of an ACTIVE consumer,
// registering the consumer when it does not exist yet.
func (e *EFO) EnsureConsumer(ctx context.Context) (*string, *string, error) {
	stream, err := e.kds.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{
		StreamName: &e.stream,
	})
	if err != nil {
		return nil, nil, err
	}
	streamARN := stream.StreamDescriptionSummary.StreamARN
	for {
		consumer, err := e.kds.DescribeStreamConsumer(ctx, &kinesis.DescribeStreamConsumerInput{
			ConsumerName: aws.String(e.consumerName),
			StreamARN:    streamARN,
		})
		if err != nil {
			var rnf *types.ResourceNotFoundException
			if !errors.As(err, &rnf) {
				return nil, nil, err
			}
			_, err := e.kds.RegisterStreamConsumer(ctx, &kinesis.RegisterStreamConsumerInput{
				ConsumerName: aws.String(e.consumerName),
				StreamARN:    streamARN,
			})
			// Another reader may have registered the same name in between.
			var riu *types.ResourceInUseException
			if err != nil && !errors.As(err, &riu) {
				return nil, nil, err
			}
		} else if consumer.ConsumerDescription.ConsumerStatus == types.ConsumerStatusActive {
			return streamARN, consumer.ConsumerDescription.ConsumerARN, nil
		}
		// Consumers cannot serve subscriptions until they are ACTIVE.
		select {
		case <-time.After(e.pollInterval):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}
}

func (e *EFO) DeregisterConsumer(ctx context.Context, streamArn, consumerArn *string) error {
	_, err := e.kds.DeregisterStreamConsumer(ctx, &kinesis.DeregisterStreamConsumerInput{
		StreamARN:   streamArn,
		ConsumerARN: consumerArn,
	})
	return err
}
