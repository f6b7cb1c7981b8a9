// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/output"
	"github.com/awslabs/shkin/stream"
	"github.com/spf13/cobra"
)

// resumeTarget labels a listing resumed from --next-token alone.
const resumeTarget = "next-token"

// streamARN returns target when it already is an ARN and otherwise looks
// the stream up by name.
func streamARN(ctx context.Context, kds stream.KDS, target string) (*string, error) {
	if strings.HasPrefix(target, "arn:") {
		return aws.String(target), nil
	}
	out, err := kds.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{StreamName: aws.String(target)})
	if err != nil {
		return nil, err
	}
	return out.StreamDescriptionSummary.StreamARN, nil
}

func newListShardsCmd(a *app) *cobra.Command {
	var (
		ref          streamRef
		pages        pageFlags
		startShardID string
		filterType   string
		filterShard  string
		filterTime   string
		createdAt    string
	)
	c := &cobra.Command{
		Use:     "list-shards [STREAM-NAME]",
		Aliases: []string{"Get-KINShardList"},
		Short:   "List the shards of a stream",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				if pages.nextToken == "" {
					return err
				}
				t = []string{resumeTarget}
			}
			input := &kinesis.ListShardsInput{ExclusiveStartShardId: optString(startShardID)}
			if input.StreamCreationTimestamp, err = optTime(createdAt); err != nil {
				return err
			}
			ft, err := enum("shard-filter-type", filterType, types.ShardFilterType("").Values())
			if err != nil {
				return err
			}
			if ft != "" {
				input.ShardFilter = &types.ShardFilter{Type: ft, ShardId: optString(filterShard)}
				if input.ShardFilter.Timestamp, err = optTime(filterTime); err != nil {
					return err
				}
			}
			o := kinesisOp("ListShards", confirm.None, "Shards")
			o.paged = true
			return a.run(cmd, o, t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				params := *input
				if target != resumeTarget {
					params.StreamName, params.StreamARN = ref.ids(target)
				}
				return stream.ListShards(ctx, kds, &params, pages.options())
			}))
		},
	}
	ref.addFlags(c)
	addPageFlags(c, &pages)
	c.Flags().StringVar(&startShardID, "exclusive-start-shard-id", "", "list shards after this shard id")
	c.Flags().StringVar(&filterType, "shard-filter-type", "", "AFTER_SHARD_ID, AT_TRIM_HORIZON, FROM_TRIM_HORIZON, AT_LATEST, AT_TIMESTAMP or FROM_TIMESTAMP")
	c.Flags().StringVar(&filterShard, "shard-filter-shard-id", "", "shard id for AFTER_SHARD_ID")
	c.Flags().StringVar(&filterTime, "shard-filter-timestamp", "", "timestamp for AT_TIMESTAMP and FROM_TIMESTAMP")
	c.Flags().StringVar(&createdAt, "stream-creation-timestamp", "", "creation time of the stream, to tell apart streams with the same name")
	return c
}

func newListStreamsCmd(a *app) *cobra.Command {
	var (
		pages pageFlags
		start string
	)
	c := &cobra.Command{
		Use:     "list-streams",
		Aliases: []string{"Get-KINStreamList"},
		Short:   "List the streams of the account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := kinesisOp("ListStreams", confirm.None, "StreamNames")
			o.paged = true
			return a.run(cmd, o, "account", a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				return stream.ListStreams(ctx, kds, &kinesis.ListStreamsInput{ExclusiveStartStreamName: optString(start)}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	c.Flags().StringVar(&start, "exclusive-start-stream-name", "", "list streams after this name")
	return c
}

func newListStreamConsumersCmd(a *app) *cobra.Command {
	var (
		ref       streamRef
		pages     pageFlags
		createdAt string
	)
	c := &cobra.Command{
		Use:     "list-stream-consumers STREAM-NAME",
		Aliases: []string{"Get-KINStreamConsumerList"},
		Short:   "List the enhanced fan-out consumers of a stream",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			created, err := optTime(createdAt)
			if err != nil {
				return err
			}
			o := kinesisOp("ListStreamConsumers", confirm.None, "Consumers")
			o.paged = true
			return a.run(cmd, o, t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				arn, err := streamARN(ctx, kds, target)
				if err != nil {
					return nil, err
				}
				return stream.ListStreamConsumers(ctx, kds, &kinesis.ListStreamConsumersInput{
					StreamARN:               arn,
					StreamCreationTimestamp: created,
				}, pages.options())
			}))
		},
	}
	ref.addFlags(c)
	addPageFlags(c, &pages)
	c.Flags().StringVar(&createdAt, "stream-creation-timestamp", "", "creation time of the stream")
	return c
}

func newListTagsForStreamCmd(a *app) *cobra.Command {
	var (
		ref   streamRef
		pages pageFlags
		start string
	)
	c := &cobra.Command{
		Use:     "list-tags-for-stream STREAM-NAME",
		Aliases: []string{"Get-KINTagsForStream"},
		Short:   "List the tags of a stream",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			o := kinesisOp("ListTagsForStream", confirm.None, "Tags")
			o.paged = true
			return a.run(cmd, o, t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				name, arn := ref.ids(target)
				return stream.ListTags(ctx, kds, &kinesis.ListTagsForStreamInput{
					StreamName:           name,
					StreamARN:            arn,
					ExclusiveStartTagKey: optString(start),
				}, pages.options())
			}))
		},
	}
	ref.addFlags(c)
	addPageFlags(c, &pages)
	c.Flags().StringVar(&start, "exclusive-start-tag-key", "", "list tags after this key")
	return c
}

func newRegisterStreamConsumerCmd(a *app) *cobra.Command {
	var (
		ref  streamRef
		name string
		tags map[string]string
	)
	c := &cobra.Command{
		Use:     "register-stream-consumer STREAM-NAME",
		Aliases: []string{"Register-KINStreamConsumer"},
		Short:   "Register an enhanced fan-out consumer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			return a.run(cmd, kinesisOp("RegisterStreamConsumer", confirm.Medium, "Consumer"), t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				arn, err := streamARN(ctx, kds, target)
				if err != nil {
					return nil, err
				}
				return kds.RegisterStreamConsumer(ctx, &kinesis.RegisterStreamConsumerInput{
					StreamARN:    arn,
					ConsumerName: aws.String(name),
					Tags:         tags,
				})
			}))
		},
	}
	ref.addFlags(c)
	c.Flags().StringVar(&name, "consumer-name", "", "name of the consumer")
	c.Flags().StringToStringVar(&tags, "tags", nil, "consumer tags as key=value pairs")
	_ = c.MarkFlagRequired("consumer-name")
	return c
}

// consumerRef identifies a consumer either by ARN or by stream and name.
type consumerRef struct {
	stream streamRef
	name   string
	arn    string
}

func (r *consumerRef) addFlags(cmd *cobra.Command) {
	r.stream.addFlags(cmd)
	cmd.Flags().StringVar(&r.name, "consumer-name", "", "name of the consumer, together with the stream")
	cmd.Flags().StringVar(&r.arn, "consumer-arn", "", "consumer ARN, instead of stream and name")
}

func (r *consumerRef) target(args []string) (string, error) {
	if r.arn != "" {
		return r.arn, nil
	}
	t, err := r.stream.targets(args)
	if err != nil {
		return "", err
	}
	if r.name == "" {
		return "", fmt.Errorf("%w: give --consumer-name or --consumer-arn", errMissingTarget)
	}
	return t[0], nil
}

func (r *consumerRef) params(ctx context.Context, kds stream.KDS, target string) (*string, *string, *string, error) {
	if r.arn != "" {
		return nil, nil, aws.String(r.arn), nil
	}
	arn, err := streamARN(ctx, kds, target)
	if err != nil {
		return nil, nil, nil, err
	}
	return arn, aws.String(r.name), nil, nil
}

func newDescribeStreamConsumerCmd(a *app) *cobra.Command {
	var ref consumerRef
	c := &cobra.Command{
		Use:     "describe-stream-consumer [STREAM-NAME]",
		Aliases: []string{"Get-KINStreamConsumer"},
		Short:   "Describe an enhanced fan-out consumer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.target(args)
			if err != nil {
				return err
			}
			return a.run(cmd, kinesisOp("DescribeStreamConsumer", confirm.None, "ConsumerDescription"), t, a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				s, n, arn, err := ref.params(ctx, kds, target)
				if err != nil {
					return nil, err
				}
				return kds.DescribeStreamConsumer(ctx, &kinesis.DescribeStreamConsumerInput{StreamARN: s, ConsumerName: n, ConsumerARN: arn})
			}))
		},
	}
	ref.addFlags(c)
	return c
}

func newDeregisterStreamConsumerCmd(a *app) *cobra.Command {
	var ref consumerRef
	c := &cobra.Command{
		Use:     "deregister-stream-consumer [STREAM-NAME]",
		Aliases: []string{"Unregister-KINStreamConsumer"},
		Short:   "Deregister an enhanced fan-out consumer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.target(args)
			if err != nil {
				return err
			}
			return a.run(cmd, kinesisOp("DeregisterStreamConsumer", confirm.High, output.None), t, a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				s, n, arn, err := ref.params(ctx, kds, target)
				if err != nil {
					return nil, err
				}
				return kds.DeregisterStreamConsumer(ctx, &kinesis.DeregisterStreamConsumerInput{StreamARN: s, ConsumerName: n, ConsumerARN: arn})
			}))
		},
	}
	ref.addFlags(c)
	return c
}
