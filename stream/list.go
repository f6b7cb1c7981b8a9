// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package stream

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/paginate"
)

// Largest page sizes accepted by the service.
const (
	MaxListShardsResults          int32 = 10000
	MaxListStreamsResults         int32 = 10000
	MaxListStreamConsumersResults int32 = 10000
	MaxDescribeStreamShards       int32 = 10000
	MaxListTagsResults            int32 = 50
)

// ListShards lists the shards of a stream. Once a NextToken is in play the
// stream identifier and filters are no longer sent, as the service rejects
// the combination.
func ListShards(ctx context.Context, kds KDS, input *kinesis.ListShardsInput, opts paginate.Options) (*kinesis.ListShardsOutput, error) {
	r, err := paginate.Collect(ctx, opts, MaxListShardsResults, func(ctx context.Context, token *string, size *int32) (paginate.Page[types.Shard], error) {
		params := *input
		params.MaxResults = size
		if token != nil {
			params = kinesis.ListShardsInput{
				NextToken:  token,
				MaxResults: size,
			}
		}
		lso, err := kds.ListShards(ctx, &params)
		if err != nil {
			return paginate.Page[types.Shard]{}, err
		}
		return paginate.Page[types.Shard]{Items: lso.Shards, NextToken: lso.NextToken}, nil
	})
	if err != nil {
		return nil, err
	}
	return &kinesis.ListShardsOutput{Shards: r.Items, NextToken: r.NextToken}, nil
}

type streamEntry struct {
	name    string
	summary *types.StreamSummary
}

// ListStreams lists stream names and, where the service returns them,
// stream summaries.
func ListStreams(ctx context.Context, kds KDS, input *kinesis.ListStreamsInput, opts paginate.Options) (*kinesis.ListStreamsOutput, error) {
	r, err := paginate.Collect(ctx, opts, MaxListStreamsResults, func(ctx context.Context, token *string, size *int32) (paginate.Page[streamEntry], error) {
		params := *input
		params.Limit = size
		params.NextToken = token
		if token != nil {
			params.ExclusiveStartStreamName = nil
		}
		lso, err := kds.ListStreams(ctx, &params)
		if err != nil {
			return paginate.Page[streamEntry]{}, err
		}
		entries := make([]streamEntry, 0, len(lso.StreamNames))
		for i, name := range lso.StreamNames {
			e := streamEntry{name: name}
			if i < len(lso.StreamSummaries) {
				e.summary = &lso.StreamSummaries[i]
			}
			entries = append(entries, e)
		}
		return paginate.Page[streamEntry]{Items: entries, NextToken: lso.NextToken}, nil
	})
	if err != nil {
		return nil, err
	}
	out := &kinesis.ListStreamsOutput{
		StreamNames:    make([]string, 0, len(r.Items)),
		HasMoreStreams: aws.Bool(r.NextToken != nil),
		NextToken:      r.NextToken,
	}
	for _, e := range r.Items {
		out.StreamNames = append(out.StreamNames, e.name)
		if e.summary != nil {
			out.StreamSummaries = append(out.StreamSummaries, *e.summary)
		}
	}
	return out, nil
}

// ListStreamConsumers lists the enhanced fan-out consumers of a stream.
func ListStreamConsumers(ctx context.Context, kds KDS, input *kinesis.ListStreamConsumersInput, opts paginate.Options) (*kinesis.ListStreamConsumersOutput, error) {
	r, err := paginate.Collect(ctx, opts, MaxListStreamConsumersResults, func(ctx context.Context, token *string, size *int32) (paginate.Page[types.Consumer], error) {
		params := *input
		params.MaxResults = size
		params.NextToken = token
		if token != nil {
			params.StreamCreationTimestamp = nil
		}
		lso, err := kds.ListStreamConsumers(ctx, &params)
		if err != nil {
			return paginate.Page[types.Consumer]{}, err
		}
		return paginate.Page[types.Consumer]{Items: lso.Consumers, NextToken: lso.NextToken}, nil
	})
	if err != nil {
		return nil, err
	}
	return &kinesis.ListStreamConsumersOutput{Consumers: r.Items, NextToken: r.NextToken}, nil
}

// DescribeStreamResult is a stream description with every shard collected.
// NextToken is the shard ID to resume from when the listing was cut short.
type DescribeStreamResult struct {
	StreamDescription *types.StreamDescription
	NextToken         *string
}

// DescribeStream describes a stream, following ExclusiveStartShardId until
// HasMoreShards is false.
func DescribeStream(ctx context.Context, kds KDS, input *kinesis.DescribeStreamInput, opts paginate.Options) (*DescribeStreamResult, error) {
	var description *types.StreamDescription
	if opts.NextToken == "" && input.ExclusiveStartShardId != nil {
		opts.NextToken = *input.ExclusiveStartShardId
	}
	r, err := paginate.Collect(ctx, opts, MaxDescribeStreamShards, func(ctx context.Context, token *string, size *int32) (paginate.Page[types.Shard], error) {
		params := *input
		params.Limit = size
		params.ExclusiveStartShardId = token
		dso, err := kds.DescribeStream(ctx, &params)
		if err != nil {
			return paginate.Page[types.Shard]{}, err
		}
		if dso.StreamDescription == nil {
			return paginate.Page[types.Shard]{}, nil
		}
		if description == nil {
			d := *dso.StreamDescription
			description = &d
		}
		shards := dso.StreamDescription.Shards
		page := paginate.Page[types.Shard]{Items: shards}
		if aws.ToBool(dso.StreamDescription.HasMoreShards) && len(shards) > 0 {
			page.NextToken = shards[len(shards)-1].ShardId
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	if description != nil {
		description.Shards = r.Items
		description.HasMoreShards = aws.Bool(r.NextToken != nil)
	}
	return &DescribeStreamResult{StreamDescription: description, NextToken: r.NextToken}, nil
}

// ListTagsResult holds every tag of a stream. NextToken is the tag key to
// resume from when the listing was cut short.
type ListTagsResult struct {
	Tags      []types.Tag
	NextToken *string
}

// ListTags lists stream tags, following ExclusiveStartTagKey until
// HasMoreTags is false.
func ListTags(ctx context.Context, kds KDS, input *kinesis.ListTagsForStreamInput, opts paginate.Options) (*ListTagsResult, error) {
	if opts.NextToken == "" && input.ExclusiveStartTagKey != nil {
		opts.NextToken = *input.ExclusiveStartTagKey
	}
	r, err := paginate.Collect(ctx, opts, MaxListTagsResults, func(ctx context.Context, token *string, size *int32) (paginate.Page[types.Tag], error) {
		params := *input
		params.Limit = size
		params.ExclusiveStartTagKey = token
		lto, err := kds.ListTagsForStream(ctx, &params)
		if err != nil {
			return paginate.Page[types.Tag]{}, err
		}
		page := paginate.Page[types.Tag]{Items: lto.Tags}
		if aws.ToBool(lto.HasMoreTags) && len(lto.Tags) > 0 {
			page.NextToken = lto.Tags[len(lto.Tags)-1].Key
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return &ListTagsResult{Tags: r.Items, NextToken: r.NextToken}, nil
}
