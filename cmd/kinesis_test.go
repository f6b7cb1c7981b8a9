// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/stream"
	"github.com/awslabs/shkin/stream/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const recordsFile = `{"PartitionKey":"a","Text":"one"}
{"PartitionKey":"b","Data":{"n":2}}
`

func putRecordsMock(t *testing.T, failed bool) *mocks.MockKDS {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().PutRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *kinesis.PutRecordsInput, _ ...func(*kinesis.Options)) (*kinesis.PutRecordsOutput, error) {
			assert.Equal(t, "orders", aws.ToString(in.StreamName))
			require.Len(t, in.Records, 2)
			assert.Equal(t, []byte("one"), in.Records[0].Data)
			assert.Equal(t, []byte(`{"n":2}`), in.Records[1].Data)
			out := &kinesis.PutRecordsOutput{Records: []types.PutRecordsResultEntry{
				{SequenceNumber: aws.String("1"), ShardId: aws.String("shardId-0")},
				{SequenceNumber: aws.String("2"), ShardId: aws.String("shardId-0")},
			}}
			if failed {
				out.Records[1] = types.PutRecordsResultEntry{ErrorCode: aws.String("ProvisionedThroughputExceededException")}
			}
			return out, nil
		})
	return kds
}

func TestPutRecordsFromStdin(t *testing.T) {
	kds := putRecordsMock(t, false)

	r := execute(t, &fakeClients{kds: kds}, recordsFile, false, "kinesis", "put-records", "orders", "--records-file", "-")

	require.NoError(t, r.err)
	assert.Equal(t, int64(0), gjson.Get(r.out, "FailedRecordCount").Int())
	assert.Equal(t, int64(2), gjson.Get(r.out, "Records.#").Int())
}

func TestPutRecordsPartialFailure(t *testing.T) {
	t.Run("reported", func(t *testing.T) {
		kds := putRecordsMock(t, true)

		r := execute(t, &fakeClients{kds: kds}, recordsFile, false, "kinesis", "put-records", "orders", "--records-file", "-")

		require.NoError(t, r.err)
		assert.Equal(t, int64(1), gjson.Get(r.out, "FailedRecordCount").Int())
		assert.Contains(t, r.errOut, "some items were not processed")
	})

	t.Run("failing", func(t *testing.T) {
		kds := putRecordsMock(t, true)

		r := execute(t, &fakeClients{kds: kds}, recordsFile, false, "kinesis", "put-records", "orders", "--records-file", "-", "--fail-on-partial")

		var pf *PartialFailureError
		require.ErrorAs(t, r.err, &pf)
		assert.Equal(t, 1, pf.Failed)
		assert.Equal(t, 2, exitCode(r.err))
		assert.NotEmpty(t, r.out)
	})
}

func TestPutRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().PutRecord(gomock.Any(), &kinesis.PutRecordInput{
		StreamARN:    aws.String("arn:aws:kinesis:us-east-1:123456789012:stream/orders"),
		PartitionKey: aws.String("k"),
		Data:         []byte("hello"),
	}).Return(&kinesis.PutRecordOutput{ShardId: aws.String("shardId-0"), SequenceNumber: aws.String("42")}, nil)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "put-record",
		"--stream-arn", "arn:aws:kinesis:us-east-1:123456789012:stream/orders",
		"--partition-key", "k", "--base64", "aGVsbG8=")

	require.NoError(t, r.err)
	assert.Equal(t, "42", gjson.Get(r.out, "SequenceNumber").String())
}

func TestPutRecordRejectsTwoPayloads(t *testing.T) {
	r := execute(t, &fakeClients{}, "", false, "kinesis", "put-record", "orders", "--partition-key", "k", "--text", "a", "--base64", "YQ==")

	assert.Error(t, r.err)
}

func TestListShardsResumesWithoutStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().ListShards(gomock.Any(), &kinesis.ListShardsInput{NextToken: aws.String("tok"), MaxResults: aws.Int32(stream.MaxListShardsResults)}).
		Return(&kinesis.ListShardsOutput{Shards: []types.Shard{{ShardId: aws.String("shardId-1")}}}, nil)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "list-shards", "--next-token", "tok", "--select", "Shards.#.ShardId", "-o", "text")

	require.NoError(t, r.err)
	assert.Equal(t, "shardId-1\n", r.out)
}

func TestListShardsFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().ListShards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *kinesis.ListShardsInput, _ ...func(*kinesis.Options)) (*kinesis.ListShardsOutput, error) {
			assert.Equal(t, "orders", aws.ToString(in.StreamName))
			require.NotNil(t, in.ShardFilter)
			assert.Equal(t, types.ShardFilterTypeAtLatest, in.ShardFilter.Type)
			return &kinesis.ListShardsOutput{}, nil
		})

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "list-shards", "orders", "--shard-filter-type", "at_latest")

	require.NoError(t, r.err)
}

func TestInvalidEnumFlag(t *testing.T) {
	r := execute(t, &fakeClients{}, "", false, "kinesis", "list-shards", "orders", "--shard-filter-type", "sideways")

	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "AT_LATEST")
}

func TestGetRecordsDecodesData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().GetRecords(gomock.Any(), &kinesis.GetRecordsInput{
		ShardIterator: aws.String("it-1"),
		Limit:         aws.Int32(2),
	}).Return(&kinesis.GetRecordsOutput{
		Records: []types.Record{
			{SequenceNumber: aws.String("1"), PartitionKey: aws.String("a"), Data: []byte("text")},
			{SequenceNumber: aws.String("2"), PartitionKey: aws.String("b"), Data: []byte{0xff, 0xfe}},
		},
		NextShardIterator:  aws.String("it-2"),
		MillisBehindLatest: aws.Int64(0),
	}, nil)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "get-records", "it-1", "--limit", "2")

	require.NoError(t, r.err)
	assert.Equal(t, "text", gjson.Get(r.out, "Records.0.Data").String())
	assert.Equal(t, "//4=", gjson.Get(r.out, "Records.1.Data").String())
	assert.Equal(t, "base64", gjson.Get(r.out, "Records.1.DataEncoding").String())
	assert.Equal(t, "it-2", gjson.Get(r.out, "NextShardIterator").String())
}

func TestListStreamConsumersResolvesStreamName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	arn := "arn:aws:kinesis:us-east-1:123456789012:stream/orders"
	kds := mocks.NewMockKDS(ctrl)
	gomock.InOrder(
		kds.EXPECT().DescribeStreamSummary(gomock.Any(), &kinesis.DescribeStreamSummaryInput{StreamName: aws.String("orders")}).
			Return(&kinesis.DescribeStreamSummaryOutput{StreamDescriptionSummary: &types.StreamDescriptionSummary{StreamARN: aws.String(arn)}}, nil),
		kds.EXPECT().ListStreamConsumers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in *kinesis.ListStreamConsumersInput, _ ...func(*kinesis.Options)) (*kinesis.ListStreamConsumersOutput, error) {
				assert.Equal(t, arn, aws.ToString(in.StreamARN))
				return &kinesis.ListStreamConsumersOutput{Consumers: []types.Consumer{{ConsumerName: aws.String("c1")}}}, nil
			}),
	)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "list-stream-consumers", "orders", "--select", "Consumers.0.ConsumerName", "-o", "text")

	require.NoError(t, r.err)
	assert.Equal(t, "c1\n", r.out)
}

func TestDeregisterStreamConsumerByARN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	arn := "arn:aws:kinesis:us-east-1:123456789012:stream/orders/consumer/c1:1"
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().DeregisterStreamConsumer(gomock.Any(), &kinesis.DeregisterStreamConsumerInput{ConsumerARN: aws.String(arn)}).
		Return(&kinesis.DeregisterStreamConsumerOutput{}, nil)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "deregister-stream-consumer", "--consumer-arn", arn, "--force")

	require.NoError(t, r.err)
}

func TestUpdateShardCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().UpdateShardCount(gomock.Any(), &kinesis.UpdateShardCountInput{
		StreamName:       aws.String("orders"),
		TargetShardCount: aws.Int32(8),
		ScalingType:      types.ScalingTypeUniformScaling,
	}).Return(&kinesis.UpdateShardCountOutput{TargetShardCount: aws.Int32(8)}, nil)

	r := execute(t, &fakeClients{kds: kds}, "", false, "kinesis", "Update-KINShardCount", "orders", "--target-shard-count", "8")

	require.NoError(t, r.err)
	assert.Equal(t, int64(8), gjson.Get(r.out, "TargetShardCount").Int())
}
