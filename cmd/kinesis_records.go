// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/output"
	"github.com/awslabs/shkin/stream"
	"github.com/spf13/cobra"
)

// openInput opens path for reading, with "-" meaning stdin.
func (a *app) openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(a.in), nil
	}
	return os.Open(path)
}

func newGetShardIteratorCmd(a *app) *cobra.Command {
	var (
		ref          streamRef
		shardID      string
		iteratorType string
		sequence     string
		timestamp    string
	)
	c := &cobra.Command{
		Use:     "get-shard-iterator STREAM-NAME",
		Aliases: []string{"Get-KINShardIterator"},
		Short:   "Get an iterator to read a shard with get-records",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			it, err := enum("shard-iterator-type", iteratorType, types.ShardIteratorType("").Values())
			if err != nil {
				return err
			}
			ts, err := optTime(timestamp)
			if err != nil {
				return err
			}
			return a.run(cmd, kinesisOp("GetShardIterator", confirm.None, "ShardIterator"), t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				name, arn := ref.ids(target)
				return kds.GetShardIterator(ctx, &kinesis.GetShardIteratorInput{
					StreamName:             name,
					StreamARN:              arn,
					ShardId:                aws.String(shardID),
					ShardIteratorType:      it,
					StartingSequenceNumber: optString(sequence),
					Timestamp:              ts,
				})
			}))
		},
	}
	ref.addFlags(c)
	c.Flags().StringVar(&shardID, "shard-id", "", "shard to read")
	c.Flags().StringVar(&iteratorType, "shard-iterator-type", string(types.ShardIteratorTypeLatest), "AT_SEQUENCE_NUMBER, AFTER_SEQUENCE_NUMBER, TRIM_HORIZON, LATEST or AT_TIMESTAMP")
	c.Flags().StringVar(&sequence, "starting-sequence-number", "", "sequence number for AT_ and AFTER_SEQUENCE_NUMBER")
	c.Flags().StringVar(&timestamp, "timestamp", "", "time for AT_TIMESTAMP, absolute or a duration into the past")
	_ = c.MarkFlagRequired("shard-id")
	return c
}

// recordsPage is a GetRecords response with printable payloads.
type recordsPage struct {
	Records            []stream.RecordView
	NextShardIterator  *string
	MillisBehindLatest *int64
	ChildShards        []types.ChildShard `json:",omitempty"`
}

func newGetRecordsCmd(a *app) *cobra.Command {
	var (
		iterator string
		arn      string
		limit    int32
	)
	c := &cobra.Command{
		Use:     "get-records SHARD-ITERATOR",
		Aliases: []string{"Get-KINRecord"},
		Short:   "Read one page of records from a shard iterator",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := targets(args, iterator, "shard iterator")
			if err != nil {
				return err
			}
			return a.run(cmd, kinesisOp("GetRecords", confirm.None, output.All), t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				gro, err := kds.GetRecords(ctx, &kinesis.GetRecordsInput{
					ShardIterator: aws.String(target),
					StreamARN:     optString(arn),
					Limit:         optInt32(cmd, "limit", limit),
				})
				if err != nil {
					return nil, err
				}
				return &recordsPage{
					Records:            stream.DecodeAll(gro.Records),
					NextShardIterator:  gro.NextShardIterator,
					MillisBehindLatest: gro.MillisBehindLatest,
					ChildShards:        gro.ChildShards,
				}, nil
			}))
		},
	}
	c.Flags().StringVar(&iterator, "shard-iterator", "", "iterator from get-shard-iterator or a previous get-records")
	c.Flags().StringVar(&arn, "stream-arn", "", "stream ARN")
	c.Flags().Int32Var(&limit, "limit", 0, "maximum records to return, up to 10000")
	return c
}

func newPutRecordCmd(a *app) *cobra.Command {
	var (
		ref      streamRef
		entry    stream.RecordEntry
		text     string
		dataFile string
		data     string
		sequence string
	)
	c := &cobra.Command{
		Use:     "put-record STREAM-NAME",
		Aliases: []string{"Write-KINRecord"},
		Short:   "Write a single record",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("text"):
				entry.Text = aws.String(text)
			case data != "":
				entry.Data = []byte(data)
			case dataFile != "":
				f, err := a.openInput(dataFile)
				if err != nil {
					return err
				}
				b, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					return err
				}
				entry.Text = aws.String(string(b))
			}
			e, err := entry.Entry()
			if err != nil {
				return err
			}
			if len(e.Data)+len(entry.PartitionKey) > stream.MaxRecordBytes {
				return fmt.Errorf("put-record: %w", stream.ErrRecordTooLarge)
			}
			return a.run(cmd, kinesisOp("PutRecord", confirm.Medium, output.All), t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				name, arn := ref.ids(target)
				return kds.PutRecord(ctx, &kinesis.PutRecordInput{
					StreamName:                name,
					StreamARN:                 arn,
					PartitionKey:              e.PartitionKey,
					Data:                      e.Data,
					ExplicitHashKey:           e.ExplicitHashKey,
					SequenceNumberForOrdering: optString(sequence),
				})
			}))
		},
	}
	ref.addFlags(c)
	c.Flags().StringVar(&entry.PartitionKey, "partition-key", "", "partition key of the record")
	c.Flags().StringVar(&text, "text", "", "payload as text")
	c.Flags().StringVar(&data, "data", "", "payload as JSON, sent compacted")
	c.Flags().StringVar(&entry.Base64, "base64", "", "payload as base64")
	c.Flags().StringVar(&dataFile, "data-file", "", "read the payload from a file, - for stdin")
	c.Flags().StringVar(&entry.ExplicitHashKey, "explicit-hash-key", "", "hash key that overrides the partition key hash")
	c.Flags().StringVar(&sequence, "sequence-number-for-ordering", "", "sequence number of the previous record from the same producer")
	c.MarkFlagsMutuallyExclusive("text", "data", "base64", "data-file")
	_ = c.MarkFlagRequired("partition-key")
	return c
}

func newPutRecordsCmd(a *app) *cobra.Command {
	var (
		ref  streamRef
		file string
	)
	c := &cobra.Command{
		Use:     "put-records STREAM-NAME",
		Aliases: []string{"Write-KINMultipleRecord"},
		Short:   "Write records from a file in batches of up to 500",
		Long:    "Write records from a JSON array or JSON lines file. Each record has a PartitionKey and one of Data, Text or Base64.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ref.targets(args)
			if err != nil {
				return err
			}
			f, err := a.openInput(file)
			if err != nil {
				return err
			}
			entries, err := stream.ParseRecordsFile(f)
			f.Close()
			if err != nil {
				return err
			}
			o := kinesisOp("PutRecords", confirm.Medium, output.All)
			o.failed = func(r any) int {
				return r.(*stream.PutRecordsResult).FailedRecordCount
			}
			return a.run(cmd, o, t[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				bar := a.newBar(len(entries))
				defer bar.Finish()
				name, arn := ref.ids(target)
				return stream.PutRecords(ctx, kds, &kinesis.PutRecordsInput{StreamName: name, StreamARN: arn}, entries, func(n int) {
					bar.Add(n)
				})
			}))
		},
	}
	ref.addFlags(c)
	c.Flags().StringVar(&file, "records-file", "", "file with the records, - for stdin")
	_ = c.MarkFlagRequired("records-file")
	return c
}
