// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package stream

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
)

// Position is where the first subscription of each shard starts.
type Position struct {
	Type           types.ShardIteratorType
	Timestamp      *time.Time
	SequenceNumber *string
}

func (p Position) startingPosition() *types.StartingPosition {
	t := p.Type
	if t == "" {
		t = types.ShardIteratorTypeLatest
	}
	return &types.StartingPosition{
		Type:           t,
		Timestamp:      p.Timestamp,
		SequenceNumber: p.SequenceNumber,
	}
}

// ReadOptions controls a ShardReader.
type ReadOptions struct {
	Position Position
	// End stops a shard at the first record that arrived at or after it.
	// The zero value means no end time.
	End time.Time
	// MaxRecords stops a shard after that many records. Zero means no limit.
	MaxRecords int
	// Follow keeps reading once a shard has caught up with the tip of the
	// stream. Reading then stops when the context is done.
	Follow bool
	// Children also reads the shards created by splitting or merging the
	// shards that were read.
	Children bool
	// Concurrency is the number of shards read at the same time.
	Concurrency int
	// OnRecord is called for every record accepted from any shard. It is
	// called from several goroutines at once.
	OnRecord func(shardID string, record *types.Record)
}

// ShardOutput is the summary of one shard.
type ShardOutput struct {
	ShardID     string
	Records     int
	Aggregators []Aggregator
	childShards []types.ChildShard
	err         error
}

// Results maps aggregator names to their results.
func (o *ShardOutput) Results() map[string]interface{} {
	r := make(map[string]interface{}, len(o.Aggregators))
	for _, a := range o.Aggregators {
		r[a.Name()] = a.Result()
	}
	return r
}

// ShardReader reads shards through an enhanced fan-out consumer and feeds
// each record to a fresh set of aggregators per shard.
type ShardReader struct {
	kds               KDS
	aggregatorBuilder AggregatorBuilder
	opts              ReadOptions
	scheduler         *scheduler
	streamExtractor   streamExtractor
	streamCloser      streamCloser
}

func NewShardReader(kds KDS, aggregatorBuilder AggregatorBuilder, opts ReadOptions) *ShardReader {
	return &ShardReader{
		kds:               kds,
		aggregatorBuilder: aggregatorBuilder,
		opts:              opts,
		scheduler:         newScheduler(opts.Concurrency),
		streamExtractor: func(stso *kinesis.SubscribeToShardOutput) <-chan types.SubscribeToShardEventStream {
			return stso.GetStream().Events()
		},
		streamCloser: func(stso *kinesis.SubscribeToShardOutput) {
			stso.GetStream().Close()
		},
	}
}

// Read reads every shard in shardIDs, and their descendants when
// ReadOptions.Children is set. progress is called once per finished shard.
// When a shard fails the remaining shards are cancelled and the shards read
// so far are returned with the first error.
func (r *ShardReader) Read(ctx context.Context, consumerArn string, shardIDs []string, progress func()) ([]*ShardOutput, error) {
	return r.readAll(ctx, consumerArn, shardIDs, progress, r.readShard)
}

func (r *ShardReader) readAll(ctx context.Context, consumerArn string, shardIDs []string, progress func(), reader shardReader) ([]*ShardOutput, error) {
	var err error
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	results := make(chan *ShardOutput)
	pending := len(shardIDs)
	outputs := make([]*ShardOutput, 0)
	seen := make(map[string]bool)

	for _, shardID := range shardIDs {
		shardID := shardID
		seen[shardID] = true
		r.scheduler.Go(func() { reader(ctx, results, shardID, consumerArn) })
	}

	for pending > 0 {
		o := <-results
		pending--
		if progress != nil {
			progress()
		}
		if o.err != nil {
			if err == nil {
				err = o.err
				cancel()
			}
			continue
		}
		outputs = append(outputs, o)
		if !r.opts.Children || ctx.Err() != nil {
			continue
		}
		// A merged shard is reported as a child of both parents.
		for _, cs := range o.childShards {
			if seen[*cs.ShardId] {
				continue
			}
			seen[*cs.ShardId] = true
			pending++
			childID := *cs.ShardId
			r.scheduler.Go(func() { reader(ctx, results, childID, consumerArn) })
		}
	}

	return outputs, err
}

func (r *ShardReader) readShard(ctx context.Context, results chan<- *ShardOutput, shardID, consumerArn string) {
	var (
		continuationSequenceNumber *string
		startingPosition           *types.StartingPosition
	)
	o := &ShardOutput{
		ShardID:     shardID,
		Aggregators: r.aggregatorBuilder(),
	}
	// Kinesis subscriptions expire after 5 minutes.
	// This loop resubscribes until the shard is done.
	for {
		if continuationSequenceNumber == nil {
			startingPosition = r.opts.Position.startingPosition()
		} else {
			startingPosition = &types.StartingPosition{
				Type:           types.ShardIteratorTypeAtSequenceNumber,
				SequenceNumber: continuationSequenceNumber,
			}
		}
		subscription, err := r.kds.SubscribeToShard(ctx, &kinesis.SubscribeToShardInput{
			ConsumerARN:      &consumerArn,
			ShardId:          &shardID,
			StartingPosition: startingPosition,
		})
		if err != nil {
			if r.opts.Follow && ctx.Err() != nil {
				results <- o
				return
			}
			results <- &ShardOutput{ShardID: shardID, err: err}
			return
		}
		var done *ShardOutput
		continuationSequenceNumber, done = r.consume(ctx, subscription, o, continuationSequenceNumber)
		if done != nil {
			results <- done
			return
		}
	}
}

// consume reads the events of one subscription and closes it. It returns
// the sequence number to resubscribe from and, once the shard is done, the
// output to report. A nil output means the subscription expired.
func (r *ShardReader) consume(ctx context.Context, subscription *kinesis.SubscribeToShardOutput, o *ShardOutput, continuation *string) (*string, *ShardOutput) {
	defer r.streamCloser(subscription)
	events := r.streamExtractor(subscription)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return continuation, nil
			}
			e, ok := event.(*types.SubscribeToShardEventStreamMemberSubscribeToShardEvent)
			if !ok {
				continue
			}
			value := e.Value
			continuation = value.ContinuationSequenceNumber
			stop := r.aggregate(o, value.Records)
			caughtUp := aws.ToInt64(value.MillisBehindLatest) == 0 && !r.opts.Follow
			if continuation == nil || caughtUp || stop {
				o.childShards = value.ChildShards
				return continuation, o
			}
		case <-ctx.Done():
			if r.opts.Follow {
				return continuation, o
			}
			return continuation, &ShardOutput{ShardID: o.ShardID, err: ctx.Err()}
		}
	}
}

// aggregate feeds records to the aggregators of o and reports whether the
// shard has reached the end time or the record limit.
func (r *ShardReader) aggregate(o *ShardOutput, records []types.Record) bool {
	for i := range records {
		record := &records[i]
		if !r.opts.End.IsZero() && record.ApproximateArrivalTimestamp != nil && !record.ApproximateArrivalTimestamp.Before(r.opts.End) {
			return true
		}
		for _, a := range o.Aggregators {
			a.Aggregate(record)
		}
		if r.opts.OnRecord != nil {
			r.opts.OnRecord(o.ShardID, record)
		}
		o.Records++
		if r.opts.MaxRecords > 0 && o.Records >= r.opts.MaxRecords {
			return true
		}
	}
	return false
}

type throttledMetric interface {
	MaxUtilisation() float32
}

// TopShards returns the n shards with the highest utilisation, ordered by
// the first throttled metric their aggregators expose. n of zero or more
// than the number of shards returns every shard in the original order.
func TopShards(outputs []*ShardOutput, n int) []*ShardOutput {
	if n <= 0 || n >= len(outputs) {
		return outputs
	}
	sorted := make([]*ShardOutput, len(outputs))
	copy(sorted, outputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utilisation(sorted[i]) > utilisation(sorted[j])
	})
	return sorted[:n]
}

func utilisation(o *ShardOutput) float32 {
	var max float32
	for _, a := range o.Aggregators {
		if tm, ok := a.(throttledMetric); ok && tm.MaxUtilisation() > max {
			max = tm.MaxUtilisation()
		}
	}
	return max
}

type shardReader func(context.Context, chan<- *ShardOutput, string, string)
type streamExtractor func(*kinesis.SubscribeToShardOutput) <-chan types.SubscribeToShardEventStream
type streamCloser func(*kinesis.SubscribeToShardOutput)
