// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

//go:generate mockgen -source=kinesis_subscribe.go -destination=mocks/mock_subscribe.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/aggregator"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/output"
	"github.com/awslabs/shkin/report"
	"github.com/awslabs/shkin/stream"
	"github.com/cheggaaa/pb"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	consumerPrefix = "shkin-"
	// defaultRetention is the window summarised when reading from the trim
	// horizon without --since.
	defaultRetention = 24 * time.Hour
	// Count-min sketch dimensions for --key-counter sketch.
	sketchHashes = 4
	sketchSlots  = 1 << 14
)

type efo interface {
	EnsureConsumer(ctx context.Context) (*string, *string, error)
	DeregisterConsumer(ctx context.Context, streamArn, consumerArn *string) error
}

type discover interface {
	ParentShards(ctx context.Context) ([]string, int, error)
}

type shardReader interface {
	Read(ctx context.Context, consumerArn string, shardIDs []string, progress func()) ([]*stream.ShardOutput, error)
}

// ShardSummary is what subscribe-to-shard reports per shard.
type ShardSummary struct {
	ShardID string
	Records int
	Results map[string]interface{} `json:",omitempty"`
}

// SubscriptionResult is the output of subscribe-to-shard.
type SubscriptionResult struct {
	StreamName  string
	ConsumerARN string
	ShardCount  int `json:",omitempty"`
	Shards      []ShardSummary
}

// subscription reads a stream through an enhanced fan-out consumer.
type subscription struct {
	streamName string
	shardIDs   []string
	keep       bool
	top        int
	efo        efo
	discover   discover
	reader     shardReader
	newBar     func(total int) *pb.ProgressBar
	log        *log.Entry
}

// Start runs the read:
//   - Ensure the EFO consumer is registered and ACTIVE
//   - Read the given shards, or every root shard and its children
//   - Summarise the shards, busiest first when top is set
//   - Deregister the consumer unless it should be kept
func (s *subscription) Start(ctx context.Context) (*SubscriptionResult, error) {
	s.log.Info("ensuring EFO consumer")
	streamArn, consumerArn, err := s.efo.EnsureConsumer(ctx)
	if err != nil {
		return nil, err
	}
	s.log.WithField("consumer", *consumerArn).Info("consumer active")
	if !s.keep {
		defer s.deregister(streamArn, consumerArn)
	}

	shardIDs := s.shardIDs
	shardCount := len(shardIDs)
	if len(shardIDs) == 0 {
		shardIDs, shardCount, err = s.discover.ParentShards(ctx)
		if err != nil {
			return nil, err
		}
	}
	bar := s.newBar(shardCount)
	outputs, err := s.reader.Read(ctx, *consumerArn, shardIDs, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return nil, err
	}

	r := &SubscriptionResult{
		StreamName:  s.streamName,
		ConsumerARN: *consumerArn,
		ShardCount:  shardCount,
		Shards:      make([]ShardSummary, 0, len(outputs)),
	}
	for _, o := range stream.TopShards(outputs, s.top) {
		r.Shards = append(r.Shards, ShardSummary{
			ShardID: o.ShardID,
			Records: o.Records,
			Results: o.Results(),
		})
	}
	return r, nil
}

// deregister runs on its own context so that the consumer is removed even
// when the read was cancelled.
func (s *subscription) deregister(streamArn, consumerArn *string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := s.efo.DeregisterConsumer(ctx, streamArn, consumerArn); err != nil {
		s.log.WithError(err).Warn("could not deregister EFO consumer")
		return
	}
	s.log.Info("EFO consumer deregistered")
}

// subscribeFlags holds the subscribe-to-shard options.
type subscribeFlags struct {
	consumerName string
	keep         bool
	shardIDs     []string
	positionType string
	since        string
	until        string
	sequence     string
	maxRecords   int
	follow       bool
	children     bool
	summary      bool
	top          int
	keyCounter   string
	limit        int
	report       string
}

// window returns the interval covered by the per second aggregators.
func (f *subscribeFlags) window(position stream.Position, end time.Time, now time.Time, timeout time.Duration) (time.Time, time.Time) {
	start := now
	switch {
	case position.Timestamp != nil:
		start = *position.Timestamp
	case position.Type == types.ShardIteratorTypeTrimHorizon:
		start = now.Add(-defaultRetention)
	}
	if end.IsZero() {
		end = now
		if f.follow {
			end = now.Add(timeout)
		}
	}
	return start, end
}

// position resolves the starting position: an explicit type wins, then
// --since, then --sequence-number, then LATEST.
func (f *subscribeFlags) position() (stream.Position, error) {
	var p stream.Position
	t, err := enum("starting-position-type", f.positionType, types.ShardIteratorType("").Values())
	if err != nil {
		return p, err
	}
	if p.Timestamp, err = optTime(f.since); err != nil {
		return p, err
	}
	p.SequenceNumber = optString(f.sequence)
	switch {
	case t != "":
		p.Type = t
	case p.Timestamp != nil:
		p.Type = types.ShardIteratorTypeAtTimestamp
	case p.SequenceNumber != nil:
		p.Type = types.ShardIteratorTypeAtSequenceNumber
	default:
		p.Type = types.ShardIteratorTypeLatest
	}
	return p, nil
}

// aggregators returns the builder for the per shard summaries.
func (f *subscribeFlags) aggregators(start, end time.Time) (stream.AggregatorBuilder, error) {
	if !f.summary {
		if f.follow {
			return func() []stream.Aggregator { return nil }, nil
		}
		return func() []stream.Aggregator {
			return []stream.Aggregator{aggregator.NewCollector(f.limit)}
		}, nil
	}
	var sketch *aggregator.Sketch
	switch f.keyCounter {
	case "exact":
	case "sketch":
		var err error
		if sketch, err = aggregator.NewSketch(sketchHashes, sketchSlots, f.limit); err != nil {
			return nil, fmt.Errorf("--key-counter sketch needs a --limit of at least 1: %w", err)
		}
	default:
		return nil, fmt.Errorf("invalid --key-counter %q: want exact or sketch", f.keyCounter)
	}
	return func() []stream.Aggregator {
		var keys stream.Aggregator = aggregator.NewCountByKey(f.limit)
		if sketch != nil {
			keys = sketch.Empty()
		}
		return []stream.Aggregator{
			aggregator.NewCountPerSecond(start, end),
			aggregator.NewBytesPerSecond(start, end),
			keys,
		}
	}, nil
}

// writeReport renders the shard summaries of r into an HTML page.
func writeReport(fname string, start time.Time, r *SubscriptionResult, logger *log.Entry) error {
	shards := make([]report.Shard, 0, len(r.Shards))
	for _, s := range r.Shards {
		shards = append(shards, report.Shard{ShardID: s.ShardID, Records: s.Records, Results: s.Results})
	}
	if err := report.NewHTMLReporter(fname).Report(r.StreamName, start, shards); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	logger.WithField("file", fname).Info("report written")
	return nil
}

// recordPrinter writes each record as one JSON line while following.
func recordPrinter(w io.Writer, logger *log.Entry) func(string, *types.Record) {
	var mu sync.Mutex
	return func(shardID string, r *types.Record) {
		line, err := output.Marshal(struct {
			ShardID string
			stream.RecordView
		}{shardID, stream.Decode(r)})
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"shard":    shardID,
				"sequence": aws.ToString(r.SequenceNumber),
			}).Warn("could not print record")
			return
		}
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, string(line))
	}
}

func newSubscribeToShardCmd(a *app) *cobra.Command {
	var f subscribeFlags
	c := &cobra.Command{
		Use:     "subscribe-to-shard STREAM-NAME",
		Aliases: []string{"Start-KINShardSubscription"},
		Short:   "Read shards through an enhanced fan-out consumer",
		Long: `Read the records of a stream through an enhanced fan-out consumer.

Without --shard-id every root shard is read, and with --children the shards
created by resharding are read after their parents. Records are printed per
shard, or summarised with --summary into records and bytes per second and
the most frequent partition keys. --follow keeps reading at the tip of the
stream and prints records as they arrive until interrupted or --timeout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := f.position()
			if err != nil {
				return err
			}
			end, err := optTime(f.until)
			if err != nil {
				return err
			}
			opts := stream.ReadOptions{
				Position:    position,
				MaxRecords:  f.maxRecords,
				Follow:      f.follow,
				Children:    f.children,
				Concurrency: a.v.GetInt("concurrency"),
			}
			if end != nil {
				opts.End = *end
			}
			if f.follow {
				opts.OnRecord = recordPrinter(a.out, a.log.WithField("stream", args[0]))
			}
			start, stop := f.window(position, opts.End, time.Now(), a.v.GetDuration("timeout"))
			builder, err := f.aggregators(start, stop)
			if err != nil {
				return err
			}
			name := f.consumerName
			if name == "" {
				name = consumerPrefix + uuid.NewString()
			}
			return a.run(cmd, kinesisOp("SubscribeToShard", confirm.Low, "Shards"), args[0], a.kinesisCall(func(ctx context.Context, kds stream.KDS, target string) (any, error) {
				s := &subscription{
					streamName: target,
					shardIDs:   f.shardIDs,
					keep:       f.keep,
					top:        f.top,
					efo:        stream.NewEFO(target, name, kds),
					discover:   stream.NewDiscover(target, kds),
					reader:     stream.NewShardReader(kds, builder, opts),
					newBar:     a.newBar,
					log:        a.log.WithFields(log.Fields{"stream": target, "consumer": name}),
				}
				r, err := s.Start(ctx)
				if err != nil || f.report == "" {
					return r, err
				}
				return r, writeReport(f.report, start, r, s.log)
			}))
		},
	}
	c.Flags().StringVar(&f.consumerName, "consumer-name", "", "EFO consumer to use or register (default shkin-<uuid>)")
	c.Flags().BoolVar(&f.keep, "keep-consumer", false, "leave the consumer registered afterwards")
	c.Flags().StringSliceVar(&f.shardIDs, "shard-id", nil, "read only these shards")
	c.Flags().StringVar(&f.positionType, "starting-position-type", "", "AT_SEQUENCE_NUMBER, AFTER_SEQUENCE_NUMBER, TRIM_HORIZON, LATEST or AT_TIMESTAMP")
	c.Flags().StringVar(&f.since, "since", "", "start at this time, absolute or a duration into the past")
	c.Flags().StringVar(&f.until, "until", "", "stop at records that arrived at or after this time")
	c.Flags().StringVar(&f.sequence, "sequence-number", "", "sequence number for AT_ and AFTER_SEQUENCE_NUMBER")
	c.Flags().IntVar(&f.maxRecords, "max-records", 0, "stop each shard after this many records")
	c.Flags().BoolVar(&f.follow, "follow", false, "keep reading at the tip of the stream")
	c.Flags().BoolVar(&f.children, "children", false, "also read child shards")
	c.Flags().BoolVar(&f.summary, "summary", false, "summarise shards instead of printing records")
	c.Flags().IntVar(&f.top, "top", 0, "report only the busiest shards")
	c.Flags().StringVar(&f.keyCounter, "key-counter", "exact", "partition key counting: exact or sketch")
	c.Flags().IntVar(&f.limit, "limit", 10, "records per shard, or partition keys with --summary")
	c.Flags().StringVar(&f.report, "report", "", "also write the shard summaries to this HTML file")
	return c
}
