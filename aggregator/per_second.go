// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package aggregator

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/dustin/go-humanize"
)

// Per shard write limits.
const (
	maxRecordsPerSecond = float32(1000)
	maxBytesPerSecond   = float32(1024 * 1024)
)

// timeSeries accumulates a weight per second of arrival time over [min, max].
type timeSeries struct {
	min    int64 // Start time of aggregation in Unix time format
	max    int64 // End time of aggregation in Unix time format
	values []int // Array index is the ordinal value of second within the range.
	sum    int
	peak   int
}

func newTimeSeries(start, end time.Time) timeSeries {
	min := start.Unix()
	max := end.Unix()
	if max < min {
		max = min
	}
	return timeSeries{
		min:    min,
		max:    max,
		values: make([]int, int(max-min)+1),
	}
}

func (s *timeSeries) add(record *types.Record, weight int) {
	if record.ApproximateArrivalTimestamp == nil {
		return
	}
	an := record.ApproximateArrivalTimestamp.Unix()
	offset := an - s.min
	if offset < 0 || an > s.max {
		return
	}
	s.values[offset] += weight
	s.sum += weight
	if s.peak < s.values[offset] {
		s.peak = s.values[offset]
	}
}

// Stats is the result of the per second aggregators.
type Stats struct {
	TimeSeries []int   `json:"timeSeries"`
	Sum        int     `json:"sum"`
	Max        int     `json:"max"`
	Peak       string  `json:"peak"`
	Usage      float32 `json:"usage"`
}

// CountPerSecond is an Aggregator to count number of records
// received per second (based on ApproximateArrivalTimestamp).
type CountPerSecond struct {
	series timeSeries
}

func NewCountPerSecond(start, end time.Time) *CountPerSecond {
	return &CountPerSecond{series: newTimeSeries(start, end)}
}

func (c *CountPerSecond) Name() string {
	return "ingress-count"
}

func (c *CountPerSecond) Aggregate(record *types.Record) {
	c.series.add(record, 1)
}

func (c *CountPerSecond) Result() interface{} {
	return Stats{
		TimeSeries: c.series.values,
		Sum:        c.series.sum,
		Max:        c.series.peak,
		Peak:       humanize.Comma(int64(c.series.peak)) + " records/s",
		Usage:      c.MaxUtilisation(),
	}
}

// MaxUtilisation is the busiest second as a fraction of the shard limit.
func (c *CountPerSecond) MaxUtilisation() float32 {
	return float32(c.series.peak) / maxRecordsPerSecond
}

// BytesPerSecond is an Aggregator to count number of bytes
// received per second (based on ApproximateArrivalTimestamp).
type BytesPerSecond struct {
	series timeSeries
}

func NewBytesPerSecond(start, end time.Time) *BytesPerSecond {
	return &BytesPerSecond{series: newTimeSeries(start, end)}
}

func (b *BytesPerSecond) Name() string {
	return "ingress-bytes"
}

func (b *BytesPerSecond) Aggregate(record *types.Record) {
	b.series.add(record, len(record.Data))
}

func (b *BytesPerSecond) Result() interface{} {
	return Stats{
		TimeSeries: b.series.values,
		Sum:        b.series.sum,
		Max:        b.series.peak,
		Peak:       humanize.IBytes(uint64(b.series.peak)) + "/s",
		Usage:      b.MaxUtilisation(),
	}
}

func (b *BytesPerSecond) MaxUtilisation() float32 {
	return float32(b.series.peak) / maxBytesPerSecond
}
