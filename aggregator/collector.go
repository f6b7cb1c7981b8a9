// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package aggregator

import (
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/stream"
)

// Collector keeps the decoded records of a shard, up to limit when it is
// positive.
type Collector struct {
	records []stream.RecordView
	limit   int
}

func NewCollector(limit int) *Collector {
	return &Collector{
		records: make([]stream.RecordView, 0),
		limit:   limit,
	}
}

func (c *Collector) Name() string {
	return "records"
}

func (c *Collector) Aggregate(r *types.Record) {
	if c.limit > 0 && len(c.records) >= c.limit {
		return
	}
	c.records = append(c.records, stream.Decode(r))
}

func (c *Collector) Result() interface{} {
	return c.records
}
