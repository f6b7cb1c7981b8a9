// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package aggregator

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
)

const partitionKeysName = "partition-keys"

// KeyCount is used by counting aggregators to report the number of
// times a given partition key appears in a shard.
type KeyCount struct {
	PartitionKey string `json:"partitionKey"`
	Count        int    `json:"count"`
}

// CountByKey counts every partition key exactly.
type CountByKey struct {
	store map[string]int
	limit int
}

// NewCountByKey reports the limit most frequent keys; zero reports all.
func NewCountByKey(limit int) *CountByKey {
	return &CountByKey{
		store: make(map[string]int),
		limit: limit,
	}
}

func (c *CountByKey) Name() string {
	return partitionKeysName
}

func (c *CountByKey) Aggregate(r *types.Record) {
	if r.PartitionKey == nil {
		return
	}
	c.store[*r.PartitionKey]++
}

func (c *CountByKey) Result() interface{} {
	records := make([]KeyCount, 0, len(c.store))
	for partitionKey, count := range c.store {
		records = append(records, KeyCount{
			PartitionKey: partitionKey,
			Count:        count,
		})
	}
	sortKeyCounts(records)
	if c.limit > 0 && len(records) > c.limit {
		records = records[:c.limit]
	}
	return records
}

func sortKeyCounts(records []KeyCount) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		return records[i].PartitionKey < records[j].PartitionKey
	})
}
