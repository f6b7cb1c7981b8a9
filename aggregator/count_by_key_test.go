// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package aggregator

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(a interface{ Aggregate(*types.Record) }, keys ...string) {
	for _, k := range keys {
		a.Aggregate(&types.Record{PartitionKey: aws.String(k)})
	}
}

func TestCountByKey(t *testing.T) {
	cases := []struct {
		name   string
		limit  int
		keys   []string
		expect []KeyCount
	}{
		{"should order by count", 0, []string{"a", "b", "b", "c", "c", "c"}, []KeyCount{{"c", 3}, {"b", 2}, {"a", 1}}},
		{"should break ties by key", 0, []string{"b", "a"}, []KeyCount{{"a", 1}, {"b", 1}}},
		{"should apply the limit", 1, []string{"a", "b", "b"}, []KeyCount{{"b", 2}}},
		{"should handle no records", 0, nil, []KeyCount{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewCountByKey(c.limit)
			feed(a, c.keys...)

			assert.Equal(t, c.expect, a.Result())
			assert.Equal(t, "partition-keys", a.Name())
		})
	}
}

func TestSketchFindsHotKeys(t *testing.T) {
	// Arrange
	s, err := NewSketch(4, 1024, 2)
	require.NoError(t, err)
	keys := make([]string, 0)
	for i := 0; i < 100; i++ {
		keys = append(keys, fmt.Sprintf("cold-%d", i))
	}
	for i := 0; i < 50; i++ {
		keys = append(keys, "hot", "warm", "hot")
	}

	// Act
	feed(s, keys...)

	// Assert
	r := s.Result().([]KeyCount)
	require.Len(t, r, 2)
	assert.Equal(t, "hot", r[0].PartitionKey)
	assert.GreaterOrEqual(t, r[0].Count, 100)
	assert.Equal(t, "warm", r[1].PartitionKey)
	assert.GreaterOrEqual(t, r[1].Count, 50)
}

func TestNewSketchRejectsInvalidSizes(t *testing.T) {
	_, err := NewSketch(0, 10, 10)

	assert.Error(t, err)
}

func TestCollector(t *testing.T) {
	c := NewCollector(2)
	feed(c, "a", "b", "c")

	r := c.Result()

	assert.Len(t, r, 2)
	assert.Equal(t, "records", c.Name())
}
