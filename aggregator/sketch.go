// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package aggregator

import (
	"encoding/binary"
	"errors"
	"hash/maphash"

	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
)

// Sketch estimates the most frequent partition keys of a shard with a
// count-min sketch, using memory bounded by hashes*slots regardless of
// the number of distinct keys. Estimates never undercount.
type Sketch struct {
	rows [][]int
	seed maphash.Seed
	topK []KeyCount
}

// NewSketch returns a count-min sketch of hashes rows by slots columns that
// tracks the limit hottest keys.
func NewSketch(hashes, slots, limit int) (*Sketch, error) {
	if hashes < 1 || slots < 1 || limit < 1 {
		return nil, errors.New("sketch: hashes, slots and limit must be positive")
	}
	return newSketch(hashes, slots, limit), nil
}

// Empty returns a sketch with no counts and the dimensions of s.
func (s *Sketch) Empty() *Sketch {
	return newSketch(len(s.rows), len(s.rows[0]), cap(s.topK))
}

func newSketch(hashes, slots, limit int) *Sketch {
	rows := make([][]int, hashes)
	for i := range rows {
		rows[i] = make([]int, slots)
	}
	return &Sketch{
		rows: rows,
		seed: maphash.MakeSeed(),
		topK: make([]KeyCount, 0, limit),
	}
}

func (s *Sketch) Name() string {
	return partitionKeysName
}

func (s *Sketch) Aggregate(r *types.Record) {
	if r.PartitionKey == nil {
		return
	}
	key := *r.PartitionKey
	estimate := s.add(key)
	if !s.updateTopK(key, estimate) {
		s.addToTopK(key, estimate)
	}
}

func (s *Sketch) Result() interface{} {
	records := make([]KeyCount, len(s.topK))
	copy(records, s.topK)
	sortKeyCounts(records)
	return records
}

// add counts key in every row and returns the smallest of its counters.
func (s *Sketch) add(key string) int {
	min := 0
	var salt [8]byte
	for i, slots := range s.rows {
		var h maphash.Hash
		h.SetSeed(s.seed)
		binary.LittleEndian.PutUint64(salt[:], uint64(i))
		h.Write(salt[:])
		h.WriteString(key)
		idx := h.Sum64() % uint64(len(slots))
		slots[idx]++
		if i == 0 || slots[idx] < min {
			min = slots[idx]
		}
	}
	return min
}

// topK is kept ordered by count, highest first.
func (s *Sketch) updateTopK(key string, count int) bool {
	for i := range s.topK {
		if s.topK[i].PartitionKey != key {
			continue
		}
		s.topK[i].Count = count
		for j := i; j > 0 && s.topK[j].Count > s.topK[j-1].Count; j-- {
			s.topK[j], s.topK[j-1] = s.topK[j-1], s.topK[j]
		}
		return true
	}
	return false
}

func (s *Sketch) addToTopK(key string, count int) {
	if len(s.topK) < cap(s.topK) {
		s.topK = append(s.topK, KeyCount{})
	} else if s.topK[len(s.topK)-1].Count >= count {
		return
	}
	last := len(s.topK) - 1
	s.topK[last] = KeyCount{PartitionKey: key, Count: count}
	for j := last; j > 0 && s.topK[j].Count > s.topK[j-1].Count; j-- {
		s.topK[j], s.topK[j-1] = s.topK[j-1], s.topK[j]
	}
}
