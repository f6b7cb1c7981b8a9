// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
)

// PutRecords limits.
const (
	MaxRecordsPerRequest = 500
	MaxRequestBytes      = 5 << 20
	MaxRecordBytes       = 1 << 20
)

var (
	ErrRecordTooLarge      = errors.New("record exceeds 1 MiB")
	ErrMissingPartitionKey = errors.New("record has no partition key")
)

// RecordEntry is one record of a records file. Exactly one of Data, Text
// or Base64 carries the payload. Data is written as-is when it is a JSON
// object, array or number, and as the string contents when it is a string.
type RecordEntry struct {
	PartitionKey    string          `json:"PartitionKey"`
	Data            json.RawMessage `json:"Data,omitempty"`
	Text            *string         `json:"Text,omitempty"`
	Base64          string          `json:"Base64,omitempty"`
	ExplicitHashKey string          `json:"ExplicitHashKey,omitempty"`
}

func (e *RecordEntry) payload() ([]byte, error) {
	switch {
	case e.Text != nil:
		return []byte(*e.Text), nil
	case e.Base64 != "":
		return base64.StdEncoding.DecodeString(e.Base64)
	case len(e.Data) > 0:
		var s string
		if err := json.Unmarshal(e.Data, &s); err == nil {
			return []byte(s), nil
		}
		var b bytes.Buffer
		if err := json.Compact(&b, e.Data); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	return []byte{}, nil
}

// Entry converts the record into a PutRecords request entry.
func (e *RecordEntry) Entry() (types.PutRecordsRequestEntry, error) {
	if e.PartitionKey == "" {
		return types.PutRecordsRequestEntry{}, ErrMissingPartitionKey
	}
	data, err := e.payload()
	if err != nil {
		return types.PutRecordsRequestEntry{}, fmt.Errorf("record %q: %w", e.PartitionKey, err)
	}
	entry := types.PutRecordsRequestEntry{
		PartitionKey: aws.String(e.PartitionKey),
		Data:         data,
	}
	if e.ExplicitHashKey != "" {
		entry.ExplicitHashKey = aws.String(e.ExplicitHashKey)
	}
	return entry, nil
}

// ParseRecordsFile reads records from a JSON array or from JSON lines.
func ParseRecordsFile(r io.Reader) ([]types.PutRecordsRequestEntry, error) {
	br := bufio.NewReader(r)
	var records []RecordEntry
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return []types.PutRecordsRequestEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(br)
	if first == '[' {
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("records: %w", err)
		}
	} else {
		for line := 1; ; line++ {
			var e RecordEntry
			err := dec.Decode(&e)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("records: entry %d: %w", line, err)
			}
			records = append(records, e)
		}
	}
	entries := make([]types.PutRecordsRequestEntry, 0, len(records))
	for i := range records {
		entry, err := records[i].Entry()
		if err != nil {
			return nil, fmt.Errorf("records: entry %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func entrySize(e types.PutRecordsRequestEntry) int {
	return len(e.Data) + len(aws.ToString(e.PartitionKey))
}

// BatchRecords splits entries into PutRecords requests of at most 500
// records and 5 MiB each, keeping their order.
func BatchRecords(entries []types.PutRecordsRequestEntry) ([][]types.PutRecordsRequestEntry, error) {
	batches := make([][]types.PutRecordsRequestEntry, 0)
	var (
		current []types.PutRecordsRequestEntry
		size    int
	)
	for i, e := range entries {
		n := entrySize(e)
		if n > MaxRecordBytes {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, aws.ToString(e.PartitionKey), ErrRecordTooLarge)
		}
		if len(current) == MaxRecordsPerRequest || size+n > MaxRequestBytes {
			batches = append(batches, current)
			current, size = nil, 0
		}
		current = append(current, e)
		size += n
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

// PutRecordsResult merges the responses of every batch. Records keeps the
// order of the input entries.
type PutRecordsResult struct {
	FailedRecordCount int
	Records           []types.PutRecordsResultEntry
	EncryptionType    types.EncryptionType
}

// PutRecords writes entries in as many batches as needed. input carries the
// stream identifier; its Records are ignored. progress, when set, is called
// with the number of records of each completed batch.
func PutRecords(ctx context.Context, kds KDS, input *kinesis.PutRecordsInput, entries []types.PutRecordsRequestEntry, progress func(int)) (*PutRecordsResult, error) {
	batches, err := BatchRecords(entries)
	if err != nil {
		return nil, err
	}
	r := &PutRecordsResult{Records: make([]types.PutRecordsResultEntry, 0, len(entries))}
	for _, batch := range batches {
		params := *input
		params.Records = batch
		pro, err := kds.PutRecords(ctx, &params)
		if err != nil {
			return nil, err
		}
		for _, e := range pro.Records {
			if e.ErrorCode != nil {
				r.FailedRecordCount++
			}
		}
		r.Records = append(r.Records, pro.Records...)
		r.EncryptionType = pro.EncryptionType
		if progress != nil {
			progress(len(batch))
		}
	}
	return r, nil
}

// RecordView is a record with its payload made printable.
type RecordView struct {
	SequenceNumber              string
	PartitionKey                string
	ApproximateArrivalTimestamp *time.Time           `json:",omitempty"`
	EncryptionType              types.EncryptionType `json:",omitempty"`
	Data                        string
	// DataEncoding is "text" when Data is the UTF-8 payload and "base64"
	// otherwise.
	DataEncoding string
}

// Decode renders record for output, decoding its data as text when it is
// valid UTF-8.
func Decode(record *types.Record) RecordView {
	v := RecordView{
		SequenceNumber:              aws.ToString(record.SequenceNumber),
		PartitionKey:                aws.ToString(record.PartitionKey),
		ApproximateArrivalTimestamp: record.ApproximateArrivalTimestamp,
		EncryptionType:              record.EncryptionType,
	}
	if utf8.Valid(record.Data) {
		v.Data = string(record.Data)
		v.DataEncoding = "text"
	} else {
		v.Data = base64.StdEncoding.EncodeToString(record.Data)
		v.DataEncoding = "base64"
	}
	return v
}

// DecodeAll decodes a page of records.
func DecodeAll(records []types.Record) []RecordView {
	views := make([]RecordView, 0, len(records))
	for i := range records {
		views = append(views, Decode(&records[i]))
	}
	return views
}
