// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
)

// MaxFindingsPerBatch is the most findings a batch call accepts.
const MaxFindingsPerBatch = 100

// ReadFindings reads ASFF findings from a JSON array or from an object
// with a Findings array.
func ReadFindings(r io.Reader) ([]types.AwsSecurityFinding, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []types.AwsSecurityFinding{}, nil
	}
	if b[0] == '[' {
		var findings []types.AwsSecurityFinding
		if err := json.Unmarshal(b, &findings); err != nil {
			return nil, fmt.Errorf("findings: %w", err)
		}
		return findings, nil
	}
	var doc struct {
		Findings []types.AwsSecurityFinding
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("findings: %w", err)
	}
	if doc.Findings == nil {
		return []types.AwsSecurityFinding{}, nil
	}
	return doc.Findings, nil
}

func batches[T any](items []T, size int) [][]T {
	r := make([][]T, 0, (len(items)+size-1)/size)
	for len(items) > size {
		r = append(r, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		r = append(r, items)
	}
	return r
}

// ImportResult merges the responses of every BatchImportFindings call.
type ImportResult struct {
	SuccessCount   int
	FailedCount    int
	FailedFindings []types.ImportFindingsError
}

// ImportFindings imports findings in batches of MaxFindingsPerBatch.
// progress, when set, is called with the size of each completed batch.
func ImportFindings(ctx context.Context, hub Hub, findings []types.AwsSecurityFinding, progress func(int)) (*ImportResult, error) {
	r := &ImportResult{FailedFindings: make([]types.ImportFindingsError, 0)}
	for _, batch := range batches(findings, MaxFindingsPerBatch) {
		out, err := hub.BatchImportFindings(ctx, &securityhub.BatchImportFindingsInput{Findings: batch})
		if err != nil {
			return nil, err
		}
		r.FailedFindings = append(r.FailedFindings, out.FailedFindings...)
		r.FailedCount += len(out.FailedFindings)
		r.SuccessCount += len(batch) - len(out.FailedFindings)
		if progress != nil {
			progress(len(batch))
		}
	}
	return r, nil
}

// UpdateFindings applies input to every finding in ids, in batches of
// MaxFindingsPerBatch. input.FindingIdentifiers is ignored.
func UpdateFindings(ctx context.Context, hub Hub, input *securityhub.BatchUpdateFindingsInput, ids []types.AwsSecurityFindingIdentifier) (*securityhub.BatchUpdateFindingsOutput, error) {
	r := &securityhub.BatchUpdateFindingsOutput{
		ProcessedFindings:   make([]types.AwsSecurityFindingIdentifier, 0),
		UnprocessedFindings: make([]types.BatchUpdateFindingsUnprocessedFinding, 0),
	}
	for _, batch := range batches(ids, MaxFindingsPerBatch) {
		params := *input
		params.FindingIdentifiers = batch
		out, err := hub.BatchUpdateFindings(ctx, &params)
		if err != nil {
			return nil, err
		}
		r.ProcessedFindings = append(r.ProcessedFindings, out.ProcessedFindings...)
		r.UnprocessedFindings = append(r.UnprocessedFindings, out.UnprocessedFindings...)
	}
	return r, nil
}
