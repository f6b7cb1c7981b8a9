// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package hub

import (
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
)

// FilterFlags builds finding filters from a JSON document and the
// shortcut flags. Shortcut values are EQUALS comparisons appended to the
// filters of the same field in the document.
type FilterFlags struct {
	Document         string
	SeverityLabels   []string
	WorkflowStatuses []string
	RecordStates     []string
	ProductNames     []string
	AwsAccountIds    []string
	ResourceTypes    []string
	ComplianceStatus []string
}

// Build returns nil when no filter was given.
func (f FilterFlags) Build(stdin io.Reader) (*types.AwsSecurityFindingFilters, error) {
	filters := &types.AwsSecurityFindingFilters{}
	empty := true
	if f.Document != "" {
		if err := DecodeDocument(f.Document, stdin, filters); err != nil {
			return nil, err
		}
		empty = false
	}
	for _, s := range []struct {
		values []string
		field  *[]types.StringFilter
	}{
		{f.SeverityLabels, &filters.SeverityLabel},
		{f.WorkflowStatuses, &filters.WorkflowStatus},
		{f.RecordStates, &filters.RecordState},
		{f.ProductNames, &filters.ProductName},
		{f.AwsAccountIds, &filters.AwsAccountId},
		{f.ResourceTypes, &filters.ResourceType},
		{f.ComplianceStatus, &filters.ComplianceStatus},
	} {
		for _, v := range s.values {
			*s.field = append(*s.field, Equals(v))
		}
		if len(s.values) > 0 {
			empty = false
		}
	}
	if empty {
		return nil, nil
	}
	return filters, nil
}

// Equals is a string filter matching value exactly.
func Equals(value string) types.StringFilter {
	return types.StringFilter{
		Comparison: types.StringFilterComparisonEquals,
		Value:      aws.String(value),
	}
}
