// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package hub

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/awslabs/shkin/paginate"
)

// Largest page sizes accepted by the service.
const (
	MaxFindingsResults                 int32 = 100
	MaxInsightsResults                 int32 = 100
	MaxMembersResults                  int32 = 50
	MaxInvitationsResults              int32 = 50
	MaxActionTargetsResults            int32 = 100
	MaxProductsResults                 int32 = 100
	MaxEnabledStandardsResults         int32 = 100
	MaxEnabledProductsForImportResults int32 = 100
)

// list pages through a Security Hub NextToken operation. request builds the
// input for one page and items reads its results and next token.
func list[I, O, T any](
	ctx context.Context,
	opts paginate.Options,
	maxPage int32,
	call func(context.Context, *I, ...func(*securityhub.Options)) (*O, error),
	request func(token *string, size *int32) *I,
	items func(*O) ([]T, *string),
) (*paginate.Result[T], error) {
	return paginate.Collect(ctx, opts, maxPage, func(ctx context.Context, token *string, size *int32) (paginate.Page[T], error) {
		out, err := call(ctx, request(token, size))
		if err != nil {
			return paginate.Page[T]{}, err
		}
		page, next := items(out)
		return paginate.Page[T]{Items: page, NextToken: next}, nil
	})
}

// GetFindings returns the findings matching input, up to opts.MaxItems.
func GetFindings(ctx context.Context, hub Hub, input *securityhub.GetFindingsInput, opts paginate.Options) (*securityhub.GetFindingsOutput, error) {
	r, err := list(ctx, opts, MaxFindingsResults, hub.GetFindings,
		func(token *string, size *int32) *securityhub.GetFindingsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.GetFindingsOutput) ([]types.AwsSecurityFinding, *string) {
			return out.Findings, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.GetFindingsOutput{Findings: r.Items, NextToken: r.NextToken}, nil
}

// GetInsights returns the insights named by input, or all of them.
func GetInsights(ctx context.Context, hub Hub, input *securityhub.GetInsightsInput, opts paginate.Options) (*securityhub.GetInsightsOutput, error) {
	r, err := list(ctx, opts, MaxInsightsResults, hub.GetInsights,
		func(token *string, size *int32) *securityhub.GetInsightsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.GetInsightsOutput) ([]types.Insight, *string) {
			return out.Insights, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.GetInsightsOutput{Insights: r.Items, NextToken: r.NextToken}, nil
}

// ListMembers returns the member accounts of the administrator.
func ListMembers(ctx context.Context, hub Hub, input *securityhub.ListMembersInput, opts paginate.Options) (*securityhub.ListMembersOutput, error) {
	r, err := list(ctx, opts, MaxMembersResults, hub.ListMembers,
		func(token *string, size *int32) *securityhub.ListMembersInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.ListMembersOutput) ([]types.Member, *string) {
			return out.Members, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.ListMembersOutput{Members: r.Items, NextToken: r.NextToken}, nil
}

// ListInvitations returns the invitations sent to this account.
func ListInvitations(ctx context.Context, hub Hub, input *securityhub.ListInvitationsInput, opts paginate.Options) (*securityhub.ListInvitationsOutput, error) {
	r, err := list(ctx, opts, MaxInvitationsResults, hub.ListInvitations,
		func(token *string, size *int32) *securityhub.ListInvitationsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.ListInvitationsOutput) ([]types.Invitation, *string) {
			return out.Invitations, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.ListInvitationsOutput{Invitations: r.Items, NextToken: r.NextToken}, nil
}

// DescribeActionTargets returns the custom action targets named by input, or
// all of them.
func DescribeActionTargets(ctx context.Context, hub Hub, input *securityhub.DescribeActionTargetsInput, opts paginate.Options) (*securityhub.DescribeActionTargetsOutput, error) {
	r, err := list(ctx, opts, MaxActionTargetsResults, hub.DescribeActionTargets,
		func(token *string, size *int32) *securityhub.DescribeActionTargetsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.DescribeActionTargetsOutput) ([]types.ActionTarget, *string) {
			return out.ActionTargets, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.DescribeActionTargetsOutput{ActionTargets: r.Items, NextToken: r.NextToken}, nil
}

// DescribeProducts returns the integrations available in the region.
func DescribeProducts(ctx context.Context, hub Hub, input *securityhub.DescribeProductsInput, opts paginate.Options) (*securityhub.DescribeProductsOutput, error) {
	r, err := list(ctx, opts, MaxProductsResults, hub.DescribeProducts,
		func(token *string, size *int32) *securityhub.DescribeProductsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.DescribeProductsOutput) ([]types.Product, *string) {
			return out.Products, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.DescribeProductsOutput{Products: r.Items, NextToken: r.NextToken}, nil
}

// GetEnabledStandards returns the enabled standards subscriptions.
func GetEnabledStandards(ctx context.Context, hub Hub, input *securityhub.GetEnabledStandardsInput, opts paginate.Options) (*securityhub.GetEnabledStandardsOutput, error) {
	r, err := list(ctx, opts, MaxEnabledStandardsResults, hub.GetEnabledStandards,
		func(token *string, size *int32) *securityhub.GetEnabledStandardsInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.GetEnabledStandardsOutput) ([]types.StandardsSubscription, *string) {
			return out.StandardsSubscriptions, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.GetEnabledStandardsOutput{StandardsSubscriptions: r.Items, NextToken: r.NextToken}, nil
}

// ListEnabledProductsForImport returns the ARNs of product subscriptions that
// can import findings.
func ListEnabledProductsForImport(ctx context.Context, hub Hub, input *securityhub.ListEnabledProductsForImportInput, opts paginate.Options) (*securityhub.ListEnabledProductsForImportOutput, error) {
	r, err := list(ctx, opts, MaxEnabledProductsForImportResults, hub.ListEnabledProductsForImport,
		func(token *string, size *int32) *securityhub.ListEnabledProductsForImportInput {
			params := *input
			params.NextToken, params.MaxResults = token, size
			return &params
		},
		func(out *securityhub.ListEnabledProductsForImportOutput) ([]string, *string) {
			return out.ProductSubscriptions, out.NextToken
		})
	if err != nil {
		return nil, err
	}
	return &securityhub.ListEnabledProductsForImportOutput{ProductSubscriptions: r.Items, NextToken: r.NextToken}, nil
}
