// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package hub wraps the Security Hub operations that need more than a
// single request: paginated listings, finding filters and batched imports.
package hub

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/securityhub"
)

//go:generate mockgen -destination=mocks/mock_hub.go -package=mocks github.com/awslabs/shkin/hub Hub

// Hub is the subset of the Security Hub client used by shkin.
// *securityhub.Client satisfies it.
type Hub interface {
	AcceptAdministratorInvitation(ctx context.Context, params *securityhub.AcceptAdministratorInvitationInput, optFns ...func(*securityhub.Options)) (*securityhub.AcceptAdministratorInvitationOutput, error)
	BatchDisableStandards(ctx context.Context, params *securityhub.BatchDisableStandardsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchDisableStandardsOutput, error)
	BatchEnableStandards(ctx context.Context, params *securityhub.BatchEnableStandardsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchEnableStandardsOutput, error)
	BatchImportFindings(ctx context.Context, params *securityhub.BatchImportFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchImportFindingsOutput, error)
	BatchUpdateFindings(ctx context.Context, params *securityhub.BatchUpdateFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchUpdateFindingsOutput, error)
	CreateActionTarget(ctx context.Context, params *securityhub.CreateActionTargetInput, optFns ...func(*securityhub.Options)) (*securityhub.CreateActionTargetOutput, error)
	CreateInsight(ctx context.Context, params *securityhub.CreateInsightInput, optFns ...func(*securityhub.Options)) (*securityhub.CreateInsightOutput, error)
	CreateMembers(ctx context.Context, params *securityhub.CreateMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.CreateMembersOutput, error)
	DeclineInvitations(ctx context.Context, params *securityhub.DeclineInvitationsInput, optFns ...func(*securityhub.Options)) (*securityhub.DeclineInvitationsOutput, error)
	DeleteActionTarget(ctx context.Context, params *securityhub.DeleteActionTargetInput, optFns ...func(*securityhub.Options)) (*securityhub.DeleteActionTargetOutput, error)
	DeleteInsight(ctx context.Context, params *securityhub.DeleteInsightInput, optFns ...func(*securityhub.Options)) (*securityhub.DeleteInsightOutput, error)
	DeleteInvitations(ctx context.Context, params *securityhub.DeleteInvitationsInput, optFns ...func(*securityhub.Options)) (*securityhub.DeleteInvitationsOutput, error)
	DeleteMembers(ctx context.Context, params *securityhub.DeleteMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.DeleteMembersOutput, error)
	DescribeActionTargets(ctx context.Context, params *securityhub.DescribeActionTargetsInput, optFns ...func(*securityhub.Options)) (*securityhub.DescribeActionTargetsOutput, error)
	DescribeHub(ctx context.Context, params *securityhub.DescribeHubInput, optFns ...func(*securityhub.Options)) (*securityhub.DescribeHubOutput, error)
	DescribeProducts(ctx context.Context, params *securityhub.DescribeProductsInput, optFns ...func(*securityhub.Options)) (*securityhub.DescribeProductsOutput, error)
	DisableImportFindingsForProduct(ctx context.Context, params *securityhub.DisableImportFindingsForProductInput, optFns ...func(*securityhub.Options)) (*securityhub.DisableImportFindingsForProductOutput, error)
	DisableSecurityHub(ctx context.Context, params *securityhub.DisableSecurityHubInput, optFns ...func(*securityhub.Options)) (*securityhub.DisableSecurityHubOutput, error)
	DisassociateFromAdministratorAccount(ctx context.Context, params *securityhub.DisassociateFromAdministratorAccountInput, optFns ...func(*securityhub.Options)) (*securityhub.DisassociateFromAdministratorAccountOutput, error)
	DisassociateMembers(ctx context.Context, params *securityhub.DisassociateMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.DisassociateMembersOutput, error)
	EnableImportFindingsForProduct(ctx context.Context, params *securityhub.EnableImportFindingsForProductInput, optFns ...func(*securityhub.Options)) (*securityhub.EnableImportFindingsForProductOutput, error)
	EnableSecurityHub(ctx context.Context, params *securityhub.EnableSecurityHubInput, optFns ...func(*securityhub.Options)) (*securityhub.EnableSecurityHubOutput, error)
	GetAdministratorAccount(ctx context.Context, params *securityhub.GetAdministratorAccountInput, optFns ...func(*securityhub.Options)) (*securityhub.GetAdministratorAccountOutput, error)
	GetEnabledStandards(ctx context.Context, params *securityhub.GetEnabledStandardsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetEnabledStandardsOutput, error)
	GetFindings(ctx context.Context, params *securityhub.GetFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetFindingsOutput, error)
	GetInsightResults(ctx context.Context, params *securityhub.GetInsightResultsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetInsightResultsOutput, error)
	GetInsights(ctx context.Context, params *securityhub.GetInsightsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetInsightsOutput, error)
	GetInvitationsCount(ctx context.Context, params *securityhub.GetInvitationsCountInput, optFns ...func(*securityhub.Options)) (*securityhub.GetInvitationsCountOutput, error)
	GetMembers(ctx context.Context, params *securityhub.GetMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.GetMembersOutput, error)
	InviteMembers(ctx context.Context, params *securityhub.InviteMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.InviteMembersOutput, error)
	ListEnabledProductsForImport(ctx context.Context, params *securityhub.ListEnabledProductsForImportInput, optFns ...func(*securityhub.Options)) (*securityhub.ListEnabledProductsForImportOutput, error)
	ListInvitations(ctx context.Context, params *securityhub.ListInvitationsInput, optFns ...func(*securityhub.Options)) (*securityhub.ListInvitationsOutput, error)
	ListMembers(ctx context.Context, params *securityhub.ListMembersInput, optFns ...func(*securityhub.Options)) (*securityhub.ListMembersOutput, error)
	ListTagsForResource(ctx context.Context, params *securityhub.ListTagsForResourceInput, optFns ...func(*securityhub.Options)) (*securityhub.ListTagsForResourceOutput, error)
	TagResource(ctx context.Context, params *securityhub.TagResourceInput, optFns ...func(*securityhub.Options)) (*securityhub.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *securityhub.UntagResourceInput, optFns ...func(*securityhub.Options)) (*securityhub.UntagResourceOutput, error)
	UpdateActionTarget(ctx context.Context, params *securityhub.UpdateActionTargetInput, optFns ...func(*securityhub.Options)) (*securityhub.UpdateActionTargetOutput, error)
	UpdateInsight(ctx context.Context, params *securityhub.UpdateInsightInput, optFns ...func(*securityhub.Options)) (*securityhub.UpdateInsightOutput, error)
	UpdateSecurityHubConfiguration(ctx context.Context, params *securityhub.UpdateSecurityHubConfigurationInput, optFns ...func(*securityhub.Options)) (*securityhub.UpdateSecurityHubConfigurationOutput, error)
}
