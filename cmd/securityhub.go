// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/hub"
	"github.com/awslabs/shkin/output"
	"github.com/spf13/cobra"
)

func newSecurityHubCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "securityhub",
		Aliases: []string{"shub"},
		Short:   "AWS Security Hub operations",
	}
	c.AddCommand(
		newAcceptAdministratorInvitationCmd(a),
		newBatchDisableStandardsCmd(a),
		newBatchEnableStandardsCmd(a),
		newBatchImportFindingsCmd(a),
		newBatchUpdateFindingsCmd(a),
		newCreateActionTargetCmd(a),
		newCreateInsightCmd(a),
		newCreateMembersCmd(a),
		newDeclineInvitationsCmd(a),
		newDeleteActionTargetCmd(a),
		newDeleteInsightCmd(a),
		newDeleteInvitationsCmd(a),
		newDeleteMembersCmd(a),
		newDescribeActionTargetsCmd(a),
		newDescribeHubCmd(a),
		newDescribeProductsCmd(a),
		newDisableImportFindingsForProductCmd(a),
		newDisableSecurityHubCmd(a),
		newDisassociateFromAdministratorAccountCmd(a),
		newDisassociateMembersCmd(a),
		newEnableImportFindingsForProductCmd(a),
		newEnableSecurityHubCmd(a),
		newGetAdministratorAccountCmd(a),
		newGetEnabledStandardsCmd(a),
		newGetFindingsCmd(a),
		newGetInsightResultsCmd(a),
		newGetInsightsCmd(a),
		newGetInvitationsCountCmd(a),
		newGetMembersCmd(a),
		newInviteMembersCmd(a),
		newListEnabledProductsForImportCmd(a),
		newListInvitationsCmd(a),
		newListMembersCmd(a),
		newListTagsForResourceCmd(a),
		newTagResourceCmd(a),
		newUntagResourceCmd(a),
		newUpdateActionTargetCmd(a),
		newUpdateInsightCmd(a),
		newUpdateSecurityHubConfigurationCmd(a),
	)
	return c
}

func hubOp(name string, impact confirm.Impact, selector string) op {
	return op{service: "securityhub", name: name, impact: impact, selector: selector}
}

// hubCall resolves the Security Hub client before calling fn.
func (a *app) hubCall(fn func(ctx context.Context, h hub.Hub, target string) (any, error)) call {
	return func(ctx context.Context, target string) (any, error) {
		h, err := a.clients.SecurityHub(ctx)
		if err != nil {
			return nil, err
		}
		return fn(ctx, h, target)
	}
}

// accountTarget labels a call made for the current account.
const accountTarget = "account"

// regionTarget labels a call that applies to the whole region.
func (a *app) regionTarget() string {
	if r := a.region(); r != "" {
		return r
	}
	return "default region"
}

// listTarget labels a single call covering several items.
func listTarget(items []string) string {
	if len(items) == 0 {
		return accountTarget
	}
	return strings.Join(items, ", ")
}

// unprocessed counts the items a batch response reports as not processed.
func unprocessed(r any) int {
	switch o := r.(type) {
	case *securityhub.CreateMembersOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.DeclineInvitationsOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.DeleteInvitationsOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.DeleteMembersOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.GetMembersOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.InviteMembersOutput:
		return len(o.UnprocessedAccounts)
	case *securityhub.BatchUpdateFindingsOutput:
		return len(o.UnprocessedFindings)
	case *hub.ImportResult:
		return o.FailedCount
	}
	return 0
}

func newAcceptAdministratorInvitationCmd(a *app) *cobra.Command {
	var adminID, invitationID string
	c := &cobra.Command{
		Use:     "accept-administrator-invitation",
		Aliases: []string{"Confirm-SHUBInvitation"},
		Short:   "Accept the invitation of an administrator account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("AcceptAdministratorInvitation", confirm.Medium, output.None), adminID, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.AcceptAdministratorInvitation(ctx, &securityhub.AcceptAdministratorInvitationInput{
					AdministratorId: aws.String(target),
					InvitationId:    aws.String(invitationID),
				})
			}))
		},
	}
	c.Flags().StringVar(&adminID, "administrator-id", "", "account id of the administrator")
	c.Flags().StringVar(&invitationID, "invitation-id", "", "id of the invitation")
	_ = c.MarkFlagRequired("administrator-id")
	_ = c.MarkFlagRequired("invitation-id")
	return c
}

func newDescribeHubCmd(a *app) *cobra.Command {
	var hubArn string
	c := &cobra.Command{
		Use:     "describe-hub",
		Aliases: []string{"Get-SHUBHub"},
		Short:   "Describe the hub of the account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("DescribeHub", confirm.None, output.All), accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DescribeHub(ctx, &securityhub.DescribeHubInput{HubArn: optString(hubArn)})
			}))
		},
	}
	c.Flags().StringVar(&hubArn, "hub-arn", "", "ARN of the hub, default is the hub of the account")
	return c
}

func newDisableSecurityHubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "disable-security-hub",
		Aliases: []string{"Disable-SHUBSecurityHub"},
		Short:   "Disable Security Hub in the region",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("DisableSecurityHub", confirm.High, output.None), a.regionTarget(), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DisableSecurityHub(ctx, &securityhub.DisableSecurityHubInput{})
			}))
		},
	}
}

func newEnableSecurityHubCmd(a *app) *cobra.Command {
	var (
		defaults  bool
		generator string
		tags      map[string]string
	)
	c := &cobra.Command{
		Use:     "enable-security-hub",
		Aliases: []string{"Enable-SHUBSecurityHub"},
		Short:   "Enable Security Hub in the region",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := enum("control-finding-generator", generator, types.ControlFindingGenerator("").Values())
			if err != nil {
				return err
			}
			return a.run(cmd, hubOp("EnableSecurityHub", confirm.Medium, output.None), a.regionTarget(), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.EnableSecurityHub(ctx, &securityhub.EnableSecurityHubInput{
					EnableDefaultStandards:  optBool(cmd, "enable-default-standards", defaults),
					ControlFindingGenerator: g,
					Tags:                    tags,
				})
			}))
		},
	}
	c.Flags().BoolVar(&defaults, "enable-default-standards", true, "enable the default security standards")
	c.Flags().StringVar(&generator, "control-finding-generator", "", "STANDARD_CONTROL or SECURITY_CONTROL")
	c.Flags().StringToStringVar(&tags, "tags", nil, "hub tags as key=value pairs")
	return c
}

func newUpdateSecurityHubConfigurationCmd(a *app) *cobra.Command {
	var (
		autoEnable bool
		generator  string
	)
	c := &cobra.Command{
		Use:     "update-security-hub-configuration",
		Aliases: []string{"Update-SHUBSecurityHubConfiguration"},
		Short:   "Change the configuration of the hub",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := enum("control-finding-generator", generator, types.ControlFindingGenerator("").Values())
			if err != nil {
				return err
			}
			return a.run(cmd, hubOp("UpdateSecurityHubConfiguration", confirm.Medium, output.None), a.regionTarget(), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.UpdateSecurityHubConfiguration(ctx, &securityhub.UpdateSecurityHubConfigurationInput{
					AutoEnableControls:      optBool(cmd, "auto-enable-controls", autoEnable),
					ControlFindingGenerator: g,
				})
			}))
		},
	}
	c.Flags().BoolVar(&autoEnable, "auto-enable-controls", true, "enable new controls of enabled standards automatically")
	c.Flags().StringVar(&generator, "control-finding-generator", "", "STANDARD_CONTROL or SECURITY_CONTROL")
	return c
}

func newGetAdministratorAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get-administrator-account",
		Aliases: []string{"Get-SHUBAdministratorAccount"},
		Short:   "Show the administrator account of this member account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("GetAdministratorAccount", confirm.None, "Administrator"), accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.GetAdministratorAccount(ctx, &securityhub.GetAdministratorAccountInput{})
			}))
		},
	}
}

func newDisassociateFromAdministratorAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "disassociate-from-administrator-account",
		Aliases: []string{"Unregister-SHUBFromAdministratorAccount"},
		Short:   "Leave the administrator account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("DisassociateFromAdministratorAccount", confirm.High, output.None), accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DisassociateFromAdministratorAccount(ctx, &securityhub.DisassociateFromAdministratorAccountInput{})
			}))
		},
	}
}

func newListTagsForResourceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-tags-for-resource RESOURCE-ARN...",
		Aliases: []string{"Get-SHUBResourceTag"},
		Short:   "List the tags of one or more resources",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("ListTagsForResource", confirm.None, "Tags"), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.ListTagsForResource(ctx, &securityhub.ListTagsForResourceInput{ResourceArn: aws.String(target)})
			}))
		},
	}
}

func newTagResourceCmd(a *app) *cobra.Command {
	var tags map[string]string
	c := &cobra.Command{
		Use:     "tag-resource RESOURCE-ARN",
		Aliases: []string{"Add-SHUBResourceTag"},
		Short:   "Add tags to a resource",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("TagResource", confirm.Medium, output.None), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.TagResource(ctx, &securityhub.TagResourceInput{ResourceArn: aws.String(target), Tags: tags})
			}))
		},
	}
	c.Flags().StringToStringVar(&tags, "tags", nil, "tags as key=value pairs")
	_ = c.MarkFlagRequired("tags")
	return c
}

func newUntagResourceCmd(a *app) *cobra.Command {
	var keys []string
	c := &cobra.Command{
		Use:     "untag-resource RESOURCE-ARN",
		Aliases: []string{"Remove-SHUBResourceTag"},
		Short:   "Remove tags from a resource",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("UntagResource", confirm.High, output.None), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.UntagResource(ctx, &securityhub.UntagResourceInput{ResourceArn: aws.String(target), TagKeys: keys})
			}))
		},
	}
	c.Flags().StringSliceVar(&keys, "tag-keys", nil, "keys of the tags to remove")
	_ = c.MarkFlagRequired("tag-keys")
	return c
}
