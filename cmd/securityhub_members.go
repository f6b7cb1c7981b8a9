// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/hub"
	"github.com/awslabs/shkin/output"
	"github.com/spf13/cobra"
)

// newAccountsCmd builds a command that sends every account id given as an
// argument in one call.
func newAccountsCmd(a *app, use, alias, short, operation string, impact confirm.Impact, send func(ctx context.Context, h hub.Hub, accountIDs []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use + " ACCOUNT-ID...",
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp(operation, impact, "UnprocessedAccounts")
			o.failed = unprocessed
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return send(ctx, h, args)
			}))
		},
	}
}

func newCreateMembersCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "create-members ACCOUNT-ID[=EMAIL]...",
		Aliases: []string{"New-SHUBMember"},
		Short:   "Add member accounts to the administrator account",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := hub.ParseAccountDetails(args)
			if err != nil {
				return err
			}
			o := hubOp("CreateMembers", confirm.Medium, "UnprocessedAccounts")
			o.failed = unprocessed
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.CreateMembers(ctx, &securityhub.CreateMembersInput{AccountDetails: details})
			}))
		},
	}
	return c
}

func newDeclineInvitationsCmd(a *app) *cobra.Command {
	return newAccountsCmd(a, "decline-invitations", "Deny-SHUBInvitation",
		"Decline the invitations of administrator accounts", "DeclineInvitations", confirm.Medium,
		func(ctx context.Context, h hub.Hub, ids []string) (any, error) {
			return h.DeclineInvitations(ctx, &securityhub.DeclineInvitationsInput{AccountIds: ids})
		})
}

func newDeleteInvitationsCmd(a *app) *cobra.Command {
	return newAccountsCmd(a, "delete-invitations", "Remove-SHUBInvitation",
		"Delete the invitations of administrator accounts", "DeleteInvitations", confirm.High,
		func(ctx context.Context, h hub.Hub, ids []string) (any, error) {
			return h.DeleteInvitations(ctx, &securityhub.DeleteInvitationsInput{AccountIds: ids})
		})
}

func newDeleteMembersCmd(a *app) *cobra.Command {
	return newAccountsCmd(a, "delete-members", "Remove-SHUBMember",
		"Delete member accounts", "DeleteMembers", confirm.High,
		func(ctx context.Context, h hub.Hub, ids []string) (any, error) {
			return h.DeleteMembers(ctx, &securityhub.DeleteMembersInput{AccountIds: ids})
		})
}

func newInviteMembersCmd(a *app) *cobra.Command {
	return newAccountsCmd(a, "invite-members", "Invoke-SHUBMember",
		"Invite member accounts", "InviteMembers", confirm.Medium,
		func(ctx context.Context, h hub.Hub, ids []string) (any, error) {
			return h.InviteMembers(ctx, &securityhub.InviteMembersInput{AccountIds: ids})
		})
}

func newDisassociateMembersCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "disassociate-members ACCOUNT-ID...",
		Aliases: []string{"Unregister-SHUBMember"},
		Short:   "Disassociate member accounts from the administrator account",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("DisassociateMembers", confirm.High, output.None), listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DisassociateMembers(ctx, &securityhub.DisassociateMembersInput{AccountIds: args})
			}))
		},
	}
	return c
}

func newGetMembersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get-members ACCOUNT-ID...",
		Aliases: []string{"Get-SHUBMember"},
		Short:   "Describe member accounts",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("GetMembers", confirm.None, "Members")
			o.failed = unprocessed
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.GetMembers(ctx, &securityhub.GetMembersInput{AccountIds: args})
			}))
		},
	}
}

func newListMembersCmd(a *app) *cobra.Command {
	var (
		pages          pageFlags
		onlyAssociated bool
	)
	c := &cobra.Command{
		Use:     "list-members",
		Aliases: []string{"Get-SHUBMemberList"},
		Short:   "List member accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("ListMembers", confirm.None, "Members")
			o.paged = true
			return a.run(cmd, o, accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.ListMembers(ctx, h, &securityhub.ListMembersInput{
					OnlyAssociated: optBool(cmd, "only-associated", onlyAssociated),
				}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	c.Flags().BoolVar(&onlyAssociated, "only-associated", true, "list only members whose status is ENABLED")
	return c
}

func newListInvitationsCmd(a *app) *cobra.Command {
	var pages pageFlags
	c := &cobra.Command{
		Use:     "list-invitations",
		Aliases: []string{"Get-SHUBInvitationList"},
		Short:   "List the invitations sent to this account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("ListInvitations", confirm.None, "Invitations")
			o.paged = true
			return a.run(cmd, o, accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.ListInvitations(ctx, h, &securityhub.ListInvitationsInput{}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	return c
}

func newGetInvitationsCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get-invitations-count",
		Aliases: []string{"Get-SHUBInvitationsCount"},
		Short:   "Count the invitations sent to this account, excluding the accepted one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("GetInvitationsCount", confirm.None, "InvitationsCount"), accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.GetInvitationsCount(ctx, &securityhub.GetInvitationsCountInput{})
			}))
		},
	}
}
