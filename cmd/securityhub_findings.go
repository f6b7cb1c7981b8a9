// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/hub"
	"github.com/awslabs/shkin/output"
	"github.com/spf13/cobra"
)

var errNoChange = errors.New("nothing to update")

func addFilterFlags(cmd *cobra.Command, f *hub.FilterFlags) {
	cmd.Flags().StringVar(&f.Document, "filters", "", "AwsSecurityFindingFilters as JSON, @file or @- for stdin")
	cmd.Flags().StringSliceVar(&f.SeverityLabels, "severity-label", nil, "match severity labels")
	cmd.Flags().StringSliceVar(&f.WorkflowStatuses, "workflow-status", nil, "match workflow statuses")
	cmd.Flags().StringSliceVar(&f.RecordStates, "record-state", nil, "match record states")
	cmd.Flags().StringSliceVar(&f.ProductNames, "product-name", nil, "match product names")
	cmd.Flags().StringSliceVar(&f.AwsAccountIds, "aws-account-id", nil, "match account ids")
	cmd.Flags().StringSliceVar(&f.ResourceTypes, "resource-type", nil, "match resource types")
	cmd.Flags().StringSliceVar(&f.ComplianceStatus, "compliance-status", nil, "match compliance statuses")
}

func newGetFindingsCmd(a *app) *cobra.Command {
	var (
		filters hub.FilterFlags
		sort    string
		pages   pageFlags
	)
	c := &cobra.Command{
		Use:     "get-findings",
		Aliases: []string{"Get-SHUBFinding"},
		Short:   "List findings matching filters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filters.Build(a.in)
			if err != nil {
				return err
			}
			criteria, err := hub.ParseSortCriteria(sort)
			if err != nil {
				return err
			}
			o := hubOp("GetFindings", confirm.None, "Findings")
			o.paged = true
			return a.run(cmd, o, accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.GetFindings(ctx, h, &securityhub.GetFindingsInput{Filters: f, SortCriteria: criteria}, pages.options())
			}))
		},
	}
	addFilterFlags(c, &filters)
	addPageFlags(c, &pages)
	c.Flags().StringVar(&sort, "sort", "", "sort criteria such as UpdatedAt:desc,SeverityNormalized:asc")
	return c
}

func newBatchImportFindingsCmd(a *app) *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:     "batch-import-findings",
		Aliases: []string{"Import-SHUBFindingsBatch"},
		Short:   "Import findings in the AWS Security Finding Format",
		Long:    "Import findings from a JSON array or a {\"Findings\": [...]} document, 100 findings per call.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.openInput(file)
			if err != nil {
				return err
			}
			findings, err := hub.ReadFindings(f)
			f.Close()
			if err != nil {
				return err
			}
			o := hubOp("BatchImportFindings", confirm.Medium, output.All)
			o.failed = unprocessed
			return a.run(cmd, o, file, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				bar := a.newBar(len(findings))
				defer bar.Finish()
				return hub.ImportFindings(ctx, h, findings, func(n int) { bar.Add(n) })
			}))
		},
	}
	c.Flags().StringVar(&file, "findings-file", "", "file with the findings, - for stdin")
	_ = c.MarkFlagRequired("findings-file")
	return c
}

func newBatchUpdateFindingsCmd(a *app) *cobra.Command {
	var (
		noteText          string
		noteUpdatedBy     string
		severity          string
		workflow          string
		verification      string
		confidence        int32
		criticality       int32
		findingTypes      []string
		userDefinedFields map[string]string
	)
	c := &cobra.Command{
		Use:     "batch-update-findings FINDING-ID@PRODUCT-ARN...",
		Aliases: []string{"Update-SHUBFindingsBatch"},
		Short:   "Update the customer controlled fields of findings",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := hub.ParseFindingIdentifiers(args)
			if err != nil {
				return err
			}
			input := &securityhub.BatchUpdateFindingsInput{
				Confidence:        optInt32(cmd, "confidence", confidence),
				Criticality:       optInt32(cmd, "criticality", criticality),
				Types:             findingTypes,
				UserDefinedFields: userDefinedFields,
			}
			if noteText != "" {
				input.Note = &types.NoteUpdate{Text: aws.String(noteText), UpdatedBy: aws.String(noteUpdatedBy)}
			}
			label, err := enum("severity-label", severity, types.SeverityLabel("").Values())
			if err != nil {
				return err
			}
			if label != "" {
				input.Severity = &types.SeverityUpdate{Label: label}
			}
			status, err := enum("workflow-status", workflow, types.WorkflowStatus("").Values())
			if err != nil {
				return err
			}
			if status != "" {
				input.Workflow = &types.WorkflowUpdate{Status: status}
			}
			if input.VerificationState, err = enum("verification-state", verification, types.VerificationState("").Values()); err != nil {
				return err
			}
			if !updatesFindings(input) {
				return errNoChange
			}
			o := hubOp("BatchUpdateFindings", confirm.Medium, output.All)
			o.failed = unprocessed
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.UpdateFindings(ctx, h, input, ids)
			}))
		},
	}
	c.Flags().StringVar(&noteText, "note-text", "", "note to add")
	c.Flags().StringVar(&noteUpdatedBy, "note-updated-by", "shkin", "author of the note")
	c.Flags().StringVar(&severity, "severity-label", "", "INFORMATIONAL, LOW, MEDIUM, HIGH or CRITICAL")
	c.Flags().StringVar(&workflow, "workflow-status", "", "NEW, NOTIFIED, RESOLVED or SUPPRESSED")
	c.Flags().StringVar(&verification, "verification-state", "", "UNKNOWN, TRUE_POSITIVE, FALSE_POSITIVE or BENIGN_POSITIVE")
	c.Flags().Int32Var(&confidence, "confidence", 0, "confidence from 0 to 100")
	c.Flags().Int32Var(&criticality, "criticality", 0, "criticality from 0 to 100")
	c.Flags().StringSliceVar(&findingTypes, "types", nil, "finding types")
	c.Flags().StringToStringVar(&userDefinedFields, "user-defined-fields", nil, "user defined fields as key=value pairs")
	return c
}

func updatesFindings(in *securityhub.BatchUpdateFindingsInput) bool {
	return in.Note != nil || in.Severity != nil || in.Workflow != nil ||
		in.VerificationState != "" || in.Confidence != nil || in.Criticality != nil ||
		len(in.Types) > 0 || len(in.UserDefinedFields) > 0
}

func newCreateInsightCmd(a *app) *cobra.Command {
	var (
		filters hub.FilterFlags
		groupBy string
	)
	c := &cobra.Command{
		Use:     "create-insight NAME",
		Aliases: []string{"New-SHUBInsight"},
		Short:   "Create a custom insight",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filters.Build(a.in)
			if err != nil {
				return err
			}
			if f == nil {
				f = &types.AwsSecurityFindingFilters{}
			}
			return a.run(cmd, hubOp("CreateInsight", confirm.Medium, "InsightArn"), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.CreateInsight(ctx, &securityhub.CreateInsightInput{
					Name:             aws.String(target),
					GroupByAttribute: aws.String(groupBy),
					Filters:          f,
				})
			}))
		},
	}
	addFilterFlags(c, &filters)
	c.Flags().StringVar(&groupBy, "group-by-attribute", "", "finding attribute to group results by, such as ResourceId")
	_ = c.MarkFlagRequired("group-by-attribute")
	return c
}

func newUpdateInsightCmd(a *app) *cobra.Command {
	var (
		filters hub.FilterFlags
		groupBy string
		name    string
	)
	c := &cobra.Command{
		Use:     "update-insight INSIGHT-ARN",
		Aliases: []string{"Update-SHUBInsight"},
		Short:   "Change a custom insight",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filters.Build(a.in)
			if err != nil {
				return err
			}
			if f == nil && name == "" && groupBy == "" {
				return errNoChange
			}
			return a.run(cmd, hubOp("UpdateInsight", confirm.Medium, output.None), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.UpdateInsight(ctx, &securityhub.UpdateInsightInput{
					InsightArn:       aws.String(target),
					Name:             optString(name),
					GroupByAttribute: optString(groupBy),
					Filters:          f,
				})
			}))
		},
	}
	addFilterFlags(c, &filters)
	c.Flags().StringVar(&groupBy, "group-by-attribute", "", "finding attribute to group results by")
	c.Flags().StringVar(&name, "name", "", "new name")
	return c
}

func newDeleteInsightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-insight INSIGHT-ARN...",
		Aliases: []string{"Remove-SHUBInsight"},
		Short:   "Delete one or more custom insights",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("DeleteInsight", confirm.High, "InsightArn"), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DeleteInsight(ctx, &securityhub.DeleteInsightInput{InsightArn: aws.String(target)})
			}))
		},
	}
}

func newGetInsightsCmd(a *app) *cobra.Command {
	var pages pageFlags
	c := &cobra.Command{
		Use:     "get-insights [INSIGHT-ARN...]",
		Aliases: []string{"Get-SHUBInsight"},
		Short:   "List insights, or describe the given ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("GetInsights", confirm.None, "Insights")
			o.paged = true
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.GetInsights(ctx, h, &securityhub.GetInsightsInput{InsightArns: args}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	return c
}

func newGetInsightResultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get-insight-results INSIGHT-ARN...",
		Aliases: []string{"Get-SHUBInsightResult"},
		Short:   "Show the results of one or more insights",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("GetInsightResults", confirm.None, "InsightResults"), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.GetInsightResults(ctx, &securityhub.GetInsightResultsInput{InsightArn: aws.String(target)})
			}))
		},
	}
}

func newCreateActionTargetCmd(a *app) *cobra.Command {
	var name, description string
	c := &cobra.Command{
		Use:     "create-action-target ID",
		Aliases: []string{"New-SHUBActionTarget"},
		Short:   "Create a custom action target for EventBridge",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("CreateActionTarget", confirm.Medium, "ActionTargetArn"), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.CreateActionTarget(ctx, &securityhub.CreateActionTargetInput{
					Id:          aws.String(target),
					Name:        aws.String(name),
					Description: aws.String(description),
				})
			}))
		},
	}
	c.Flags().StringVar(&name, "name", "", "name of the action target")
	c.Flags().StringVar(&description, "description", "", "description of the action target")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("description")
	return c
}

func newUpdateActionTargetCmd(a *app) *cobra.Command {
	var name, description string
	c := &cobra.Command{
		Use:     "update-action-target ACTION-TARGET-ARN",
		Aliases: []string{"Update-SHUBActionTarget"},
		Short:   "Rename or describe a custom action target",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && description == "" {
				return errNoChange
			}
			return a.run(cmd, hubOp("UpdateActionTarget", confirm.Medium, output.None), args[0], a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.UpdateActionTarget(ctx, &securityhub.UpdateActionTargetInput{
					ActionTargetArn: aws.String(target),
					Name:            optString(name),
					Description:     optString(description),
				})
			}))
		},
	}
	c.Flags().StringVar(&name, "name", "", "new name")
	c.Flags().StringVar(&description, "description", "", "new description")
	return c
}

func newDeleteActionTargetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-action-target ACTION-TARGET-ARN...",
		Aliases: []string{"Remove-SHUBActionTarget"},
		Short:   "Delete one or more custom action targets",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("DeleteActionTarget", confirm.High, "ActionTargetArn"), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DeleteActionTarget(ctx, &securityhub.DeleteActionTargetInput{ActionTargetArn: aws.String(target)})
			}))
		},
	}
}

func newDescribeActionTargetsCmd(a *app) *cobra.Command {
	var pages pageFlags
	c := &cobra.Command{
		Use:     "describe-action-targets [ACTION-TARGET-ARN...]",
		Aliases: []string{"Get-SHUBActionTarget"},
		Short:   "List custom action targets, or describe the given ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("DescribeActionTargets", confirm.None, "ActionTargets")
			o.paged = true
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.DescribeActionTargets(ctx, h, &securityhub.DescribeActionTargetsInput{ActionTargetArns: args}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	return c
}

func newDescribeProductsCmd(a *app) *cobra.Command {
	var (
		pages      pageFlags
		productArn string
	)
	c := &cobra.Command{
		Use:     "describe-products",
		Aliases: []string{"Get-SHUBProduct"},
		Short:   "List the product integrations available to the hub",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("DescribeProducts", confirm.None, "Products")
			o.paged = true
			return a.run(cmd, o, accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.DescribeProducts(ctx, h, &securityhub.DescribeProductsInput{ProductArn: optString(productArn)}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	c.Flags().StringVar(&productArn, "product-arn", "", "describe only this product")
	return c
}

func newEnableImportFindingsForProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "enable-import-findings-for-product PRODUCT-ARN...",
		Aliases: []string{"Enable-SHUBImportFindingsForProduct"},
		Short:   "Accept findings from one or more product integrations",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("EnableImportFindingsForProduct", confirm.Medium, "ProductSubscriptionArn"), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.EnableImportFindingsForProduct(ctx, &securityhub.EnableImportFindingsForProductInput{ProductArn: aws.String(target)})
			}))
		},
	}
}

func newDisableImportFindingsForProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "disable-import-findings-for-product PRODUCT-SUBSCRIPTION-ARN...",
		Aliases: []string{"Disable-SHUBImportFindingsForProduct"},
		Short:   "Stop findings from one or more product integrations",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEach(cmd, hubOp("DisableImportFindingsForProduct", confirm.High, output.None), args, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.DisableImportFindingsForProduct(ctx, &securityhub.DisableImportFindingsForProductInput{ProductSubscriptionArn: aws.String(target)})
			}))
		},
	}
}

func newListEnabledProductsForImportCmd(a *app) *cobra.Command {
	var pages pageFlags
	c := &cobra.Command{
		Use:     "list-enabled-products-for-import",
		Aliases: []string{"Get-SHUBEnabledProductsForImportList"},
		Short:   "List the product subscriptions that send findings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := hubOp("ListEnabledProductsForImport", confirm.None, "ProductSubscriptions")
			o.paged = true
			return a.run(cmd, o, accountTarget, a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.ListEnabledProductsForImport(ctx, h, &securityhub.ListEnabledProductsForImportInput{}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	return c
}

func newBatchEnableStandardsCmd(a *app) *cobra.Command {
	var standardsInput map[string]string
	c := &cobra.Command{
		Use:     "batch-enable-standards STANDARDS-ARN...",
		Aliases: []string{"Enable-SHUBStandardsBatch"},
		Short:   "Enable one or more security standards",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests := make([]types.StandardsSubscriptionRequest, 0, len(args))
			for _, arn := range args {
				requests = append(requests, types.StandardsSubscriptionRequest{
					StandardsArn:   aws.String(arn),
					StandardsInput: standardsInput,
				})
			}
			return a.run(cmd, hubOp("BatchEnableStandards", confirm.Medium, "StandardsSubscriptions"), listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.BatchEnableStandards(ctx, &securityhub.BatchEnableStandardsInput{StandardsSubscriptionRequests: requests})
			}))
		},
	}
	c.Flags().StringToStringVar(&standardsInput, "standards-input", nil, "standard parameters as key=value pairs")
	return c
}

func newBatchDisableStandardsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "batch-disable-standards STANDARDS-SUBSCRIPTION-ARN...",
		Aliases: []string{"Disable-SHUBStandardsBatch"},
		Short:   "Disable one or more security standards",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, hubOp("BatchDisableStandards", confirm.High, "StandardsSubscriptions"), listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return h.BatchDisableStandards(ctx, &securityhub.BatchDisableStandardsInput{StandardsSubscriptionArns: args})
			}))
		},
	}
}

func newGetEnabledStandardsCmd(a *app) *cobra.Command {
	var pages pageFlags
	c := &cobra.Command{
		Use:     "get-enabled-standards [STANDARDS-SUBSCRIPTION-ARN...]",
		Aliases: []string{"Get-SHUBEnabledStandard"},
		Short:   "List enabled standards, or describe the given subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && pages.nextToken != "" {
				return errors.New("--next-token cannot be combined with subscription ARNs")
			}
			o := hubOp("GetEnabledStandards", confirm.None, "StandardsSubscriptions")
			o.paged = true
			return a.run(cmd, o, listTarget(args), a.hubCall(func(ctx context.Context, h hub.Hub, target string) (any, error) {
				return hub.GetEnabledStandards(ctx, h, &securityhub.GetEnabledStandardsInput{StandardsSubscriptionArns: args}, pages.options())
			}))
		},
	}
	addPageFlags(c, &pages)
	return c
}
