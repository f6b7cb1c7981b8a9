// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/awslabs/shkin/hub/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func hubMock(t *testing.T) *mocks.MockHub {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockHub(ctrl)
}

func TestGetFindingsFiltersAndSort(t *testing.T) {
	// Arrange
	h := hubMock(t)
	h.EXPECT().GetFindings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *securityhub.GetFindingsInput, _ ...func(*securityhub.Options)) (*securityhub.GetFindingsOutput, error) {
			require.NotNil(t, in.Filters)
			require.Len(t, in.Filters.SeverityLabel, 2)
			assert.Equal(t, "CRITICAL", aws.ToString(in.Filters.SeverityLabel[1].Value))
			require.Len(t, in.Filters.RecordState, 1)
			require.Len(t, in.SortCriteria, 1)
			assert.Equal(t, types.SortOrderAscending, in.SortCriteria[0].SortOrder)
			return &securityhub.GetFindingsOutput{Findings: []types.AwsSecurityFinding{{Id: aws.String("f-1")}}}, nil
		})

	// Act
	r := execute(t, &fakeClients{hub: h}, "", false, "securityhub", "get-findings",
		"--severity-label", "HIGH,CRITICAL", "--record-state", "ACTIVE", "--sort", "UpdatedAt:asc")

	// Assert
	require.NoError(t, r.err)
	assert.Equal(t, "f-1", gjson.Get(r.out, "0.Id").String())
}

func TestGetFindingsFilterDocumentFromStdin(t *testing.T) {
	h := hubMock(t)
	h.EXPECT().GetFindings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *securityhub.GetFindingsInput, _ ...func(*securityhub.Options)) (*securityhub.GetFindingsOutput, error) {
			require.NotNil(t, in.Filters)
			require.Len(t, in.Filters.WorkflowStatus, 2)
			assert.Equal(t, "NEW", aws.ToString(in.Filters.WorkflowStatus[0].Value))
			assert.Equal(t, "NOTIFIED", aws.ToString(in.Filters.WorkflowStatus[1].Value))
			return &securityhub.GetFindingsOutput{}, nil
		})
	doc := `{"WorkflowStatus":[{"Value":"NEW","Comparison":"EQUALS"}]}`

	r := execute(t, &fakeClients{hub: h}, doc, false, "securityhub", "get-findings", "--filters", "@-", "--workflow-status", "NOTIFIED")

	require.NoError(t, r.err)
}

func TestBatchUpdateFindings(t *testing.T) {
	t.Run("nothing to update", func(t *testing.T) {
		r := execute(t, &fakeClients{}, "", false, "securityhub", "batch-update-findings", "f-1@arn:aws:securityhub:us-east-1::product/aws/guardduty")

		assert.ErrorIs(t, r.err, errNoChange)
	})

	t.Run("partial failure", func(t *testing.T) {
		h := hubMock(t)
		h.EXPECT().BatchUpdateFindings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in *securityhub.BatchUpdateFindingsInput, _ ...func(*securityhub.Options)) (*securityhub.BatchUpdateFindingsOutput, error) {
				require.Len(t, in.FindingIdentifiers, 2)
				assert.Equal(t, types.WorkflowStatusResolved, in.Workflow.Status)
				assert.Equal(t, "triaged", aws.ToString(in.Note.Text))
				return &securityhub.BatchUpdateFindingsOutput{
					ProcessedFindings: in.FindingIdentifiers[:1],
					UnprocessedFindings: []types.BatchUpdateFindingsUnprocessedFinding{
						{FindingIdentifier: &in.FindingIdentifiers[1], ErrorCode: aws.String("FindingNotFound")},
					},
				}, nil
			})

		r := execute(t, &fakeClients{hub: h}, "", false, "securityhub", "batch-update-findings",
			"a@arn:aws:securityhub:us-east-1::product/aws/guardduty",
			"b@arn:aws:securityhub:us-east-1::product/aws/guardduty",
			"--workflow-status", "resolved", "--note-text", "triaged", "--fail-on-partial")

		var pf *PartialFailureError
		require.ErrorAs(t, r.err, &pf)
		assert.Equal(t, 1, pf.Failed)
		assert.Equal(t, int64(1), gjson.Get(r.out, "UnprocessedFindings.#").Int())
	})
}

func TestBatchImportFindingsFromStdin(t *testing.T) {
	h := hubMock(t)
	h.EXPECT().BatchImportFindings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *securityhub.BatchImportFindingsInput, _ ...func(*securityhub.Options)) (*securityhub.BatchImportFindingsOutput, error) {
			require.Len(t, in.Findings, 2)
			return &securityhub.BatchImportFindingsOutput{}, nil
		})
	findings := `{"Findings":[{"Id":"f-1"},{"Id":"f-2"}]}`

	r := execute(t, &fakeClients{hub: h}, findings, false, "securityhub", "batch-import-findings", "--findings-file", "-")

	require.NoError(t, r.err)
	assert.Equal(t, int64(2), gjson.Get(r.out, "SuccessCount").Int())
}

func TestDeleteInsightsInOrder(t *testing.T) {
	h := hubMock(t)
	h.EXPECT().DeleteInsight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *securityhub.DeleteInsightInput, _ ...func(*securityhub.Options)) (*securityhub.DeleteInsightOutput, error) {
			return &securityhub.DeleteInsightOutput{InsightArn: in.InsightArn}, nil
		}).Times(2)

	r := execute(t, &fakeClients{hub: h}, "", false, "securityhub", "delete-insight", "arn:1", "arn:2", "--force", "-o", "text")

	require.NoError(t, r.err)
	assert.Equal(t, "arn:1\narn:2\n", r.out)
}

func TestDeleteMembersDeclined(t *testing.T) {
	h := hubMock(t)

	r := execute(t, &fakeClients{hub: h}, "no\n", true, "securityhub", "Remove-SHUBMember", "111111111111", "222222222222")

	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "skipped DeleteMembers on 111111111111, 222222222222")
}

func TestCreateMembersParsesEmails(t *testing.T) {
	h := hubMock(t)
	h.EXPECT().CreateMembers(gomock.Any(), &securityhub.CreateMembersInput{AccountDetails: []types.AccountDetails{
		{AccountId: aws.String("111111111111"), Email: aws.String("ops@example.com")},
		{AccountId: aws.String("222222222222")},
	}}).Return(&securityhub.CreateMembersOutput{}, nil)

	r := execute(t, &fakeClients{hub: h}, "", false, "securityhub", "create-members", "111111111111=ops@example.com", "222222222222")

	require.NoError(t, r.err)
}

func TestEnableSecurityHubSendsChangedFlagsOnly(t *testing.T) {
	for _, c := range []struct {
		name string
		args []string
		want *bool
	}{
		{name: "default", want: nil},
		{name: "disabled", args: []string{"--enable-default-standards=false"}, want: aws.Bool(false)},
	} {
		t.Run(c.name, func(t *testing.T) {
			h := hubMock(t)
			h.EXPECT().EnableSecurityHub(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, in *securityhub.EnableSecurityHubInput, _ ...func(*securityhub.Options)) (*securityhub.EnableSecurityHubOutput, error) {
					assert.Equal(t, c.want, in.EnableDefaultStandards)
					return &securityhub.EnableSecurityHubOutput{}, nil
				})

			r := execute(t, &fakeClients{hub: h}, "", false, append([]string{"securityhub", "enable-security-hub"}, c.args...)...)

			require.NoError(t, r.err)
		})
	}
}

func TestGetInsightsPaging(t *testing.T) {
	h := hubMock(t)
	page := func(ctx context.Context, in *securityhub.GetInsightsInput, _ ...func(*securityhub.Options)) (*securityhub.GetInsightsOutput, error) {
		assert.Equal(t, int32(1), aws.ToInt32(in.MaxResults))
		assert.Empty(t, in.InsightArns)
		if in.NextToken == nil {
			return &securityhub.GetInsightsOutput{Insights: []types.Insight{{Name: aws.String("one")}}, NextToken: aws.String("t1")}, nil
		}
		assert.Equal(t, "t1", aws.ToString(in.NextToken))
		return &securityhub.GetInsightsOutput{Insights: []types.Insight{{Name: aws.String("two")}}}, nil
	}
	h.EXPECT().GetInsights(gomock.Any(), gomock.Any()).DoAndReturn(page).Times(2)

	r := execute(t, &fakeClients{hub: h}, "", false, "securityhub", "get-insights", "--page-size", "1", "--select", "Insights.#.Name", "-o", "text")

	require.NoError(t, r.err)
	assert.Equal(t, "one\ntwo\n", r.out)
	assert.NotContains(t, r.errOut, "NextToken")
}

func TestDeleteInsightsPromptsPerTarget(t *testing.T) {
	h := hubMock(t)
	h.EXPECT().DeleteInsight(gomock.Any(), &securityhub.DeleteInsightInput{InsightArn: aws.String("arn:1")}).
		Return(&securityhub.DeleteInsightOutput{InsightArn: aws.String("arn:1")}, nil)
	h.EXPECT().DeleteInsight(gomock.Any(), &securityhub.DeleteInsightInput{InsightArn: aws.String("arn:3")}).
		Return(&securityhub.DeleteInsightOutput{InsightArn: aws.String("arn:3")}, nil)

	r := execute(t, &fakeClients{hub: h}, "y\nn\ny\n", true, "securityhub", "delete-insight", "arn:1", "arn:2", "arn:3", "-o", "text")

	require.NoError(t, r.err)
	assert.Equal(t, "arn:1\narn:3\n", r.out)
	assert.Contains(t, r.errOut, "skipped DeleteInsight on arn:2")
}
