package hub

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/awslabs/shkin/hub/mocks"
	"github.com/awslabs/shkin/paginate"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFindingsFollowsNextToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	nextToken := uuid.NewString()
	sh := mocks.NewMockHub(ctrl)
	gomock.InOrder(
		sh.EXPECT().
			GetFindings(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, input *securityhub.GetFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetFindingsOutput, error) {
				assert.Nil(t, input.NextToken)
				assert.Equal(t, int32(2), *input.MaxResults)
				require.NotNil(t, input.Filters)
				return &securityhub.GetFindingsOutput{
					Findings:  []types.AwsSecurityFinding{{Id: aws.String("a")}, {Id: aws.String("b")}},
					NextToken: &nextToken,
				}, nil
			}),
		sh.EXPECT().
			GetFindings(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, input *securityhub.GetFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.GetFindingsOutput, error) {
				assert.Equal(t, nextToken, *input.NextToken)
				require.NotNil(t, input.Filters)
				return &securityhub.GetFindingsOutput{
					Findings: []types.AwsSecurityFinding{{Id: aws.String("c")}},
				}, nil
			}),
	)
	filters := &types.AwsSecurityFindingFilters{SeverityLabel: []types.StringFilter{Equals("HIGH")}}

	// Act
	out, err := GetFindings(ctx, sh, &securityhub.GetFindingsInput{Filters: filters}, paginate.Options{PageSize: 2})

	// Assert
	require.NoError(t, err)
	assert.Len(t, out.Findings, 3)
	assert.Nil(t, out.NextToken)
}

func TestListInvitationsStopsAtMaxItems(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	sh := mocks.NewMockHub(ctrl)
	gomock.InOrder(
		sh.EXPECT().
			ListInvitations(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, input *securityhub.ListInvitationsInput, optFns ...func(*securityhub.Options)) (*securityhub.ListInvitationsOutput, error) {
				assert.Nil(t, input.NextToken)
				assert.Equal(t, int32(3), *input.MaxResults)
				return &securityhub.ListInvitationsOutput{
					Invitations: []types.Invitation{{AccountId: aws.String("111111111111")}, {AccountId: aws.String("222222222222")}},
					NextToken:   aws.String("t1"),
				}, nil
			}),
		sh.EXPECT().
			ListInvitations(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, input *securityhub.ListInvitationsInput, optFns ...func(*securityhub.Options)) (*securityhub.ListInvitationsOutput, error) {
				assert.Equal(t, "t1", *input.NextToken)
				assert.Equal(t, int32(1), *input.MaxResults)
				return &securityhub.ListInvitationsOutput{
					Invitations: []types.Invitation{{AccountId: aws.String("333333333333")}},
					NextToken:   aws.String("t2"),
				}, nil
			}),
	)
	input := &securityhub.ListInvitationsInput{}

	// Act
	out, err := ListInvitations(ctx, sh, input, paginate.Options{MaxItems: 3})

	// Assert
	require.NoError(t, err)
	assert.Len(t, out.Invitations, 3)
	assert.Equal(t, "t2", aws.ToString(out.NextToken))
	assert.Nil(t, input.NextToken)
	assert.Nil(t, input.MaxResults)
}

func TestListMembersRejectsOversizedPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := ListMembers(context.TODO(), mocks.NewMockHub(ctrl), &securityhub.ListMembersInput{}, paginate.Options{PageSize: 51})

	assert.ErrorIs(t, err, paginate.ErrInvalidOptions)
}

func TestListEnabledProductsForImportPropagatesErrors(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	e := errors.New("failed")
	sh := mocks.NewMockHub(ctrl)
	sh.EXPECT().
		ListEnabledProductsForImport(ctx, gomock.Any()).
		Return(nil, e)

	// Act
	out, err := ListEnabledProductsForImport(ctx, sh, &securityhub.ListEnabledProductsForImportInput{}, paginate.Options{})

	// Assert
	assert.Nil(t, out)
	assert.Equal(t, e, err)
}

func TestFilterFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "filters.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"SeverityLabel":[{"Comparison":"EQUALS","Value":"CRITICAL"}]}`), 0o600))

	t.Run("no filters", func(t *testing.T) {
		f, err := FilterFlags{}.Build(nil)

		assert.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("shortcut flags", func(t *testing.T) {
		f, err := FilterFlags{WorkflowStatuses: []string{"NEW", "NOTIFIED"}, RecordStates: []string{"ACTIVE"}}.Build(nil)

		require.NoError(t, err)
		assert.Len(t, f.WorkflowStatus, 2)
		assert.Equal(t, types.StringFilterComparisonEquals, f.WorkflowStatus[0].Comparison)
		assert.Equal(t, "ACTIVE", *f.RecordState[0].Value)
	})

	t.Run("document from file merged with flags", func(t *testing.T) {
		f, err := FilterFlags{Document: "@" + file, SeverityLabels: []string{"HIGH"}}.Build(nil)

		require.NoError(t, err)
		require.Len(t, f.SeverityLabel, 2)
		assert.Equal(t, "CRITICAL", *f.SeverityLabel[0].Value)
		assert.Equal(t, "HIGH", *f.SeverityLabel[1].Value)
	})

	t.Run("document from stdin", func(t *testing.T) {
		f, err := FilterFlags{Document: "@-"}.Build(strings.NewReader(`{"ProductName":[{"Comparison":"PREFIX","Value":"Guard"}]}`))

		require.NoError(t, err)
		assert.Equal(t, types.StringFilterComparisonPrefix, f.ProductName[0].Comparison)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := FilterFlags{Document: "{"}.Build(nil)

		assert.Error(t, err)
	})
}

func TestParseSortCriteria(t *testing.T) {
	c, err := ParseSortCriteria("SeverityLabel:asc, UpdatedAt")

	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "SeverityLabel", *c[0].Field)
	assert.Equal(t, types.SortOrderAscending, c[0].SortOrder)
	assert.Equal(t, types.SortOrderDescending, c[1].SortOrder)

	_, err = ParseSortCriteria("UpdatedAt:sideways")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	c, err = ParseSortCriteria("")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseAccountDetails(t *testing.T) {
	d, err := ParseAccountDetails([]string{"111111111111", "222222222222=sec@example.com"})

	require.NoError(t, err)
	assert.Nil(t, d[0].Email)
	assert.Equal(t, "sec@example.com", *d[1].Email)

	_, err = ParseAccountDetails([]string{"=x@example.com"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseFindingIdentifiers(t *testing.T) {
	ids, err := ParseFindingIdentifiers([]string{"user@example/1@arn:aws:securityhub:us-east-1::product/aws/guardduty"})

	require.NoError(t, err)
	assert.Equal(t, "user@example/1", *ids[0].Id)
	assert.Equal(t, "arn:aws:securityhub:us-east-1::product/aws/guardduty", *ids[0].ProductArn)

	_, err = ParseFindingIdentifiers([]string{"no-product"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReadFindings(t *testing.T) {
	array, err := ReadFindings(strings.NewReader(`[{"Id":"a","SchemaVersion":"2018-10-08"}]`))
	require.NoError(t, err)
	wrapped, err := ReadFindings(strings.NewReader(`{"Findings":[{"Id":"a"},{"Id":"b"}]}`))
	require.NoError(t, err)
	empty, err := ReadFindings(strings.NewReader(" "))
	require.NoError(t, err)

	assert.Equal(t, "2018-10-08", *array[0].SchemaVersion)
	assert.Len(t, wrapped, 2)
	assert.Empty(t, empty)
}

func TestImportFindingsBatches(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	findings := make([]types.AwsSecurityFinding, 250)
	sizes := make([]int, 0)
	sh := mocks.NewMockHub(ctrl)
	sh.EXPECT().
		BatchImportFindings(ctx, gomock.Any()).
		Times(3).
		DoAndReturn(func(ctx context.Context, input *securityhub.BatchImportFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchImportFindingsOutput, error) {
			sizes = append(sizes, len(input.Findings))
			out := &securityhub.BatchImportFindingsOutput{}
			if len(input.Findings) == 50 {
				out.FailedFindings = []types.ImportFindingsError{{Id: aws.String("x"), ErrorCode: aws.String("InvalidInput")}}
			}
			return out, nil
		})
	progress := 0

	// Act
	r, err := ImportFindings(ctx, sh, findings, func(n int) { progress += n })

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{100, 100, 50}, sizes)
	assert.Equal(t, 249, r.SuccessCount)
	assert.Equal(t, 1, r.FailedCount)
	assert.Len(t, r.FailedFindings, 1)
	assert.Equal(t, 250, progress)
}

func TestUpdateFindingsMergesBatches(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	ids := make([]types.AwsSecurityFindingIdentifier, 101)
	sh := mocks.NewMockHub(ctrl)
	sh.EXPECT().
		BatchUpdateFindings(ctx, gomock.Any()).
		Times(2).
		DoAndReturn(func(ctx context.Context, input *securityhub.BatchUpdateFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchUpdateFindingsOutput, error) {
			assert.Equal(t, types.WorkflowStatusResolved, input.Workflow.Status)
			return &securityhub.BatchUpdateFindingsOutput{ProcessedFindings: input.FindingIdentifiers}, nil
		})
	input := &securityhub.BatchUpdateFindingsInput{Workflow: &types.WorkflowUpdate{Status: types.WorkflowStatusResolved}}

	// Act
	out, err := UpdateFindings(ctx, sh, input, ids)

	// Assert
	require.NoError(t, err)
	assert.Len(t, out.ProcessedFindings, 101)
	assert.Empty(t, out.UnprocessedFindings)
}
