package stream

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/awslabs/shkin/stream/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsFile(t *testing.T) {
	cases := []struct {
		Name   string
		Input  string
		Keys   []string
		Data   []string
		Hashes []string
	}{
		{
			Name:  "JSON array",
			Input: `[{"PartitionKey":"a","Data":{"id":1}},{"PartitionKey":"b","Data":"plain"}]`,
			Keys:  []string{"a", "b"},
			Data:  []string{`{"id":1}`, "plain"},
		},
		{
			Name:   "JSON lines",
			Input:  "{\"PartitionKey\":\"a\",\"Text\":\"hello\"}\n{\"PartitionKey\":\"b\",\"Base64\":\"d29ybGQ=\",\"ExplicitHashKey\":\"42\"}\n",
			Keys:   []string{"a", "b"},
			Data:   []string{"hello", "world"},
			Hashes: []string{"", "42"},
		},
		{
			Name:  "Empty input",
			Input: "  \n",
			Keys:  []string{},
			Data:  []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			// Act
			entries, err := ParseRecordsFile(strings.NewReader(c.Input))

			// Assert
			require.NoError(t, err)
			keys := make([]string, 0)
			data := make([]string, 0)
			for i, e := range entries {
				keys = append(keys, *e.PartitionKey)
				data = append(data, string(e.Data))
				if c.Hashes != nil {
					assert.Equal(t, c.Hashes[i], aws.ToString(e.ExplicitHashKey))
				}
			}
			assert.Equal(t, c.Keys, keys)
			assert.Equal(t, c.Data, data)
		})
	}
}

func TestParseRecordsFileRejectsMissingPartitionKey(t *testing.T) {
	_, err := ParseRecordsFile(strings.NewReader(`[{"Text":"x"}]`))

	assert.ErrorIs(t, err, ErrMissingPartitionKey)
}

func entries(n, size int) []types.PutRecordsRequestEntry {
	r := make([]types.PutRecordsRequestEntry, n)
	for i := range r {
		r[i] = types.PutRecordsRequestEntry{PartitionKey: aws.String("k"), Data: make([]byte, size)}
	}
	return r
}

func TestBatchRecords(t *testing.T) {
	cases := []struct {
		Name    string
		Entries []types.PutRecordsRequestEntry
		Sizes   []int
	}{
		{Name: "Splits at 500 records", Entries: entries(1001, 1), Sizes: []int{500, 500, 1}},
		{Name: "Splits at 5 MiB", Entries: entries(6, MaxRecordBytes-1), Sizes: []int{5, 1}},
		{Name: "No records", Entries: entries(0, 1), Sizes: []int{}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			batches, err := BatchRecords(c.Entries)

			require.NoError(t, err)
			sizes := make([]int, 0)
			for _, b := range batches {
				sizes = append(sizes, len(b))
			}
			assert.Equal(t, c.Sizes, sizes)
		})
	}
}

func TestBatchRecordsRejectsLargeRecord(t *testing.T) {
	// The partition key counts towards the record size.
	_, err := BatchRecords(entries(1, MaxRecordBytes))

	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestPutRecordsMergesBatches(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.TODO()
	kds := mocks.NewMockKDS(ctrl)
	kds.EXPECT().
		PutRecords(ctx, gomock.Any()).
		Times(2).
		DoAndReturn(func(ctx context.Context, input *kinesis.PutRecordsInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordsOutput, error) {
			assert.Equal(t, "orders", *input.StreamName)
			out := &kinesis.PutRecordsOutput{EncryptionType: types.EncryptionTypeKms}
			for range input.Records {
				out.Records = append(out.Records, types.PutRecordsResultEntry{SequenceNumber: aws.String("1"), ShardId: aws.String("s")})
			}
			if len(input.Records) == 1 {
				out.Records[0] = types.PutRecordsResultEntry{ErrorCode: aws.String("ProvisionedThroughputExceededException")}
			}
			return out, nil
		})
	progress := 0

	// Act
	r, err := PutRecords(ctx, kds, &kinesis.PutRecordsInput{StreamName: aws.String("orders")}, entries(501, 1), func(n int) { progress += n })

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, r.FailedRecordCount)
	assert.Len(t, r.Records, 501)
	assert.Equal(t, types.EncryptionTypeKms, r.EncryptionType)
	assert.Equal(t, 501, progress)
}

func TestDecode(t *testing.T) {
	text := Decode(&types.Record{PartitionKey: aws.String("a"), SequenceNumber: aws.String("1"), Data: []byte("hello")})
	binary := Decode(&types.Record{PartitionKey: aws.String("b"), Data: []byte{0xff, 0xfe}})

	assert.Equal(t, "hello", text.Data)
	assert.Equal(t, "text", text.DataEncoding)
	assert.Equal(t, "1", text.SequenceNumber)
	assert.Equal(t, "//4=", binary.Data)
	assert.Equal(t, "base64", binary.DataEncoding)
	assert.Len(t, DecodeAll([]types.Record{{Data: []byte("x")}}), 1)
}
