package paginate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	token    *string
	pageSize *int32
}

// pages returns a fetcher serving the given pages in order and recording
// the arguments of each call.
func pages(calls *[]call, served ...Page[int]) Fetcher[int] {
	return func(ctx context.Context, token *string, pageSize *int32) (Page[int], error) {
		*calls = append(*calls, call{token, pageSize})
		if len(*calls) > len(served) {
			return Page[int]{}, errors.New("unexpected call")
		}
		return served[len(*calls)-1], nil
	}
}

func str(s string) *string { return &s }

func i32(v int32) *int32 { return &v }

func TestCollectFollowsTokensUntilExhausted(t *testing.T) {
	// Arrange
	var calls []call
	fetch := pages(&calls,
		Page[int]{Items: []int{1, 2}, NextToken: str("a")},
		Page[int]{Items: []int{3}, NextToken: str("b")},
		Page[int]{Items: []int{4}},
	)

	// Act
	r, err := Collect(context.TODO(), Options{}, 100, fetch)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, r.Items)
	assert.Nil(t, r.NextToken)
	assert.Equal(t, 3, r.Calls)
	assert.Nil(t, calls[0].token)
	assert.Equal(t, "a", *calls[1].token)
	assert.Equal(t, "b", *calls[2].token)
	for _, c := range calls {
		require.NotNil(t, c.pageSize)
		assert.Equal(t, int32(100), *c.pageSize)
	}
}

func TestCollectPageSize(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		maxPage int32
		want    *int32
	}{
		{"defaults to the service maximum", Options{}, 10000, i32(10000)},
		{"sends nothing without a known maximum", Options{}, 0, nil},
		{"honours an explicit page size", Options{PageSize: 25}, 10000, i32(25)},
		{"asks only for the items still wanted", Options{MaxItems: 7}, 10000, i32(7)},
		{"caps max items at the service maximum", Options{MaxItems: 20000}, 10000, i32(10000)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var calls []call

			_, err := Collect(context.TODO(), c.opts, c.maxPage, pages(&calls, Page[int]{}))

			require.NoError(t, err)
			require.Len(t, calls, 1)
			assert.Equal(t, c.want, calls[0].pageSize)
		})
	}
}

func TestCollectTreatsEmptyTokenAsEnd(t *testing.T) {
	var calls []call
	fetch := pages(&calls, Page[int]{Items: []int{1}, NextToken: str("")})

	r, err := Collect(context.TODO(), Options{}, 0, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, r.Items)
	assert.Nil(t, r.NextToken)
	assert.Len(t, calls, 1)
}

func TestCollectContinuesPastEmptyPages(t *testing.T) {
	var calls []call
	fetch := pages(&calls,
		Page[int]{NextToken: str("a")},
		Page[int]{Items: []int{7}},
	)

	r, err := Collect(context.TODO(), Options{}, 0, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{7}, r.Items)
	assert.Len(t, calls, 2)
}

func TestCollectHonoursMaxItems(t *testing.T) {
	cases := []struct {
		name      string
		opts      Options
		maxPage   int32
		served    []Page[int]
		items     []int
		sizes     []int32
		nextToken *string
	}{
		{
			name:    "requests only the remaining items",
			opts:    Options{MaxItems: 3},
			maxPage: 100,
			served: []Page[int]{
				{Items: []int{1, 2, 3}, NextToken: str("a")},
			},
			items:     []int{1, 2, 3},
			sizes:     []int32{3},
			nextToken: str("a"),
		},
		{
			name:    "shrinks the page size on the last call",
			opts:    Options{MaxItems: 5, PageSize: 2},
			maxPage: 100,
			served: []Page[int]{
				{Items: []int{1, 2}, NextToken: str("a")},
				{Items: []int{3, 4}, NextToken: str("b")},
				{Items: []int{5}, NextToken: str("c")},
			},
			items:     []int{1, 2, 3, 4, 5},
			sizes:     []int32{2, 2, 1},
			nextToken: str("c"),
		},
		{
			name:    "caps the page size at the service maximum",
			opts:    Options{MaxItems: 150},
			maxPage: 100,
			served: []Page[int]{
				{Items: make([]int, 100), NextToken: str("a")},
				{Items: make([]int, 50)},
			},
			items: make([]int, 150),
			sizes: []int32{100, 50},
		},
		{
			name:    "trims a page larger than requested",
			opts:    Options{MaxItems: 2},
			maxPage: 0,
			served: []Page[int]{
				{Items: []int{1, 2, 3}, NextToken: str("a")},
			},
			items:     []int{1, 2},
			sizes:     []int32{2},
			nextToken: str("a"),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var calls []call

			r, err := Collect(context.TODO(), c.opts, c.maxPage, pages(&calls, c.served...))

			require.NoError(t, err)
			assert.Equal(t, c.items, r.Items)
			assert.Equal(t, c.nextToken, r.NextToken)
			sizes := make([]int32, 0)
			for _, call := range calls {
				require.NotNil(t, call.pageSize)
				sizes = append(sizes, *call.pageSize)
			}
			assert.Equal(t, c.sizes, sizes)
		})
	}
}

func TestCollectWithoutAutoIterationMakesOneCall(t *testing.T) {
	var calls []call
	fetch := pages(&calls, Page[int]{Items: []int{1}, NextToken: str("b")})

	r, err := Collect(context.TODO(), Options{NoAutoIterate: true, NextToken: "a", PageSize: 10}, 100, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, r.Items)
	assert.Equal(t, "b", *r.NextToken)
	require.Len(t, calls, 1)
	assert.Equal(t, "a", *calls[0].token)
	assert.Equal(t, int32(10), *calls[0].pageSize)
}

func TestCollectStopsOnRepeatedToken(t *testing.T) {
	var calls []call
	fetch := pages(&calls,
		Page[int]{Items: []int{1}, NextToken: str("a")},
		Page[int]{Items: []int{2}, NextToken: str("a")},
	)

	r, err := Collect(context.TODO(), Options{}, 0, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r.Items)
	assert.Nil(t, r.NextToken)
	assert.Len(t, calls, 2)
}

func TestCollectReturnsFetchErrors(t *testing.T) {
	e := errors.New("failed")
	fetch := func(ctx context.Context, token *string, pageSize *int32) (Page[int], error) {
		return Page[int]{}, e
	}

	r, err := Collect(context.TODO(), Options{}, 0, fetch)

	assert.Nil(t, r)
	assert.Equal(t, e, err)
}

func TestCollectStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	calls := 0
	fetch := func(ctx context.Context, token *string, pageSize *int32) (Page[int], error) {
		calls++
		cancel()
		return Page[int]{Items: []int{calls}, NextToken: str(fmt.Sprint(calls))}, nil
	}

	_, err := Collect(ctx, Options{}, 0, fetch)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		opts  Options
		valid bool
	}{
		{"defaults", Options{}, true},
		{"page size within limit", Options{PageSize: 100}, true},
		{"negative page size", Options{PageSize: -1}, false},
		{"negative max items", Options{MaxItems: -1}, false},
		{"page size above limit", Options{PageSize: 101}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.opts.Validate(100)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			}
		})
	}
}
