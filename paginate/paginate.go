// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package paginate drives token based list operations.
//
// Every list style API call in Kinesis and Security Hub follows the same
// shape: the caller sends an optional continuation token and an optional
// page size, and the service answers with a page of items and the token for
// the next page. Collect implements the client side loop once so that each
// command only has to describe how to make a single call.
package paginate

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when the options cannot be honoured.
var ErrInvalidOptions = errors.New("invalid pagination options")

// Options controls how a list operation is iterated.
type Options struct {
	// PageSize is the number of items requested per call. Zero requests
	// the service maximum.
	PageSize int32
	// MaxItems caps the total number of items returned. Zero means no cap.
	MaxItems int
	// NextToken resumes a previous listing.
	NextToken string
	// NoAutoIterate makes exactly one service call.
	NoAutoIterate bool
}

// Page is one service response reduced to its items and continuation token.
type Page[T any] struct {
	Items     []T
	NextToken *string
}

// Fetcher performs one service call. token is nil on the first call of a
// fresh listing and pageSize is nil when no size should be sent.
type Fetcher[T any] func(ctx context.Context, token *string, pageSize *int32) (Page[T], error)

// Result holds every item collected and the token to resume from, which is
// nil once the listing is exhausted.
type Result[T any] struct {
	Items     []T
	NextToken *string
	Calls     int
}

// Validate checks the options against the maximum page size of the service.
// A maxPage of zero means the service does not publish one.
func (o Options) Validate(maxPage int32) error {
	if o.PageSize < 0 {
		return fmt.Errorf("%w: page size must not be negative", ErrInvalidOptions)
	}
	if o.MaxItems < 0 {
		return fmt.Errorf("%w: max items must not be negative", ErrInvalidOptions)
	}
	if maxPage > 0 && o.PageSize > maxPage {
		return fmt.Errorf("%w: page size %d exceeds the service maximum of %d", ErrInvalidOptions, o.PageSize, maxPage)
	}
	return nil
}

// pageSize is min(PageSize or maxPage, MaxItems-collected). Nil means the
// service picks the size.
func (o Options) pageSize(maxPage int32, collected int) *int32 {
	size := o.PageSize
	if size == 0 {
		size = maxPage
	}
	if o.MaxItems > 0 {
		remaining := o.MaxItems - collected
		if size == 0 || int64(remaining) < int64(size) {
			size = int32(remaining)
		}
	}
	if size <= 0 {
		return nil
	}
	return &size
}

// Collect calls fetch until the listing is exhausted, MaxItems items have
// been collected, the service repeats the token it was given, or a single
// call was requested.
func Collect[T any](ctx context.Context, opts Options, maxPage int32, fetch Fetcher[T]) (*Result[T], error) {
	if err := opts.Validate(maxPage); err != nil {
		return nil, err
	}
	var token *string
	if opts.NextToken != "" {
		t := opts.NextToken
		token = &t
	}
	r := &Result[T]{Items: make([]T, 0)}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, token, opts.pageSize(maxPage, len(r.Items)))
		r.Calls++
		if err != nil {
			return nil, err
		}
		r.Items = append(r.Items, page.Items...)
		next := page.NextToken
		if next != nil && *next == "" {
			next = nil
		}
		r.NextToken = next
		if opts.MaxItems > 0 && len(r.Items) >= opts.MaxItems {
			r.Items = r.Items[:opts.MaxItems]
			return r, nil
		}
		if next == nil || opts.NoAutoIterate {
			return r, nil
		}
		if token != nil && *next == *token {
			// The service handed back the token it was given; following it
			// would loop forever.
			r.NextToken = nil
			return r, nil
		}
		token = next
	}
}
