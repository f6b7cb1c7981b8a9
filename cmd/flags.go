// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/awslabs/shkin/paginate"
	"github.com/spf13/cobra"
)

var errMissingTarget = errors.New("no target given")

// pageFlags are shared by every listing command.
type pageFlags struct {
	pageSize   int32
	maxItems   int
	nextToken  string
	noPaginate bool
}

func addPageFlags(cmd *cobra.Command, p *pageFlags) {
	cmd.Flags().Int32Var(&p.pageSize, "page-size", 0, "items requested per call, 0 uses the service default")
	cmd.Flags().IntVar(&p.maxItems, "max-items", 0, "stop after this many items, 0 returns everything")
	cmd.Flags().StringVar(&p.nextToken, "next-token", "", "resume a previous listing")
	cmd.Flags().BoolVar(&p.noPaginate, "no-paginate", false, "make a single call and print the continuation token")
}

func (p *pageFlags) options() paginate.Options {
	return paginate.Options{
		PageSize:      p.pageSize,
		MaxItems:      p.maxItems,
		NextToken:     p.nextToken,
		NoAutoIterate: p.noPaginate,
	}
}

// optString returns nil for an empty flag value.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// optInt32 returns nil unless the flag was given.
func optInt32(cmd *cobra.Command, name string, v int32) *int32 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return aws.Int32(v)
}

// optBool returns nil unless the flag was given.
func optBool(cmd *cobra.Command, name string, v bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return aws.Bool(v)
}

// optTime parses an RFC 3339 timestamp or a duration into the past, such
// as 15m for fifteen minutes ago.
func optTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTime(s, time.Now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTime accepts a duration relative to now, RFC 3339 or the local
// "2006-01-02 15:04" form.
func parseTime(s string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want a duration, RFC 3339 or \"2006-01-02 15:04\"", s)
	}
	return t.UTC(), nil
}

// targets returns the positional arguments, or the flag value when no
// argument was given.
func targets(args []string, flag, name string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if flag != "" {
		return []string{flag}, nil
	}
	return nil, fmt.Errorf("%w: give a %s", errMissingTarget, name)
}

// streamRef resolves the stream of a Kinesis command. Names come from the
// positional argument, ARNs from --stream-arn or an argument starting with
// arn:.
type streamRef struct {
	arn string
}

func (s *streamRef) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.arn, "stream-arn", "", "stream ARN, instead of a stream name")
}

func (s *streamRef) targets(args []string) ([]string, error) {
	return targets(args, s.arn, "stream name or --stream-arn")
}

// ids returns the StreamName and StreamARN parameters for target.
func (s *streamRef) ids(target string) (*string, *string) {
	if strings.HasPrefix(target, "arn:") {
		return nil, aws.String(target)
	}
	return aws.String(target), nil
}

// enum matches value case-insensitively against the values of an SDK
// enum type. An empty value returns the zero value.
func enum[T ~string](flag, value string, values []T) (T, error) {
	if value == "" {
		return "", nil
	}
	allowed := make([]string, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(value, string(v)) {
			return v, nil
		}
		allowed = append(allowed, string(v))
	}
	return "", fmt.Errorf("invalid --%s %q: want one of %s", flag, value, strings.Join(allowed, ", "))
}
