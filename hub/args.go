// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package hub

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
)

// ErrInvalidArgument wraps every flag value the hub parsers reject.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseSortCriteria parses "Field:asc,Other:desc". The order defaults to
// descending.
func ParseSortCriteria(value string) ([]types.SortCriterion, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	criteria := make([]types.SortCriterion, 0)
	for _, item := range strings.Split(value, ",") {
		field, order, _ := strings.Cut(strings.TrimSpace(item), ":")
		if field == "" {
			return nil, fmt.Errorf("%w: sort criterion %q has no field", ErrInvalidArgument, item)
		}
		c := types.SortCriterion{Field: aws.String(field), SortOrder: types.SortOrderDescending}
		switch strings.ToLower(order) {
		case "", "desc":
		case "asc":
			c.SortOrder = types.SortOrderAscending
		default:
			return nil, fmt.Errorf("%w: sort order %q must be asc or desc", ErrInvalidArgument, order)
		}
		criteria = append(criteria, c)
	}
	return criteria, nil
}

// ParseAccountDetails parses "account" or "account=email" items.
func ParseAccountDetails(items []string) ([]types.AccountDetails, error) {
	details := make([]types.AccountDetails, 0, len(items))
	for _, item := range items {
		account, email, hasEmail := strings.Cut(item, "=")
		if account == "" {
			return nil, fmt.Errorf("%w: account details %q have no account id", ErrInvalidArgument, item)
		}
		d := types.AccountDetails{AccountId: aws.String(account)}
		if hasEmail && email != "" {
			d.Email = aws.String(email)
		}
		details = append(details, d)
	}
	return details, nil
}

// ParseFindingIdentifiers parses "id@productArn" items. The product ARN
// follows the last @, so finding ids may contain @ themselves.
func ParseFindingIdentifiers(items []string) ([]types.AwsSecurityFindingIdentifier, error) {
	ids := make([]types.AwsSecurityFindingIdentifier, 0, len(items))
	for _, item := range items {
		i := strings.LastIndex(item, "@")
		if i <= 0 || i == len(item)-1 {
			return nil, fmt.Errorf("%w: finding %q must be ID@PRODUCT_ARN", ErrInvalidArgument, item)
		}
		ids = append(ids, types.AwsSecurityFindingIdentifier{
			Id:         aws.String(item[:i]),
			ProductArn: aws.String(item[i+1:]),
		})
	}
	return ids, nil
}
