// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package session

import (
	"errors"
	"fmt"
	"net"

	smithy "github.com/aws/smithy-go"
)

// ResolveError reports that a service endpoint host name could not be
// resolved, which almost always means a wrong region or endpoint.
type ResolveError struct {
	Host   string
	Region string
	Err    error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("could not resolve %s: check --region (%q) and --endpoint-url", e.Host, e.Region)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// APIError is a service side failure reduced to operation, code and message.
type APIError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *APIError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// FriendlyError rewrites name resolution failures and API errors into
// shorter messages. The original error stays reachable via errors.As.
func FriendlyError(err error, region string) error {
	if err == nil {
		return nil
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &ResolveError{Host: dnsErr.Name, Region: region, Err: err}
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		e := &APIError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
		var opErr *smithy.OperationError
		if errors.As(err, &opErr) {
			e.Operation = opErr.Operation()
		}
		return e
	}
	return err
}
