// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// All selects the whole response.
	All = "*"
	// None suppresses output.
	None = "-"
)

// Multi holds the responses of one command run against several targets,
// in the order the targets were given.
type Multi []any

// Lookup resolves the value of a command parameter for ^name selectors.
type Lookup func(name string) (string, bool)

// Select projects a response. An empty selector falls back to the
// command's default projection. Supported selectors:
//
//	*        the whole response
//	-        nothing
//	^name    the value of the --name parameter
//	a.b.c    a gjson path into the JSON form of the response
//
// Paths are applied to every element of a Multi.
func Select(v any, selector, fallback string, lookup Lookup) (any, error) {
	if selector == "" {
		selector = fallback
	}
	switch {
	case selector == "" || selector == All:
		return v, nil
	case selector == None:
		return nil, nil
	case strings.HasPrefix(selector, "^"):
		name := strings.TrimPrefix(selector, "^")
		if lookup != nil {
			if value, ok := lookup(name); ok {
				return value, nil
			}
		}
		return nil, fmt.Errorf("select: unknown parameter %q", name)
	}
	if m, ok := v.(Multi); ok {
		out := make([]json.RawMessage, 0, len(m))
		for _, item := range m {
			raw, err := path(item, selector)
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	}
	return path(v, selector)
}

func path(v any, p string) (json.RawMessage, error) {
	raw, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	r := gjson.GetBytes(raw, p)
	if !r.Exists() {
		return nil, fmt.Errorf("select: no value at %q", p)
	}
	return json.RawMessage(r.Raw), nil
}

// NextToken returns the top level NextToken of a response, if any.
func NextToken(v any) string {
	if v == nil {
		return ""
	}
	if _, ok := v.(Multi); ok {
		return ""
	}
	raw, err := Marshal(v)
	if err != nil {
		return ""
	}
	return gjson.GetBytes(raw, "NextToken").String()
}
