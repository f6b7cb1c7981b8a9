// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format is the rendering used for command output.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, Text:
		return f, nil
	case "":
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want json, yaml or text)", s)
}

// Renderer writes command results.
type Renderer struct {
	Format   Format
	Humanize bool
}

// Render writes v to w. v may be any JSON serialisable value, a
// json.RawMessage or the result of Select.
func (r Renderer) Render(w io.Writer, v any) error {
	if v == nil {
		return nil
	}
	raw, err := Marshal(v)
	if err != nil {
		return err
	}
	switch r.Format {
	case YAML:
		return r.yaml(w, raw)
	case Text:
		return r.text(w, raw)
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}
}

func (r Renderer) yaml(w io.Writer, raw []byte) error {
	value := gjson.ParseBytes(raw).Value()
	if value == nil {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}

// text writes scalars one per line, arrays one element per line and
// objects as tab separated key/value lines.
func (r Renderer) text(w io.Writer, raw []byte) error {
	result := gjson.ParseBytes(raw)
	var lines []string
	switch {
	case result.IsArray():
		result.ForEach(func(_, value gjson.Result) bool {
			lines = append(lines, r.scalar(value))
			return true
		})
	case result.IsObject():
		keys := make([]string, 0)
		values := make(map[string]gjson.Result)
		result.ForEach(func(key, value gjson.Result) bool {
			keys = append(keys, key.String())
			values[key.String()] = value
			return true
		})
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, k+"\t"+r.scalar(values[k]))
		}
	case result.Type == gjson.Null:
		return nil
	default:
		lines = append(lines, r.scalar(result))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func (r Renderer) scalar(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		if r.Humanize {
			if t, err := time.Parse(time.RFC3339Nano, v.Str); err == nil {
				return humanize.Time(t)
			}
		}
		return v.Str
	case gjson.Null:
		return ""
	case gjson.JSON:
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(v.Raw)); err != nil {
			return v.Raw
		}
		return buf.String()
	}
	return v.String()
}

// Marshal converts v to JSON. SDK responses carry an opaque ResultMetadata
// member which is dropped from the top level object.
func Marshal(v any) ([]byte, error) {
	switch t := v.(type) {
	case json.RawMessage:
		return t, nil
	case []byte:
		return json.Marshal(t)
	case Multi:
		items := make([]json.RawMessage, 0, len(t))
		for _, item := range t {
			raw, err := Marshal(item)
			if err != nil {
				return nil, err
			}
			items = append(items, raw)
		}
		return json.Marshal(items)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(raw, "ResultMetadata").Exists() {
		return raw, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raw, nil
	}
	delete(obj, "ResultMetadata")
	return json.Marshal(obj)
}
