// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package hub

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadDocument returns the JSON text of a flag value. A value starting with
// @ names a file to read; @- reads stdin.
func ReadDocument(value string, stdin io.Reader) ([]byte, error) {
	if !strings.HasPrefix(value, "@") {
		return []byte(value), nil
	}
	name := strings.TrimPrefix(value, "@")
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// DecodeDocument reads value with ReadDocument and decodes it into v.
func DecodeDocument(value string, stdin io.Reader, v interface{}) error {
	b, err := ReadDocument(value, stdin)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}
	return nil
}
