// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package main

import "github.com/awslabs/shkin/cmd"

func main() {
	cmd.Execute()
}
