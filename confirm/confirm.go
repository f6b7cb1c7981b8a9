// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package confirm

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Impact describes how much damage an operation can do.
type Impact int

const (
	// None marks read only operations.
	None Impact = iota
	Low
	Medium
	// High marks destructive operations. They always prompt unless forced.
	High
)

// ErrConfirmationRequired is returned when a prompt is needed but there is
// nobody to answer it.
var ErrConfirmationRequired = errors.New("confirmation required; re-run with --force")

// Prompter asks the user before mutating operations are performed.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// Force skips every prompt.
	Force bool
	// Always prompts for every mutating operation, not only High ones.
	Always bool
	// Interactive reports whether In is attached to a terminal.
	Interactive func() bool

	// answers reads In for every prompt, so lines buffered by one prompt
	// are seen by the next.
	answers *bufio.Reader
}

// Required reports whether an operation with the given impact needs a
// prompt.
func (p *Prompter) Required(impact Impact) bool {
	if p.Force || impact == None {
		return false
	}
	return impact >= High || p.Always
}

// Confirm returns true when the operation may proceed.
func (p *Prompter) Confirm(impact Impact, operation, target string) (bool, error) {
	if !p.Required(impact) {
		return true, nil
	}
	if p.Interactive != nil && !p.Interactive() {
		return false, ErrConfirmationRequired
	}
	color.New(color.FgYellow).Fprintf(p.Out, "Perform %q on target %q? [y/N] ", operation, target)
	if p.answers == nil {
		p.answers = bufio.NewReader(p.In)
	}
	answer, err := p.answers.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
