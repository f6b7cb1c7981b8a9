// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package cmd

import (
	"context"
	"fmt"

	"github.com/awslabs/shkin/confirm"
	"github.com/awslabs/shkin/output"
	"github.com/awslabs/shkin/session"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

// PartialFailureError reports a batch call that succeeded for some items
// only. The response has already been written when it is returned.
type PartialFailureError struct {
	Operation string
	Failed    int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: %d item(s) failed", e.Operation, e.Failed)
}

// op describes the service call made by a command.
type op struct {
	service string
	name    string
	impact  confirm.Impact
	// selector is the default projection of the response.
	selector string
	// paged commands print the continuation token to stderr.
	paged bool
	// failed counts the items a batch response could not process.
	failed func(result any) int
}

// call performs the request for one target.
type call func(ctx context.Context, target string) (any, error)

// run performs a single call against target.
func (a *app) run(cmd *cobra.Command, o op, target string, fn call) error {
	return a.runEach(cmd, o, []string{target}, fn)
}

// runEach performs one call per target, at most --concurrency at a time.
// Results keep the order of targets and the first error cancels the calls
// still running.
func (a *app) runEach(cmd *cobra.Command, o op, targets []string, fn call) error {
	format, err := output.ParseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}
	approved, err := a.approve(o, targets)
	if err != nil {
		return err
	}
	if len(approved) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.v.GetDuration("timeout"))
	defer cancel()

	results := make([]any, len(approved))
	p := pool.New().
		WithMaxGoroutines(max(1, a.v.GetInt("concurrency"))).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i, target := range approved {
		i, target := i, target
		p.Go(func(ctx context.Context) error {
			logger := a.log.WithFields(log.Fields{"service": o.service, "operation": o.name, "target": target})
			logger.Debug("calling")
			r, err := fn(ctx, target)
			if err != nil {
				logger.WithError(err).Debug("call failed")
				return session.FriendlyError(err, a.region())
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	var result any = results[0]
	if len(results) > 1 {
		result = output.Multi(results)
	}
	if err := a.emit(cmd, o, format, result); err != nil {
		return err
	}
	if o.failed != nil {
		failed := 0
		for _, r := range results {
			failed += o.failed(r)
		}
		if failed > 0 {
			a.log.WithFields(log.Fields{"operation": o.name, "failed": failed}).Warn("some items were not processed")
			if a.v.GetBool("fail-on-partial") {
				return &PartialFailureError{Operation: o.name, Failed: failed}
			}
		}
	}
	return nil
}

// approve asks for confirmation per target and returns the targets that
// may proceed.
func (a *app) approve(o op, targets []string) ([]string, error) {
	p := &confirm.Prompter{
		In:          a.in,
		Out:         a.errOut,
		Force:       a.v.GetBool("force"),
		Always:      a.v.GetBool("confirm"),
		Interactive: a.isTerminal,
	}
	if !p.Required(o.impact) {
		return targets, nil
	}
	approved := make([]string, 0, len(targets))
	for _, t := range targets {
		ok, err := p.Confirm(o.impact, o.name, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintf(a.errOut, "skipped %s on %s\n", o.name, t)
			continue
		}
		approved = append(approved, t)
	}
	return approved, nil
}

func (a *app) emit(cmd *cobra.Command, o op, format output.Format, result any) error {
	lookup := func(name string) (string, bool) {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return "", false
		}
		return f.Value.String(), true
	}
	v, err := output.Select(result, a.v.GetString("select"), o.selector, lookup)
	if err != nil {
		return err
	}
	if o.paged {
		if token := output.NextToken(result); token != "" {
			fmt.Fprintf(a.errOut, "NextToken: %s\n", token)
		}
	}
	r := output.Renderer{Format: format, Humanize: a.v.GetBool("humanize")}
	return r.Render(a.out, v)
}
