// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package stream

// scheduler bounds the number of shards read at the same time.
// Go never blocks the caller; the slot is taken inside the goroutine so the
// result loop can keep draining while readers wait for a slot.
type scheduler struct {
	slots chan struct{}
}

func (s *scheduler) Go(fn func()) {
	go func() {
		s.slots <- struct{}{}
		defer func() { <-s.slots }()
		fn()
	}()
}

func newScheduler(max int) *scheduler {
	if max < 1 {
		max = 1
	}
	return &scheduler{
		slots: make(chan struct{}, max),
	}
}
