// SPDX-License-Identifier: MIT
// Package paging_test contains shared fixtures for paging tests.

package paging_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvpage/paging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Common padding shapes used across tests (avoid magic numbers in bodies).
const (
	Leading2  = 2
	Trailing1 = 1
	PageSize  = 3
)

// letters is the canonical loaded window of the examples.
func letters() []string { return []string{"a", "b", "c"} }

// change is one recorded callback invocation.
type change struct {
	Kind     string
	Position int
	Count    int
}

// recorder is a Callback that records every invocation in order.
type recorder struct {
	mu      sync.Mutex
	changes []change
}

func (r *recorder) OnChanged(position, count int) {
	r.add(change{Kind: "changed", Position: position, Count: count})
}

func (r *recorder) OnInserted(position, count int) {
	r.add(change{Kind: "inserted", Position: position, Count: count})
}

func (r *recorder) OnRemoved(position, count int) {
	r.add(change{Kind: "removed", Position: position, Count: count})
}

func (r *recorder) add(c change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) Changes() []change {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]change(nil), r.changes...)
}

// syncExec runs load jobs inline so tests observe their effect immediately.
func syncExec(job func()) { job() }

// quietLogger returns a logger whose output is captured by a test hook.
func quietLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return logger, hook
}

// intStore is an in-memory Loader over the integers [0, n).
type intStore struct {
	n     int
	err   error
	mu    sync.Mutex
	calls int
}

func (s *intStore) LoadBefore(_ context.Context, position, count int) ([]int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	start := max(0, position-count)

	return s.span(start, position), nil
}

func (s *intStore) LoadAfter(_ context.Context, position, count int) ([]int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	return s.span(position, min(s.n, position+count)), nil
}

func (s *intStore) span(from, to int) []int {
	out := make([]int, 0, max(0, to-from))
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

// mustGet returns Get(index) or fails the test.
func mustGet[T any](t *testing.T, l paging.PagedList[T], index int) (T, bool) {
	t.Helper()
	v, ok, err := l.Get(index)
	if err != nil {
		t.Fatalf("Get(%d): unexpected error %v", index, err)
	}

	return v, ok
}

// render prints a list as "_ _ a b c _" for compact assertions.
func render[T any](t *testing.T, l paging.PagedList[T]) string {
	t.Helper()
	out := ""
	for i := 0; i < l.Size(); i++ {
		if i > 0 {
			out += " "
		}
		v, ok := mustGet(t, l, i)
		if !ok {
			out += "_"
			continue
		}
		out += fmt.Sprint(v)
	}

	return out
}
