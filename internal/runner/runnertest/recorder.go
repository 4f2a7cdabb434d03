// Package runnertest provides a runner.Runner that records invocations instead
// of spawning processes.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"quick-init/internal/runner"
)

// Call is one recorded invocation.
type Call struct {
	Invocation runner.Invocation
	Attached   bool
}

// Command returns the invocation's arguments joined by spaces.
func (c Call) Command() string {
	return strings.Join(c.Invocation.Args, " ")
}

// Recorder records every Run and Start. By default each Run succeeds with an
// empty result; set OnRun or OnStart to simulate side effects or failures.
type Recorder struct {
	OnRun   func(inv runner.Invocation) (*runner.Result, error)
	OnStart func(inv runner.Invocation) error

	mu    sync.Mutex
	calls []Call
}

// Run records inv as a captured call.
func (r *Recorder) Run(_ context.Context, inv runner.Invocation) (*runner.Result, error) {
	r.record(Call{Invocation: inv})
	if r.OnRun != nil {
		return r.OnRun(inv)
	}
	return &runner.Result{}, nil
}

// Start records inv as an attached call.
func (r *Recorder) Start(_ context.Context, inv runner.Invocation) error {
	r.record(Call{Invocation: inv, Attached: true})
	if r.OnStart != nil {
		return r.OnStart(inv)
	}
	return nil
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Commands returns the recorded calls rendered with Call.Command.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Command()
	}
	return out
}

// Count returns how many recorded calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, cmd := range r.Commands() {
		if strings.HasPrefix(cmd, prefix) {
			n++
		}
	}
	return n
}
