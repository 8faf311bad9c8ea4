// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"
)

// recorder keeps every string message it receives
type recorder struct {
	mu       sync.Mutex
	received []string
	stops    *atomic.Int32
}

var _ Actor = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{stops: atomic.NewInt32(0)}
}

func (r *recorder) PreStart(context.Context) error {
	return nil
}

func (r *recorder) Receive(ctx *ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case string:
		r.mu.Lock()
		r.received = append(r.received, msg)
		r.mu.Unlock()
	default:
		ctx.Err(errors.New("unhandled message"))
	}
}

func (r *recorder) PostStop(context.Context) error {
	r.stops.Inc()
	return nil
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.received))
	copy(out, r.received)
	return out
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

// faulty fails on "fail", panics on "panic" and records everything else
type faulty struct {
	recorder
}

func newFaulty() *faulty {
	return &faulty{recorder: recorder{stops: atomic.NewInt32(0)}}
}

func (f *faulty) Receive(ctx *ReceiveContext) {
	switch ctx.Message() {
	case "fail":
		ctx.Err(errors.New("boom"))
	case "panic":
		panic("kaboom")
	default:
		f.recorder.Receive(ctx)
	}
}

// failingPreStart never starts
type failingPreStart struct {
	attempts *atomic.Int32
}

func (f *failingPreStart) PreStart(context.Context) error {
	f.attempts.Inc()
	return errors.New("cannot start")
}

func (f *failingPreStart) Receive(*ReceiveContext) {}

func (f *failingPreStart) PostStop(context.Context) error {
	return nil
}

// failingPostStop returns an error when stopped
type failingPostStop struct {
	stops *atomic.Int32
}

func (f *failingPostStop) PreStart(context.Context) error {
	return nil
}

func (f *failingPostStop) Receive(*ReceiveContext) {}

func (f *failingPostStop) PostStop(context.Context) error {
	f.stops.Inc()
	return errors.New("cannot stop cleanly")
}

// parent spawns a child named "c" on "spawn" and stops itself on "stop"
type parent struct {
	parents chan string
}

func (p *parent) PreStart(context.Context) error {
	return nil
}

func (p *parent) Receive(ctx *ReceiveContext) {
	switch ctx.Message() {
	case "spawn":
		if _, err := ctx.Spawn(PropsOf(func() Actor { return &child{parents: p.parents} }), "c"); err != nil {
			ctx.Err(err)
		}
	case "stop":
		ctx.StopSelf()
	}
}

func (p *parent) PostStop(context.Context) error {
	return nil
}

// child reports its parent path on "who"
type child struct {
	parents chan string
}

func (c *child) PreStart(context.Context) error {
	return nil
}

func (c *child) Receive(ctx *ReceiveContext) {
	switch ctx.Message() {
	case "who":
		c.parents <- ctx.Parent().Path().String()
	case "stop-parent":
		ctx.Stop(ctx.Parent())
	}
}

func (c *child) PostStop(context.Context) error {
	return nil
}

// tracer forwards the trace id of every message it receives
type tracer struct {
	traces chan string
}

func (t *tracer) PreStart(context.Context) error {
	return nil
}

func (t *tracer) Receive(ctx *ReceiveContext) {
	t.traces <- ctx.TraceID()
}

func (t *tracer) PostStop(context.Context) error {
	return nil
}

type traced struct {
	id string
}

func (t traced) TraceID() string {
	return t.id
}

// blocker holds Receive until release is closed
type blocker struct {
	entered             chan struct{}
	release             chan struct{}
	inReceive           *atomic.Bool
	stops               *atomic.Int32
	stoppedWhileHandled *atomic.Bool
}

func newBlocker() *blocker {
	return &blocker{
		entered:             make(chan struct{}, 1),
		release:             make(chan struct{}),
		inReceive:           atomic.NewBool(false),
		stops:               atomic.NewInt32(0),
		stoppedWhileHandled: atomic.NewBool(false),
	}
}

func (b *blocker) PreStart(context.Context) error {
	return nil
}

func (b *blocker) Receive(*ReceiveContext) {
	b.inReceive.Store(true)
	b.entered <- struct{}{}
	<-b.release
	b.inReceive.Store(false)
}

func (b *blocker) PostStop(context.Context) error {
	if b.inReceive.Load() {
		b.stoppedWhileHandled.Store(true)
	}
	b.stops.Inc()
	return nil
}
