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

// Package bench drives message load through an actor system
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/akkajr/akkajr/actor"
	"github.com/akkajr/akkajr/log"
)

const drainTimeout = 30 * time.Second

type benchTell struct{}

// Benchmarker counts the messages it receives
type Benchmarker struct {
	received *atomic.Int64
}

var _ actor.Actor = (*Benchmarker)(nil)

func (p *Benchmarker) PreStart(context.Context) error {
	return nil
}

func (p *Benchmarker) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *benchTell:
		p.received.Inc()
	default:
		ctx.Err(fmt.Errorf("unhandled message %T", ctx.Message()))
	}
}

func (p *Benchmarker) PostStop(context.Context) error {
	return nil
}

// Benchmark sends messages from several workers to a set of actors
type Benchmark struct {
	// actorsCount is the number of receiving actors
	actorsCount int
	// workersCount is the number of concurrent senders
	workersCount int
	// duration specifies how long the senders run
	duration time.Duration

	system   actor.ActorSystem
	refs     []*actor.ActorRef
	sent     *atomic.Int64
	received *atomic.Int64
}

// NewBenchmark creates an instance of Benchmark
func NewBenchmark(actorsCount, workersCount int, duration time.Duration) *Benchmark {
	return &Benchmark{
		actorsCount:  max(actorsCount, 1),
		workersCount: max(workersCount, 1),
		duration:     duration,
		sent:         atomic.NewInt64(0),
		received:     atomic.NewInt64(0),
	}
}

// Start creates the actor system and the receiving actors
func (b *Benchmark) Start(ctx context.Context) error {
	system, err := actor.NewActorSystem("benchmark-system", actor.WithLogger(log.DiscardLogger))
	if err != nil {
		return err
	}
	b.system = system

	for i := range b.actorsCount {
		props := actor.PropsOf(func() actor.Actor { return &Benchmarker{received: b.received} })
		ref, err := system.ActorOf(ctx, props, fmt.Sprintf("benchmarker-%d", i))
		if err != nil {
			return err
		}
		b.refs = append(b.refs, ref)
	}
	return nil
}

// Stop shuts the actor system down
func (b *Benchmark) Stop(ctx context.Context) error {
	return b.system.Shutdown(ctx)
}

// BenchTell sends messages until the duration elapses then waits for every
// message to be handled
func (b *Benchmark) BenchTell(ctx context.Context) error {
	deadline := time.Now().Add(b.duration)
	eg, ctx := errgroup.WithContext(ctx)
	for worker := range b.workersCount {
		eg.Go(func() error {
			for i := worker; time.Now().Before(deadline); i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := b.refs[i%len(b.refs)].Tell(new(benchTell), nil); err != nil {
					return err
				}
				b.sent.Inc()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return b.drain()
}

// Tell sends count messages round robin to the actors and waits for them
func (b *Benchmark) Tell(count int) error {
	for i := range count {
		if err := b.refs[i%len(b.refs)].Tell(new(benchTell), nil); err != nil {
			return err
		}
		b.sent.Inc()
	}
	return b.drain()
}

// Sent returns the number of messages sent so far
func (b *Benchmark) Sent() int64 {
	return b.sent.Load()
}

// Received returns the number of messages handled so far
func (b *Benchmark) Received() int64 {
	return b.received.Load()
}

func (b *Benchmark) drain() error {
	timer := time.NewTimer(drainTimeout)
	defer timer.Stop()

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for b.received.Load() < b.sent.Load() {
		select {
		case <-timer.C:
			return fmt.Errorf("send count and receive count does not match: %d != %d", b.sent.Load(), b.received.Load())
		case <-ticker.C:
		}
	}
	return nil
}
