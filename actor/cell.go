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
	"fmt"
	"sync"
	"time"

	"github.com/flowchartsman/retry"
	"go.uber.org/atomic"

	"github.com/akkajr/akkajr/address"
	"github.com/akkajr/akkajr/errors"
	"github.com/akkajr/akkajr/log"
)

// cell runs one actor: it owns the actor instance, its mailbox and the
// goroutine draining that mailbox. A cell knows its parent by path only.
type cell struct {
	actor  Actor
	path   *address.Path
	parent *address.Path
	ref    *ActorRef

	system  *actorSystem
	mailbox *mailbox
	logger  log.Logger
	ctx     context.Context

	state atomic.Uint32

	pauseMu   sync.Mutex
	pauseCond *sync.Cond

	stopLocker sync.Mutex
	done       chan struct{}
	terminated chan struct{}

	processed   atomic.Int64
	failed      atomic.Int64
	lastLatency atomic.Duration
}

func newCell(system *actorSystem, actor Actor, path, parent *address.Path) *cell {
	c := &cell{
		actor:      actor,
		path:       path,
		parent:     parent,
		system:     system,
		mailbox:    newMailbox(),
		logger:     system.logger.With("actor", path.String()),
		ctx:        context.Background(),
		done:       make(chan struct{}),
		terminated: make(chan struct{}),
	}
	c.pauseCond = sync.NewCond(&c.pauseMu)
	c.ref = &ActorRef{path: path, cell: c}
	return c
}

// start runs PreStart and launches the worker. A second call is a no-op.
func (c *cell) start(ctx context.Context) error {
	if !c.setState(startedState, true) {
		return nil
	}

	c.logger.Debugf("Actor %s is starting...", c.path)
	c.ctx = context.WithoutCancel(ctx)

	cctx, cancel := context.WithTimeout(ctx, c.system.preStartTimeout.Load())
	defer cancel()

	retrier := retry.NewRetrier(int(c.system.preStartRetries.Load()), time.Millisecond, c.system.preStartTimeout.Load())
	if err := retrier.RunContext(cctx, c.preStart); err != nil {
		c.setState(stoppedState, true)
		c.mailbox.dispose()
		c.logger.Errorf("Actor %s failed to start: %v", c.path, err)
		return errors.NewErrPreStartFailure(err)
	}

	c.stopLocker.Lock()
	defer c.stopLocker.Unlock()

	if c.isStateSet(stoppingState) {
		// stopped while PreStart was running, nothing will drain the mailbox
		c.postStop()
		c.mailbox.dispose()
		c.setState(stoppedState, true)
		return errors.NewErrPreStartFailure(errors.ErrDead)
	}

	c.setState(runningState, true)
	go c.process()

	c.logger.Debugf("Actor %s successfully started.", c.path)
	return nil
}

func (c *cell) preStart(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewPanicError(fmt.Errorf("%v", r))
		}
	}()
	return c.actor.PreStart(ctx)
}

// enqueue accepts the message whatever the paused state is
func (c *cell) enqueue(message any, sender *ActorRef) {
	c.mailbox.enqueue(message, sender)
}

// pause stops the worker from handling messages. Enqueueing still succeeds.
func (c *cell) pause() bool {
	c.pauseMu.Lock()
	defer c.pauseMu.Unlock()
	return c.setState(pausedState, true)
}

// resume wakes a worker waiting in awaitResume
func (c *cell) resume() bool {
	c.pauseMu.Lock()
	defer c.pauseMu.Unlock()
	changed := c.setState(pausedState, false)
	c.pauseCond.Broadcast()
	return changed
}

// awaitResume blocks while the cell is paused. It returns false when the
// cell is stopping and the worker must exit.
func (c *cell) awaitResume() bool {
	c.pauseMu.Lock()
	defer c.pauseMu.Unlock()
	for c.isStateSet(pausedState) && !c.isStateSet(stoppingState) {
		c.pauseCond.Wait()
	}
	return !c.isStateSet(stoppingState)
}

// stop retires the worker and runs PostStop. It returns true only for the
// call that actually stopped the cell.
//
// The worker is awaited until ctx is done. When ctx expires first, the worker
// still exits after its current message since the stopping flag is set.
// stop asks the worker to exit and waits for it. It reports whether this
// call initiated the stop. When ctx ends first the cell stays stopping and
// the returned error is ctx.Err(); finish must then run once done is closed.
func (c *cell) stop(ctx context.Context) (bool, error) {
	c.stopLocker.Lock()
	defer c.stopLocker.Unlock()

	if c.isStateSet(stoppedState) {
		return false, nil
	}

	c.pauseMu.Lock()
	alreadyStopping := !c.setState(stoppingState, true)
	c.pauseCond.Broadcast()
	c.pauseMu.Unlock()
	if alreadyStopping {
		return false, nil
	}

	c.logger.Debugf("Actor %s is stopping...", c.path)
	if !c.isStateSet(runningState) {
		// PreStart still running, start completes the stop
		return true, nil
	}

	c.mailbox.close()
	select {
	case <-c.done:
		c.finish()
		return true, nil
	case <-ctx.Done():
		c.logger.Warnf("Actor %s worker did not exit in time: %v", c.path, ctx.Err())
		return true, ctx.Err()
	}
}

// finish runs PostStop once the worker has exited
func (c *cell) finish() {
	<-c.done
	c.setState(runningState, false)
	c.postStop()
	c.mailbox.dispose()
	c.setState(stoppedState, true)
	c.logger.Debugf("Actor %s successfully stopped.", c.path)
}

func (c *cell) postStop() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(errors.NewShutdownHookError(c.path.String(), errors.NewPanicError(fmt.Errorf("%v", r))))
		}
	}()

	if err := c.actor.PostStop(c.ctx); err != nil {
		c.logger.Error(errors.NewShutdownHookError(c.path.String(), err))
	}
}

// process is the worker loop
func (c *cell) process() {
	defer close(c.done)

	for {
		env, err := c.mailbox.take()
		if err != nil || env == closeSentinel {
			return
		}

		if !c.awaitResume() {
			return
		}

		if isPoisonPill(env.message) {
			c.logger.Infof("Actor %s received a PoisonPill, stopping...", c.path)
			c.system.stopAsync(c)
			return
		}

		c.handle(env)
	}
}

// handle runs Receive for one envelope. A failure is isolated to that envelope.
func (c *cell) handle(env *envelope) {
	rctx := newReceiveContext(c.ctx, c, env)
	start := time.Now()
	err := c.receive(rctx)
	latency := time.Since(start)

	if err != nil {
		c.failed.Inc()
		processingErr := errors.NewProcessingError(c.path.String(), env.id, err)
		c.logger.Error(processingErr)
		c.system.recordFailure(c, env, processingErr)
		return
	}

	c.processed.Inc()
	c.lastLatency.Store(latency)
	c.system.recordSuccess(c, env, latency)
}

func (c *cell) receive(rctx *ReceiveContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewPanicError(fmt.Errorf("%v", r))
		}
	}()
	c.actor.Receive(rctx)
	return rctx.getError()
}

func (c *cell) isGuardian() bool {
	return c.isStateSet(guardianState)
}

func (c *cell) isPaused() bool {
	return c.isStateSet(pausedState)
}

// isAlive reports whether the cell accepts to become a parent
func (c *cell) isAlive() bool {
	return !c.isStateSet(stoppingState) && !c.isStateSet(stoppedState) && !c.isStateSet(terminatingState)
}

func (c *cell) backlog() int64 {
	if c.mailbox.disposed() {
		return 0
	}
	return c.mailbox.len()
}
