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

	"github.com/akkajr/akkajr/address"
	"github.com/akkajr/akkajr/log"
)

// ReceiveContext is handed to Actor.Receive for every message.
// It is only valid for the duration of that Receive call.
type ReceiveContext struct {
	ctx     context.Context
	self    *cell
	message any
	sender  *ActorRef
	id      string
	traceID string
	err     error
}

func newReceiveContext(ctx context.Context, self *cell, env *envelope) *ReceiveContext {
	return &ReceiveContext{
		ctx:     ctx,
		self:    self,
		message: env.message,
		sender:  env.sender,
		id:      env.id,
		traceID: env.traceID,
	}
}

// Context returns the context the actor was created with, without its cancellation
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Message returns the message being handled
func (rctx *ReceiveContext) Message() any {
	return rctx.message
}

// Sender returns the sender of the message, or nil when there is none
func (rctx *ReceiveContext) Sender() *ActorRef {
	return rctx.sender
}

// MessageID returns the unique id stamped on the message when it was enqueued
func (rctx *ReceiveContext) MessageID() string {
	return rctx.id
}

// TraceID returns the trace id of the message
func (rctx *ReceiveContext) TraceID() string {
	return rctx.traceID
}

// Self returns the ref of the actor handling the message
func (rctx *ReceiveContext) Self() *ActorRef {
	return rctx.self.ref
}

// Parent returns the ref of the parent, or nil for a guardian or when the
// parent is gone
func (rctx *ReceiveContext) Parent() *ActorRef {
	if rctx.self.parent == nil {
		return nil
	}
	ref, _ := rctx.self.system.ActorSelection(rctx.self.parent.String())
	return ref
}

// ActorSystem returns the actor system the actor lives in
func (rctx *ReceiveContext) ActorSystem() ActorSystem {
	return rctx.self.system
}

// Logger returns the actor logger
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.logger
}

// Err marks the message as failed. The failure is logged and counted.
func (rctx *ReceiveContext) Err(err error) {
	rctx.err = err
}

func (rctx *ReceiveContext) getError() error {
	return rctx.err
}

// Tell sends message to the given actor with the current actor as sender
func (rctx *ReceiveContext) Tell(to *ActorRef, message any) error {
	return to.Tell(message, rctx.Self())
}

// Spawn creates a child of the current actor
func (rctx *ReceiveContext) Spawn(props *Props, name string) (*ActorRef, error) {
	return rctx.self.system.ActorOfChild(rctx.ctx, props, name, rctx.Self())
}

// SpawnSystem creates an actor under the system guardian
func (rctx *ReceiveContext) SpawnSystem(props *Props, name string) (*ActorRef, error) {
	return rctx.self.system.ActorOfSystem(rctx.ctx, props, name)
}

// ActorSelection looks an actor up by path
func (rctx *ReceiveContext) ActorSelection(path string) (*ActorRef, bool) {
	return rctx.self.system.ActorSelection(path)
}

// Stop stops the given actor and its descendants.
// When the current actor is part of that subtree the stop completes after
// Receive returns.
func (rctx *ReceiveContext) Stop(ref *ActorRef) {
	if ref == nil {
		return
	}

	self := rctx.self.path
	if self.Equals(ref.path) || self.IsDescendantOf(ref.path) {
		if target, ok := rctx.self.system.cells.get(ref.path.String()); ok && !target.isGuardian() {
			rctx.self.system.stopAsync(target)
		}
		return
	}
	rctx.self.system.Stop(rctx.ctx, ref)
}

// StopSelf stops the current actor once Receive returns
func (rctx *ReceiveContext) StopSelf() {
	rctx.Stop(rctx.Self())
}

// Pause pauses the given actor
func (rctx *ReceiveContext) Pause(ref *ActorRef) {
	rctx.self.system.Pause(ref)
}

// PauseSelf pauses the current actor after the message being handled
func (rctx *ReceiveContext) PauseSelf() {
	rctx.Pause(rctx.Self())
}

// Resume resumes the given actor
func (rctx *ReceiveContext) Resume(ref *ActorRef) {
	rctx.self.system.Resume(ref)
}

// ResumeSelf clears a pause requested earlier in the same Receive
func (rctx *ReceiveContext) ResumeSelf() {
	rctx.Resume(rctx.Self())
}

// Path returns the path of the current actor
func (rctx *ReceiveContext) Path() *address.Path {
	return rctx.self.path
}
