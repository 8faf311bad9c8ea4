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
	"github.com/akkajr/akkajr/address"
	"github.com/akkajr/akkajr/errors"
)

// ActorRef is the handle used to send messages to an actor.
// Two refs are equal when they point at the same path.
type ActorRef struct {
	path *address.Path
	cell *cell
}

// Tell enqueues message into the actor's mailbox without waiting for it to
// be handled. sender may be nil.
//
// Tell succeeds while the actor is stopping; the message is then dropped
// once the mailbox is closed. It only fails when the ref is not attached
// to an actor.
func (r *ActorRef) Tell(message any, sender *ActorRef) error {
	if r == nil || r.cell == nil {
		return errors.ErrUndefinedActor
	}
	r.cell.enqueue(message, sender)
	return nil
}

// Path returns the actor path
func (r *ActorRef) Path() *address.Path {
	return r.path
}

// Name returns the actor name, the last segment of its path
func (r *ActorRef) Name() string {
	return r.path.Name()
}

// Equals reports whether both refs point at the same path
func (r *ActorRef) Equals(other *ActorRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.path.Equals(other.path)
}

// String returns the actor path
func (r *ActorRef) String() string {
	if r == nil {
		return ""
	}
	return r.path.String()
}
