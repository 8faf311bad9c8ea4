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
	"github.com/Workiva/go-datastructures/queue"
)

const mailboxSizeHint = 16

// closeSentinel releases a worker parked in take when the actor stops
var closeSentinel = &envelope{id: "close"}

// mailbox is an unbounded FIFO queue of envelopes.
//
// Producers never block. The single consumer blocks in take until an
// envelope arrives or the mailbox is disposed. Depth is never used to
// reject a message: a paused actor's mailbox grows without bound.
type mailbox struct {
	underlying *queue.Queue
}

func newMailbox() *mailbox {
	return &mailbox{underlying: queue.New(mailboxSizeHint)}
}

// enqueue wraps the message into an envelope and appends it.
// The message is dropped when the mailbox has been disposed.
func (m *mailbox) enqueue(message any, sender *ActorRef) {
	_ = m.underlying.Put(newEnvelope(message, sender))
}

// take returns the next envelope, blocking while the mailbox is empty
func (m *mailbox) take() (*envelope, error) {
	items, err := m.underlying.Get(1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return closeSentinel, nil
	}
	return items[0].(*envelope), nil
}

// close appends the sentinel behind every pending envelope
func (m *mailbox) close() {
	_ = m.underlying.Put(closeSentinel)
}

// len returns the approximate number of pending envelopes
func (m *mailbox) len() int64 {
	return m.underlying.Len()
}

// dispose drops pending envelopes and rejects the future ones
func (m *mailbox) dispose() {
	m.underlying.Dispose()
}

func (m *mailbox) disposed() bool {
	return m.underlying.Disposed()
}
