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
)

// Actor is the behavior an actor runs. Every actor has its own mailbox and
// its own goroutine: Receive is never called concurrently for one actor, and
// messages reach it in the order they were enqueued.
type Actor interface {
	// PreStart is invoked once, synchronously, while the actor is being created.
	//
	// If an error is returned the actor is not created: it never processes a
	// message and the error is returned to the caller of ActorOf.
	PreStart(ctx context.Context) error

	// Receive handles the messages sent to the actor's mailbox.
	//
	// A failure is reported with ctx.Err or by panicking. The failure is logged
	// and counted, and the actor moves on to the next message.
	Receive(ctx *ReceiveContext)

	// PostStop is invoked once after the actor's goroutine exited.
	//
	// A returned error is logged and otherwise ignored, stopping always completes.
	PostStop(ctx context.Context) error
}
