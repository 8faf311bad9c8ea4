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

import "time"

const (
	// ActorsTopic carries the lifecycle events and the MessageEvent of every handled message
	ActorsTopic = "actors"
	// MetricsTopic carries the MetricsSnapshot published by WithMetricsStream
	MetricsTopic = "metrics"
)

// MessageEventType tells whether a message was handled or failed
type MessageEventType string

const (
	// MessageProcessed is recorded when Receive handled a message
	MessageProcessed MessageEventType = "processed"
	// MessageFailed is recorded when Receive failed on a message
	MessageFailed MessageEventType = "failed"
)

// MessageEvent describes the outcome of one message
type MessageEvent struct {
	Type      MessageEventType
	Timestamp time.Time
	Path      string
	MessageID string
	TraceID   string
	// Detail holds the handling latency, or the error text for a failure
	Detail string
}

// ActorStarted is published when an actor has been created
type ActorStarted struct {
	Path      string
	Timestamp time.Time
}

// ActorStopped is published when an actor has been stopped and unregistered
type ActorStopped struct {
	Path      string
	Timestamp time.Time
}

// ActorPaused is published when an actor has been paused
type ActorPaused struct {
	Path      string
	Timestamp time.Time
}

// ActorResumed is published when an actor has been resumed
type ActorResumed struct {
	Path      string
	Timestamp time.Time
}
