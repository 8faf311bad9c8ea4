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

package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RuntimeMetric groups the OpenTelemetry instruments of an actor system.
//
// Synchronous instruments, recorded by the runtime as things happen:
//   - actor.created                (Int64Counter)
//   - actor.stopped                (Int64Counter)
//   - actor.messages.processed     (Int64Counter, attribute actor)
//   - actor.messages.failed        (Int64Counter, attribute actor)
//   - actor.messages.latency       (Float64Histogram, unit ms)
//
// Asynchronous instruments, observed through Meter.RegisterCallback:
//   - actorsystem.actors.count     (Int64ObservableGauge)
//   - actorsystem.backlog          (Int64ObservableGauge)
//   - actorsystem.paused.count     (Int64ObservableGauge)
type RuntimeMetric struct {
	actorsCreated     metric.Int64Counter
	actorsStopped     metric.Int64Counter
	messagesProcessed metric.Int64Counter
	messagesFailed    metric.Int64Counter
	latency           metric.Float64Histogram
	actorsCount       metric.Int64ObservableGauge
	backlog           metric.Int64ObservableGauge
	pausedCount       metric.Int64ObservableGauge
}

// NewRuntimeMetric creates the instruments with the given Meter
func NewRuntimeMetric(meter metric.Meter) (*RuntimeMetric, error) {
	instruments := new(RuntimeMetric)
	var err error

	if instruments.actorsCreated, err = meter.Int64Counter(
		"actor.created",
		metric.WithDescription("Total number of actors created"),
	); err != nil {
		return nil, fmt.Errorf("failed to create actorsCreated instrument, %w", err)
	}

	if instruments.actorsStopped, err = meter.Int64Counter(
		"actor.stopped",
		metric.WithDescription("Total number of actors stopped"),
	); err != nil {
		return nil, fmt.Errorf("failed to create actorsStopped instrument, %w", err)
	}

	if instruments.messagesProcessed, err = meter.Int64Counter(
		"actor.messages.processed",
		metric.WithDescription("Total number of messages successfully handled"),
	); err != nil {
		return nil, fmt.Errorf("failed to create messagesProcessed instrument, %w", err)
	}

	if instruments.messagesFailed, err = meter.Int64Counter(
		"actor.messages.failed",
		metric.WithDescription("Total number of messages whose handling failed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create messagesFailed instrument, %w", err)
	}

	if instruments.latency, err = meter.Float64Histogram(
		"actor.messages.latency",
		metric.WithDescription("Time spent handling a message"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create latency instrument, %w", err)
	}

	if instruments.actorsCount, err = meter.Int64ObservableGauge(
		"actorsystem.actors.count",
		metric.WithDescription("Number of live actors, guardians included"),
	); err != nil {
		return nil, fmt.Errorf("failed to create actorsCount instrument, %w", err)
	}

	if instruments.backlog, err = meter.Int64ObservableGauge(
		"actorsystem.backlog",
		metric.WithDescription("Number of messages waiting in all mailboxes"),
	); err != nil {
		return nil, fmt.Errorf("failed to create backlog instrument, %w", err)
	}

	if instruments.pausedCount, err = meter.Int64ObservableGauge(
		"actorsystem.paused.count",
		metric.WithDescription("Number of paused actors"),
	); err != nil {
		return nil, fmt.Errorf("failed to create pausedCount instrument, %w", err)
	}

	return instruments, nil
}

// ActorsCreated returns the counter incremented on every actor creation
func (x *RuntimeMetric) ActorsCreated() metric.Int64Counter {
	return x.actorsCreated
}

// ActorsStopped returns the counter incremented on every actor stop
func (x *RuntimeMetric) ActorsStopped() metric.Int64Counter {
	return x.actorsStopped
}

// MessagesProcessed returns the counter of successfully handled messages
func (x *RuntimeMetric) MessagesProcessed() metric.Int64Counter {
	return x.messagesProcessed
}

// MessagesFailed returns the counter of failed messages
func (x *RuntimeMetric) MessagesFailed() metric.Int64Counter {
	return x.messagesFailed
}

// Latency returns the message handling duration histogram
func (x *RuntimeMetric) Latency() metric.Float64Histogram {
	return x.latency
}

// ActorsCount returns the gauge of live actors.
// Use with Meter.RegisterCallback.
func (x *RuntimeMetric) ActorsCount() metric.Int64ObservableGauge {
	return x.actorsCount
}

// Backlog returns the gauge of pending messages.
// Use with Meter.RegisterCallback.
func (x *RuntimeMetric) Backlog() metric.Int64ObservableGauge {
	return x.backlog
}

// PausedCount returns the gauge of paused actors.
// Use with Meter.RegisterCallback.
func (x *RuntimeMetric) PausedCount() metric.Int64ObservableGauge {
	return x.pausedCount
}
