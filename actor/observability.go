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
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/akkajr/akkajr/internal/metric"
	"github.com/akkajr/akkajr/internal/ticker"
)

// AlertLevel is the severity of an Alert
type AlertLevel string

const (
	AlertInfo AlertLevel = "INFO"
	AlertWarn AlertLevel = "WARN"
)

// Alert codes
const (
	BacklogThresholdAlert = "backlog_threshold"
	ActorsPausedAlert     = "actors_paused"
	MessagesFailedAlert   = "messages_failed"
)

// Alert is a condition of the actor system worth looking at
type Alert struct {
	Level   AlertLevel
	Code    string
	Message string
}

// HealthStatus is the overall status reported by Health
type HealthStatus string

const (
	StatusUp           HealthStatus = "UP"
	StatusOutOfService HealthStatus = "OUT_OF_SERVICE"
)

// Health is the actor system health with the figures it was derived from
type Health struct {
	Status  HealthStatus
	Details map[string]any
}

// Alerts evaluates the current metrics
func (x *actorSystem) Alerts() []Alert {
	snapshot := x.MetricsSnapshot()
	threshold := x.backlogThreshold.Load()

	var alerts []Alert
	if snapshot.TotalBacklog > threshold {
		alerts = append(alerts, Alert{
			Level:   AlertWarn,
			Code:    BacklogThresholdAlert,
			Message: fmt.Sprintf("total backlog %d exceeds %d", snapshot.TotalBacklog, threshold),
		})
	}

	if snapshot.PausedActors > 0 {
		alerts = append(alerts, Alert{
			Level:   AlertInfo,
			Code:    ActorsPausedAlert,
			Message: fmt.Sprintf("%d actor(s) paused", snapshot.PausedActors),
		})
	}

	if snapshot.MessagesFailed > 0 {
		alerts = append(alerts, Alert{
			Level:   AlertWarn,
			Code:    MessagesFailedAlert,
			Message: fmt.Sprintf("%d message(s) failed", snapshot.MessagesFailed),
		})
	}
	return alerts
}

// Health reports StatusOutOfService when the total backlog exceeds the threshold
func (x *actorSystem) Health() Health {
	snapshot := x.MetricsSnapshot()
	status := StatusUp
	if snapshot.TotalBacklog > x.backlogThreshold.Load() {
		status = StatusOutOfService
	}

	return Health{
		Status: status,
		Details: map[string]any{
			"totalActors":    snapshot.TotalActors,
			"totalBacklog":   snapshot.TotalBacklog,
			"pausedActors":   snapshot.PausedActors,
			"messagesFailed": snapshot.MessagesFailed,
		},
	}
}

func (x *actorSystem) recordSuccess(c *cell, env *envelope, latency time.Duration) {
	x.recordEvent(MessageEvent{
		Type:      MessageProcessed,
		Timestamp: time.Now(),
		Path:      c.path.String(),
		MessageID: env.id,
		TraceID:   env.traceID,
		Detail:    latency.String(),
	})
	x.messagesProcessed.Inc()

	if x.instruments != nil {
		attrs := otelmetric.WithAttributes(attribute.String("actor", c.path.String()))
		x.instruments.MessagesProcessed().Add(c.ctx, 1, attrs)
		x.instruments.Latency().Record(c.ctx, float64(latency)/float64(time.Millisecond), attrs)
	}
}

func (x *actorSystem) recordFailure(c *cell, env *envelope, err error) {
	x.recordEvent(MessageEvent{
		Type:      MessageFailed,
		Timestamp: time.Now(),
		Path:      c.path.String(),
		MessageID: env.id,
		TraceID:   env.traceID,
		Detail:    err.Error(),
	})
	x.messagesFailed.Inc()

	if x.instruments != nil {
		x.instruments.MessagesFailed().Add(c.ctx, 1, otelmetric.WithAttributes(attribute.String("actor", c.path.String())))
	}
}

func (x *actorSystem) recordEvent(event MessageEvent) {
	x.events.Push(event)
	x.eventsStream.Publish(ActorsTopic, event)
}

// registerMetrics creates the OpenTelemetry instruments and the callback
// observing the gauges
func (x *actorSystem) registerMetrics() error {
	if !x.metricEnabled.Load() {
		return nil
	}

	var opts []metric.Option
	if x.meterProvider != nil {
		opts = append(opts, metric.WithMeterProvider(x.meterProvider))
	}

	meter := metric.New(opts...).Meter()
	instruments, err := metric.NewRuntimeMetric(meter)
	if err != nil {
		return err
	}

	observeOptions := []otelmetric.ObserveOption{
		otelmetric.WithAttributes(attribute.String("actor.system", x.name)),
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		snapshot := x.MetricsSnapshot()
		observer.ObserveInt64(instruments.ActorsCount(), int64(snapshot.TotalActors), observeOptions...)
		observer.ObserveInt64(instruments.Backlog(), snapshot.TotalBacklog, observeOptions...)
		observer.ObserveInt64(instruments.PausedCount(), int64(snapshot.PausedActors), observeOptions...)
		return nil
	}, instruments.ActorsCount(),
		instruments.Backlog(),
		instruments.PausedCount(),
	)
	if err != nil {
		return err
	}

	x.instruments = instruments
	x.registration = registration
	return nil
}

func (x *actorSystem) unregisterMetrics(context.Context) error {
	if x.registration == nil {
		return nil
	}
	return x.registration.Unregister()
}

// startMetricsStream publishes a snapshot on MetricsTopic at every tick
func (x *actorSystem) startMetricsStream() {
	if x.metricsStreamInterval <= 0 {
		return
	}

	x.metricsTicker = ticker.New(x.metricsStreamInterval)
	x.metricsStreamStop = make(chan struct{})
	x.metricsStreamDone = make(chan struct{})
	x.metricsTicker.Start()

	go func() {
		defer close(x.metricsStreamDone)
		for {
			select {
			case <-x.metricsTicker.Ticks:
				x.eventsStream.Publish(MetricsTopic, x.MetricsSnapshot())
			case <-x.metricsStreamStop:
				return
			}
		}
	}()
}

func (x *actorSystem) stopMetricsStream(context.Context) error {
	if x.metricsTicker == nil {
		return nil
	}
	close(x.metricsStreamStop)
	<-x.metricsStreamDone
	x.metricsTicker.Stop()
	return nil
}
