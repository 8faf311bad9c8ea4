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
	"time"

	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/akkajr/akkajr/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(sys *actorSystem)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*actorSystem)

func (f OptionFunc) Apply(c *actorSystem) {
	f(c)
}

// WithLogger sets the actor system custom log
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(a *actorSystem) {
		if logger != nil {
			a.logger = logger
		}
	})
}

// WithEventsCapacity sets how many recent processing events are kept.
// Values below one are ignored.
func WithEventsCapacity(capacity int) Option {
	return OptionFunc(func(a *actorSystem) {
		if capacity > 0 {
			a.eventsCapacity = capacity
		}
	})
}

// WithBacklogThreshold sets the total backlog above which the system
// raises a backlog alert and reports itself out of service.
func WithBacklogThreshold(threshold int64) Option {
	return OptionFunc(func(a *actorSystem) {
		if threshold > 0 {
			a.backlogThreshold.Store(threshold)
		}
	})
}

// WithPreStartRetries sets how many times PreStart is attempted before the
// creation fails. The default is a single attempt.
func WithPreStartRetries(retries int) Option {
	return OptionFunc(func(a *actorSystem) {
		if retries > 0 {
			a.preStartRetries.Store(int32(retries))
		}
	})
}

// WithPreStartTimeout bounds the PreStart attempts
func WithPreStartTimeout(timeout time.Duration) Option {
	return OptionFunc(func(a *actorSystem) {
		if timeout > 0 {
			a.preStartTimeout.Store(timeout)
		}
	})
}

// WithShutdownTimeout bounds Shutdown
func WithShutdownTimeout(timeout time.Duration) Option {
	return OptionFunc(func(a *actorSystem) {
		if timeout > 0 {
			a.shutdownTimeout.Store(timeout)
		}
	})
}

// WithMetrics registers the OpenTelemetry instruments with the global MeterProvider
func WithMetrics() Option {
	return OptionFunc(func(a *actorSystem) {
		a.metricEnabled.Store(true)
	})
}

// WithMeterProvider registers the OpenTelemetry instruments with the given MeterProvider
func WithMeterProvider(provider otelmetric.MeterProvider) Option {
	return OptionFunc(func(a *actorSystem) {
		if provider != nil {
			a.metricEnabled.Store(true)
			a.meterProvider = provider
		}
	})
}

// WithMetricsStream publishes a MetricsSnapshot on MetricsTopic every interval
func WithMetricsStream(interval time.Duration) Option {
	return OptionFunc(func(a *actorSystem) {
		if interval > 0 {
			a.metricsStreamInterval = interval
		}
	})
}
