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

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/akkajr/akkajr/address"
	"github.com/akkajr/akkajr/errors"
	"github.com/akkajr/akkajr/eventstream"
	"github.com/akkajr/akkajr/internal/chain"
	"github.com/akkajr/akkajr/internal/metric"
	"github.com/akkajr/akkajr/internal/ringbuffer"
	"github.com/akkajr/akkajr/internal/ticker"
	"github.com/akkajr/akkajr/internal/validation"
	"github.com/akkajr/akkajr/log"
)

const (
	systemNamePattern = "^[a-zA-Z0-9][a-zA-Z0-9-_]*$"

	DefaultEventsCapacity   = 200
	DefaultBacklogThreshold = int64(1000)
	DefaultPreStartRetries  = 1
	DefaultPreStartTimeout  = 5 * time.Second
	DefaultShutdownTimeout  = 30 * time.Second

	anonymousPrefix  = "actor-"
	registrySizeHint = 64
)

// ActorSystem is the runtime hosting actors.
//
// Every actor lives under one of the two guardians: "/user" for
// application actors and "/system" for runtime actors. The guardians
// exist until Shutdown and cannot be stopped.
type ActorSystem interface {
	// Name returns the actor system name
	Name() string
	// Logger returns the actor system logger
	Logger() log.Logger
	// ActorOf creates an actor under "/user". An empty name gets a generated one.
	ActorOf(ctx context.Context, props *Props, name string) (*ActorRef, error)
	// ActorOfChild creates an actor under the given live parent
	ActorOfChild(ctx context.Context, props *Props, name string, parent *ActorRef) (*ActorRef, error)
	// ActorOfSystem creates an actor under "/system"
	ActorOfSystem(ctx context.Context, props *Props, name string) (*ActorRef, error)
	// Stop stops the actor and all its descendants, deepest first.
	// It is a no-op for nil, unknown or guardian refs.
	Stop(ctx context.Context, ref *ActorRef)
	// Pause stops the actor from handling messages. Messages sent meanwhile are kept.
	Pause(ref *ActorRef)
	// Resume resumes a paused actor
	Resume(ref *ActorRef)
	// SendPoisonPill stops the actor once the messages sent before are handled
	SendPoisonPill(ref *ActorRef)
	// ActorSelection looks an actor up by its exact path
	ActorSelection(path string) (*ActorRef, bool)
	// Shutdown stops every actor then the guardians
	Shutdown(ctx context.Context) error
	// MetricsSnapshot returns the counters and gauges of the actor system
	MetricsSnapshot() MetricsSnapshot
	// ActorStates returns the state of every actor sorted by path
	ActorStates() []ActorState
	// RecentEvents returns the last message events, oldest first
	RecentEvents() []MessageEvent
	// Alerts evaluates the thresholds against the current metrics
	Alerts() []Alert
	// Health returns the actor system health
	Health() Health
	// Subscribe creates a subscriber receiving the lifecycle, message and metrics events
	Subscribe() eventstream.Subscriber
	// Unsubscribe removes the subscriber and shuts it down
	Unsubscribe(subscriber eventstream.Subscriber)
}

type actorSystem struct {
	name   string
	logger log.Logger

	cells       *cellMap
	tree        *tree
	treeMu      sync.Mutex
	nameCounter atomic.Uint64

	userGuardian   *cell
	systemGuardian *cell

	actorsCreated     atomic.Int64
	actorsStopped     atomic.Int64
	messagesProcessed atomic.Int64
	messagesFailed    atomic.Int64

	events         *ringbuffer.RingBuffer[MessageEvent]
	eventsCapacity int
	eventsStream   *eventstream.EventsStream

	backlogThreshold atomic.Int64
	preStartRetries  atomic.Int32
	preStartTimeout  atomic.Duration
	shutdownTimeout  atomic.Duration

	metricEnabled atomic.Bool
	meterProvider otelmetric.MeterProvider
	instruments   *metric.RuntimeMetric
	registration  otelmetric.Registration

	metricsStreamInterval time.Duration
	metricsTicker         *ticker.Ticker
	metricsStreamStop     chan struct{}
	metricsStreamDone     chan struct{}

	running    atomic.Bool
	asyncStops sync.WaitGroup
}

var _ ActorSystem = (*actorSystem)(nil)

// NewActorSystem creates and starts an actor system with its two guardians
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if err := validation.
		New(validation.FailFast()).
		AddValidator(validation.NewEmptyStringValidator("name", name)).
		AddValidator(validation.NewPatternValidator(systemNamePattern, name, errors.ErrInvalidActorSystemName)).
		Validate(); err != nil {
		return nil, err
	}

	system := &actorSystem{
		name:           name,
		logger:         log.DefaultLogger,
		tree:           newTree(),
		eventsCapacity: DefaultEventsCapacity,
		eventsStream:   eventstream.New(),
	}

	system.backlogThreshold.Store(DefaultBacklogThreshold)
	system.preStartRetries.Store(DefaultPreStartRetries)
	system.preStartTimeout.Store(DefaultPreStartTimeout)
	system.shutdownTimeout.Store(DefaultShutdownTimeout)

	for _, opt := range opts {
		opt.Apply(system)
	}

	system.cells = newCellMap(registrySizeHint)
	system.events = ringbuffer.New[MessageEvent](system.eventsCapacity)

	if err := system.registerMetrics(); err != nil {
		return nil, err
	}

	if err := system.spawnGuardians(); err != nil {
		return nil, err
	}

	system.startMetricsStream()
	system.running.Store(true)
	system.logger.Infof("ActorSystem %s started", name)
	return system, nil
}

func (x *actorSystem) Name() string {
	return x.name
}

func (x *actorSystem) Logger() log.Logger {
	return x.logger
}

func (x *actorSystem) ActorOf(ctx context.Context, props *Props, name string) (*ActorRef, error) {
	return x.actorOf(ctx, props, name, x.userGuardian.path)
}

func (x *actorSystem) ActorOfChild(ctx context.Context, props *Props, name string, parent *ActorRef) (*ActorRef, error) {
	if parent == nil {
		return nil, errors.NewErrValidation(fmt.Errorf("the [parent] is required"))
	}
	return x.actorOf(ctx, props, name, parent.path)
}

func (x *actorSystem) ActorOfSystem(ctx context.Context, props *Props, name string) (*ActorRef, error) {
	return x.actorOf(ctx, props, name, x.systemGuardian.path)
}

func (x *actorSystem) actorOf(ctx context.Context, props *Props, name string, parentPath *address.Path) (*ActorRef, error) {
	if !x.running.Load() {
		return nil, errors.ErrActorSystemNotRunning
	}

	if props == nil {
		return nil, errors.NewErrValidation(fmt.Errorf("the [props] is required"))
	}

	if name == "" {
		name = fmt.Sprintf("%s%d", anonymousPrefix, x.nameCounter.Inc())
	}

	path, err := parentPath.Child(name)
	if err != nil {
		return nil, err
	}

	if !x.isLiveParent(parentPath) {
		return nil, errors.NewErrUnresolvedParent(parentPath.String())
	}

	if x.cells.has(path.String()) {
		return nil, errors.NewErrDuplicateName(path.String())
	}

	actor, err := props.Instantiate()
	if err != nil {
		return nil, err
	}

	// the parent may have been stopped while the actor was instantiated
	x.treeMu.Lock()
	if !x.isLiveParent(parentPath) {
		x.treeMu.Unlock()
		return nil, errors.NewErrUnresolvedParent(parentPath.String())
	}

	if x.cells.has(path.String()) {
		x.treeMu.Unlock()
		return nil, errors.NewErrDuplicateName(path.String())
	}

	c := newCell(x, actor, path, parentPath)
	x.cells.set(c)
	x.tree.addChild(parentPath.String(), path.String())
	x.treeMu.Unlock()

	// PreStart may create actors itself so it runs outside the lock
	if err := c.start(ctx); err != nil {
		x.unregister(c)
		return nil, err
	}

	x.actorsCreated.Inc()
	if x.instruments != nil {
		x.instruments.ActorsCreated().Add(ctx, 1, otelmetric.WithAttributes(attribute.String("actor", path.String())))
	}

	x.eventsStream.Publish(ActorsTopic, &ActorStarted{Path: path.String(), Timestamp: time.Now()})
	x.logger.Infof("Actor %s created", path)
	return c.ref, nil
}

func (x *actorSystem) isLiveParent(path *address.Path) bool {
	parent, ok := x.cells.get(path.String())
	return ok && parent.isAlive()
}

func (x *actorSystem) Stop(ctx context.Context, ref *ActorRef) {
	if ref == nil {
		return
	}

	c, ok := x.cells.get(ref.path.String())
	if !ok || c.isGuardian() {
		return
	}

	if err := x.stopTree(ctx, c); err != nil {
		x.logger.Warnf("Actor %s stop did not complete: %v", ref.path, err)
	}
}

// stopTree stops the descendants of c in parallel, then c itself, then
// forgets c. A concurrent call on the same cell waits for the first to end.
func (x *actorSystem) stopTree(ctx context.Context, c *cell) error {
	x.treeMu.Lock()
	if !c.setState(terminatingState, true) {
		x.treeMu.Unlock()
		select {
		case <-c.terminated:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	children := x.tree.childrenOf(c.path.String())
	x.treeMu.Unlock()

	eg := new(errgroup.Group)
	for _, childPath := range children {
		if child, ok := x.cells.get(childPath); ok {
			eg.Go(func() error {
				return x.stopTree(ctx, child)
			})
		}
	}
	err := eg.Wait()

	wasRunning := c.isStateSet(runningState)
	initiated, stopErr := c.stop(ctx)
	if stopErr != nil {
		// the worker is still handling a message, complete once it exits
		go func() {
			c.finish()
			x.completeStop(ctx, c, initiated && wasRunning)
		}()
		return multierr.Append(err, stopErr)
	}

	x.completeStop(ctx, c, initiated && wasRunning)
	return err
}

// completeStop forgets a cell whose worker has exited
func (x *actorSystem) completeStop(ctx context.Context, c *cell, counted bool) {
	x.unregister(c)

	if counted && !c.isGuardian() {
		x.actorsStopped.Inc()
		if x.instruments != nil {
			x.instruments.ActorsStopped().Add(context.WithoutCancel(ctx), 1, otelmetric.WithAttributes(attribute.String("actor", c.path.String())))
		}
		x.eventsStream.Publish(ActorsTopic, &ActorStopped{Path: c.path.String(), Timestamp: time.Now()})
		x.logger.Infof("Actor %s stopped", c.path)
	}

	close(c.terminated)
}

// stopAsync stops the cell from a goroutine not owned by its subtree
func (x *actorSystem) stopAsync(c *cell) {
	x.asyncStops.Add(1)
	go func() {
		defer x.asyncStops.Done()
		ctx, cancel := context.WithTimeout(context.Background(), x.shutdownTimeout.Load())
		defer cancel()
		if err := x.stopTree(ctx, c); err != nil {
			x.logger.Warnf("Actor %s stop did not complete: %v", c.path, err)
		}
	}()
}

func (x *actorSystem) unregister(c *cell) {
	x.treeMu.Lock()
	defer x.treeMu.Unlock()

	if current, ok := x.cells.get(c.path.String()); ok && current == c {
		x.cells.delete(c.path.String())
	}

	if c.parent != nil {
		x.tree.removeChild(c.parent.String(), c.path.String())
	}
	x.tree.forget(c.path.String())
}

func (x *actorSystem) Pause(ref *ActorRef) {
	if ref == nil {
		return
	}

	if c, ok := x.cells.get(ref.path.String()); ok && c.pause() {
		x.eventsStream.Publish(ActorsTopic, &ActorPaused{Path: c.path.String(), Timestamp: time.Now()})
		x.logger.Debugf("Actor %s paused", c.path)
	}
}

func (x *actorSystem) Resume(ref *ActorRef) {
	if ref == nil {
		return
	}

	if c, ok := x.cells.get(ref.path.String()); ok && c.resume() {
		x.eventsStream.Publish(ActorsTopic, &ActorResumed{Path: c.path.String(), Timestamp: time.Now()})
		x.logger.Debugf("Actor %s resumed", c.path)
	}
}

func (x *actorSystem) SendPoisonPill(ref *ActorRef) {
	if ref == nil {
		return
	}
	_ = ref.Tell(poisonPill, nil)
}

func (x *actorSystem) ActorSelection(path string) (*ActorRef, bool) {
	c, ok := x.cells.get(path)
	if !ok {
		return nil, false
	}
	return c.ref, true
}

func (x *actorSystem) Subscribe() eventstream.Subscriber {
	subscriber := x.eventsStream.AddSubscriber()
	x.eventsStream.Subscribe(subscriber, ActorsTopic)
	x.eventsStream.Subscribe(subscriber, MetricsTopic)
	return subscriber
}

func (x *actorSystem) Unsubscribe(subscriber eventstream.Subscriber) {
	if subscriber == nil {
		return
	}
	x.eventsStream.RemoveSubscriber(subscriber)
}

func (x *actorSystem) Shutdown(ctx context.Context) error {
	if !x.running.CompareAndSwap(true, false) {
		return errors.ErrActorSystemNotRunning
	}

	x.logger.Infof("ActorSystem %s is shutting down...", x.name)

	ctx, cancel := context.WithTimeout(ctx, x.shutdownTimeout.Load())
	defer cancel()

	err := chain.
		New(chain.WithRunAll(), chain.WithContext(ctx)).
		AddContextRunner(x.stopMetricsStream).
		AddContextRunner(x.stopChildren(x.userGuardian)).
		AddContextRunner(x.stopChildren(x.systemGuardian)).
		AddContextRunner(func(ctx context.Context) error { return x.stopTree(ctx, x.userGuardian) }).
		AddContextRunner(func(ctx context.Context) error { return x.stopTree(ctx, x.systemGuardian) }).
		AddContextRunner(x.unregisterMetrics).
		Run()

	x.asyncStops.Wait()

	x.treeMu.Lock()
	x.cells.reset()
	x.tree.reset()
	x.treeMu.Unlock()

	x.eventsStream.Close()

	if err != nil {
		x.logger.Errorf("ActorSystem %s shutdown failed: %v", x.name, err)
	} else {
		x.logger.Infof("ActorSystem %s shut down", x.name)
	}
	return multierr.Append(err, x.logger.Flush())
}

func (x *actorSystem) stopChildren(parent *cell) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		x.treeMu.Lock()
		children := x.tree.childrenOf(parent.path.String())
		x.treeMu.Unlock()

		eg := new(errgroup.Group)
		for _, childPath := range children {
			if child, ok := x.cells.get(childPath); ok {
				eg.Go(func() error {
					return x.stopTree(ctx, child)
				})
			}
		}
		return eg.Wait()
	}
}

func (x *actorSystem) spawnGuardians() error {
	user := newCell(x, new(guardian), address.UserRoot(), nil)
	system := newCell(x, new(guardian), address.SystemRoot(), nil)

	for _, c := range []*cell{user, system} {
		c.setState(guardianState, true)
		if err := c.start(context.Background()); err != nil {
			return err
		}
		x.cells.set(c)
	}

	x.userGuardian = user
	x.systemGuardian = system
	return nil
}
