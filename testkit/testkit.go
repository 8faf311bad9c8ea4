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

package testkit

import (
	"context"
	"testing"

	"github.com/akkajr/akkajr/actor"
	"github.com/akkajr/akkajr/log"
)

// TestKit runs an actor system for the duration of a test
type TestKit struct {
	actorSystem actor.ActorSystem
	kt          *testing.T
	logger      log.Logger
}

// New creates an instance of TestKit. The actor system is shut down when
// the test ends unless Shutdown has been called before.
func New(t *testing.T, opts ...Option) *TestKit {
	kit := &TestKit{
		kt:     t,
		logger: log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(kit)
	}

	system, err := actor.NewActorSystem("testkit", actor.WithLogger(kit.logger))
	if err != nil {
		t.Fatal(err.Error())
	}

	kit.actorSystem = system
	t.Cleanup(func() {
		_ = system.Shutdown(context.Background())
	})
	return kit
}

// ActorSystem returns the testkit actor system
func (k *TestKit) ActorSystem() actor.ActorSystem {
	return k.actorSystem
}

// Spawn creates an actor under "/user"
func (k *TestKit) Spawn(ctx context.Context, name string, props *actor.Props) *actor.ActorRef {
	ref, err := k.actorSystem.ActorOf(ctx, props, name)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return ref
}

// SpawnChild creates an actor under the actor living at parentPath
func (k *TestKit) SpawnChild(ctx context.Context, name, parentPath string, props *actor.Props) *actor.ActorRef {
	parent, ok := k.actorSystem.ActorSelection(parentPath)
	if !ok {
		k.kt.Fatalf("actor %s not found", parentPath)
	}

	ref, err := k.actorSystem.ActorOfChild(ctx, props, name, parent)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return ref
}

// NewProbe creates a test probe
func (k *TestKit) NewProbe(ctx context.Context) Probe {
	testProbe, err := newProbe(ctx, k.actorSystem, k.kt)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return testProbe
}

// Shutdown stops the actor system
func (k *TestKit) Shutdown(ctx context.Context) {
	if err := k.actorSystem.Shutdown(ctx); err != nil {
		k.kt.Fatal(err.Error())
	}
}
