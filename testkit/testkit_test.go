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
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/akkajr/akkajr/actor"
	"github.com/akkajr/akkajr/log"
)

type ping struct{ n int }

type pong struct{ n int }

// pinger answers every ping with a pong to the sender
type pinger struct{}

func (p *pinger) PreStart(context.Context) error { return nil }

func (p *pinger) Receive(ctx *actor.ReceiveContext) {
	if msg, ok := ctx.Message().(*ping); ok && ctx.Sender() != nil {
		_ = ctx.Tell(ctx.Sender(), &pong{n: msg.n})
	}
}

func (p *pinger) PostStop(context.Context) error { return nil }

func pingerProps() *actor.Props {
	return actor.PropsOf(func() actor.Actor { return &pinger{} })
}

func TestTestKit(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("ActorSystem", func(t *testing.T) {
		kit := New(t, WithLogging(log.ErrorLevel))
		require.NotNil(t, kit.ActorSystem())
		require.Equal(t, "testkit", kit.ActorSystem().Name())
	})
	t.Run("Spawn", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)

		ref := kit.Spawn(ctx, "pinger", pingerProps())
		require.Equal(t, "/user/pinger", ref.Path().String())
	})
	t.Run("SpawnChild", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)

		kit.Spawn(ctx, "parent", pingerProps())
		ref := kit.SpawnChild(ctx, "child", "/user/parent", pingerProps())
		require.Equal(t, "/user/parent/child", ref.Path().String())

		_, ok := kit.ActorSystem().ActorSelection("/user/parent/child")
		require.True(t, ok)
	})
	t.Run("Shutdown", func(t *testing.T) {
		kit := New(t)
		kit.Shutdown(context.Background())

		_, ok := kit.ActorSystem().ActorSelection("/user")
		require.False(t, ok)
	})
}

func TestProbe(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("ExpectMessage", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)
		target := kit.Spawn(ctx, "pinger", pingerProps())

		probe := kit.NewProbe(ctx)
		probe.Send("/user/pinger", &ping{n: 1})
		probe.ExpectMessage(&pong{n: 1})
		require.True(t, target.Equals(probe.Sender()))

		probe.Send("/user/pinger", &ping{n: 2})
		probe.ExpectMessageWithin(time.Second, &pong{n: 2})
		probe.Stop()
	})
	t.Run("ExpectMessageOfType", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)
		kit.Spawn(ctx, "pinger", pingerProps())

		probe := kit.NewProbe(ctx)
		probe.Send("/user/pinger", &ping{n: 1})
		probe.ExpectMessageOfType(&pong{})

		probe.Send("/user/pinger", &ping{n: 2})
		probe.ExpectMessageOfTypeWithin(time.Second, &pong{})
	})
	t.Run("ExpectAnyMessage", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)
		kit.Spawn(ctx, "pinger", pingerProps())

		probe := kit.NewProbe(ctx)
		probe.Send("/user/pinger", &ping{n: 3})
		require.Equal(t, &pong{n: 3}, probe.ExpectAnyMessage())

		probe.Send("/user/pinger", &ping{n: 4})
		require.Equal(t, &pong{n: 4}, probe.ExpectAnyMessageWithin(time.Second))
	})
	t.Run("Tell without sender", func(t *testing.T) {
		ctx := context.Background()
		kit := New(t)
		kit.Spawn(ctx, "pinger", pingerProps())

		probe := kit.NewProbe(ctx)
		require.NoError(t, probe.Ref().Tell("hello", nil))
		require.Equal(t, "hello", probe.ExpectAnyMessage())
		require.Nil(t, probe.Sender())
	})
}
