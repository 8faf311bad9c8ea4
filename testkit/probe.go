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
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akkajr/akkajr/actor"
)

const (
	MessagesQueueMax int           = 1000
	DefaultTimeout   time.Duration = 3 * time.Second
)

// Probe is an actor recording what it receives so tests can assert on it
type Probe interface {
	// ExpectMessage asserts that the next message received equals message
	ExpectMessage(message any)
	// ExpectMessageWithin asserts that the next message received within duration equals message
	ExpectMessageWithin(duration time.Duration, message any)
	// ExpectNoMessage asserts that nothing is received before the default timeout
	ExpectNoMessage()
	// ExpectAnyMessage returns the next message received
	ExpectAnyMessage() any
	// ExpectAnyMessageWithin returns the next message received within duration
	ExpectAnyMessageWithin(duration time.Duration) any
	// ExpectMessageOfType asserts that the next message has the same type as sample
	ExpectMessageOfType(sample any)
	// ExpectMessageOfTypeWithin asserts that the next message received within duration has the same type as sample
	ExpectMessageOfTypeWithin(duration time.Duration, sample any)
	// Send sends message to the actor at path with the probe as sender
	Send(path string, message any)
	// Sender returns the sender of the last received message
	Sender() *actor.ActorRef
	// Ref returns the probe actor ref
	Ref() *actor.ActorRef
	// Stop stops the probe actor
	Stop()
}

type message struct {
	sender  *actor.ActorRef
	payload any
}

type probeActor struct {
	messages chan message
}

var _ actor.Actor = (*probeActor)(nil)

func (x *probeActor) PreStart(context.Context) error {
	return nil
}

func (x *probeActor) Receive(ctx *actor.ReceiveContext) {
	x.messages <- message{
		sender:  ctx.Sender(),
		payload: ctx.Message(),
	}
}

func (x *probeActor) PostStop(context.Context) error {
	return nil
}

type probe struct {
	pt *testing.T

	testCtx        context.Context
	system         actor.ActorSystem
	ref            *actor.ActorRef
	lastSender     *actor.ActorRef
	messages       chan message
	defaultTimeout time.Duration
}

var _ Probe = (*probe)(nil)

func newProbe(ctx context.Context, system actor.ActorSystem, t *testing.T) (*probe, error) {
	messages := make(chan message, MessagesQueueMax)
	props := actor.PropsOf(func() actor.Actor { return &probeActor{messages: messages} })

	ref, err := system.ActorOf(ctx, props, "probe-"+uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &probe{
		pt:             t,
		testCtx:        ctx,
		system:         system,
		ref:            ref,
		messages:       messages,
		defaultTimeout: DefaultTimeout,
	}, nil
}

func (x *probe) ExpectMessage(message any) {
	x.expectMessage(x.defaultTimeout, message)
}

func (x *probe) ExpectMessageWithin(duration time.Duration, message any) {
	x.expectMessage(duration, message)
}

func (x *probe) ExpectNoMessage() {
	received := x.receiveOne(x.defaultTimeout)
	require.Nil(x.pt, received, fmt.Sprintf("received unexpected message %v", received))
}

func (x *probe) ExpectAnyMessage() any {
	return x.expectAnyMessage(x.defaultTimeout)
}

func (x *probe) ExpectAnyMessageWithin(duration time.Duration) any {
	return x.expectAnyMessage(duration)
}

func (x *probe) ExpectMessageOfType(sample any) {
	x.expectMessageOfType(x.defaultTimeout, sample)
}

func (x *probe) ExpectMessageOfTypeWithin(duration time.Duration, sample any) {
	x.expectMessageOfType(duration, sample)
}

func (x *probe) Send(path string, message any) {
	to, ok := x.system.ActorSelection(path)
	require.True(x.pt, ok, fmt.Sprintf("actor %s not found", path))
	require.NoError(x.pt, to.Tell(message, x.ref))
}

func (x *probe) Sender() *actor.ActorRef {
	return x.lastSender
}

func (x *probe) Ref() *actor.ActorRef {
	return x.ref
}

func (x *probe) Stop() {
	x.system.Stop(x.testCtx, x.ref)
}

// receiveOne returns nil when nothing arrives within max
func (x *probe) receiveOne(max time.Duration) any {
	timer := time.NewTimer(max)
	defer timer.Stop()

	select {
	case m := <-x.messages:
		x.lastSender = m.sender
		return m.payload
	case <-timer.C:
		return nil
	}
}

func (x *probe) expectMessage(max time.Duration, message any) {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectMessage while waiting for %v", max, message))
	require.Equal(x.pt, message, received, fmt.Sprintf("expected %v, found %v", message, received))
}

func (x *probe) expectAnyMessage(max time.Duration) any {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectAnyMessage while waiting", max))
	return received
}

func (x *probe) expectMessageOfType(max time.Duration, sample any) any {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectMessageOfType while waiting", max))

	expected, actual := reflect.TypeOf(sample), reflect.TypeOf(received)
	require.Equal(x.pt, expected, actual, fmt.Sprintf("expected %v, found %v", expected, actual))
	return received
}
