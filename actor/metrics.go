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
	"github.com/akkajr/akkajr/address"
)

// MetricsSnapshot aggregates the counters of the actor system.
// TotalActors includes the guardians. UserActors and SystemActors count
// the direct children of "/user" and "/system".
type MetricsSnapshot struct {
	ActorsCreated     int64
	ActorsStopped     int64
	MessagesProcessed int64
	MessagesFailed    int64
	TotalActors       int
	UserActors        int
	SystemActors      int
	PausedActors      int
	TotalBacklog      int64
}

// ActorState describes one live actor
type ActorState struct {
	Path      string
	Backlog   int64
	Paused    bool
	Guardian  bool
	Scope     string
	Processed int64
	Failed    int64
}

// MetricsSnapshot returns the current counters
func (x *actorSystem) MetricsSnapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		ActorsCreated:     x.actorsCreated.Load(),
		ActorsStopped:     x.actorsStopped.Load(),
		MessagesProcessed: x.messagesProcessed.Load(),
		MessagesFailed:    x.messagesFailed.Load(),
	}

	for _, c := range x.cells.cells() {
		snapshot.TotalActors++
		if c.isPaused() {
			snapshot.PausedActors++
		}
		snapshot.TotalBacklog += c.backlog()
	}

	// top-level actors only, the guardians and deeper descendants are not counted
	x.treeMu.Lock()
	snapshot.UserActors = len(x.tree.childrenOf(address.UserRoot().String()))
	snapshot.SystemActors = len(x.tree.childrenOf(address.SystemRoot().String()))
	x.treeMu.Unlock()
	return snapshot
}

// ActorStates returns the state of every live actor, sorted by path
func (x *actorSystem) ActorStates() []ActorState {
	cells := x.cells.cells()
	states := make([]ActorState, 0, len(cells))
	for _, c := range cells {
		states = append(states, ActorState{
			Path:      c.path.String(),
			Backlog:   c.backlog(),
			Paused:    c.isPaused(),
			Guardian:  c.isGuardian(),
			Scope:     c.path.Scope(),
			Processed: c.processed.Load(),
			Failed:    c.failed.Load(),
		})
	}
	return states
}

// RecentEvents returns the last recorded message events, oldest first
func (x *actorSystem) RecentEvents() []MessageEvent {
	return x.events.Snapshot()
}
