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

// cellState is the bitmask tracking a cell's lifecycle. The bits live in
// a single atomic.Uint32 and are flipped with a CAS loop.
//
//   - startedState:     start has been called, PreStart ran or is running.
//   - runningState:     the worker goroutine is draining the mailbox.
//   - pausedState:      the worker does not handle messages until resumed.
//   - stoppingState:    stop has been called, the worker is retiring.
//   - stoppedState:     terminal, PostStop ran.
//   - terminatingState: the actor system is tearing the cell's subtree down.
//   - guardianState:    the cell is one of the two root guardians.
type cellState uint32

const (
	startedState cellState = 1 << iota
	runningState
	pausedState
	stoppingState
	stoppedState
	terminatingState
	guardianState
)

func (c *cell) isStateSet(state cellState) bool {
	return c.state.Load()&uint32(state) != 0
}

// setState sets or clears the given flag and reports whether it changed
func (c *cell) setState(state cellState, enabled bool) bool {
	for {
		current := c.state.Load()
		var desired uint32
		if enabled {
			desired = current | uint32(state)
		} else {
			desired = current &^ uint32(state)
		}
		if desired == current {
			return false
		}
		if c.state.CompareAndSwap(current, desired) {
			return true
		}
	}
}
