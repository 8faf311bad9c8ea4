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

package ringbuffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer(t *testing.T) {
	t.Run("With fewer items than capacity", func(t *testing.T) {
		ring := New[int](3)
		ring.Push(1)
		ring.Push(2)
		require.Equal(t, 2, ring.Len())
		require.Equal(t, 3, ring.Cap())
		assert.Equal(t, []int{1, 2}, ring.Snapshot())
	})
	t.Run("With overflow drops the oldest", func(t *testing.T) {
		ring := New[int](3)
		for i := 1; i <= 5; i++ {
			ring.Push(i)
		}
		require.Equal(t, 3, ring.Len())
		assert.Equal(t, []int{3, 4, 5}, ring.Snapshot())
	})
	t.Run("With reset", func(t *testing.T) {
		ring := New[string](2)
		ring.Push("a")
		ring.Reset()
		assert.Zero(t, ring.Len())
		assert.Empty(t, ring.Snapshot())
		ring.Push("b")
		assert.Equal(t, []string{"b"}, ring.Snapshot())
	})
	t.Run("With invalid capacity", func(t *testing.T) {
		ring := New[int](0)
		assert.Equal(t, 1, ring.Cap())
		ring.Push(1)
		ring.Push(2)
		assert.Equal(t, []int{2}, ring.Snapshot())
	})
	t.Run("With concurrent pushes", func(t *testing.T) {
		ring := New[int](200)
		var wg sync.WaitGroup
		for g := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 100 {
					ring.Push(g*100 + i)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 200, ring.Len())
	})
}
