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

package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTicker(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("With ticks", func(t *testing.T) {
		tk := New(10 * time.Millisecond)
		require.False(t, tk.Ticking())

		tk.Start()
		tk.Start()
		require.True(t, tk.Ticking())

		select {
		case <-tk.Ticks:
		case <-time.After(time.Second):
			t.Fatal("no tick received")
		}

		tk.Stop()
		tk.Stop()
		assert.False(t, tk.Ticking())
	})
	t.Run("With restart", func(t *testing.T) {
		tk := New(10 * time.Millisecond)
		tk.Start()
		tk.Stop()
		tk.Start()

		select {
		case <-tk.Ticks:
		case <-time.After(time.Second):
			t.Fatal("no tick received")
		}
		tk.Stop()
	})
	t.Run("With invalid intervals", func(t *testing.T) {
		assert.Panics(t, func() { New(0) })
	})
}
