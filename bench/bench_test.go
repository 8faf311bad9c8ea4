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

package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestBenchmark(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	benchmark := NewBenchmark(4, 8, 200*time.Millisecond)
	require.NoError(t, benchmark.Start(ctx))

	require.NoError(t, benchmark.BenchTell(ctx))
	require.Positive(t, benchmark.Sent())
	require.Equal(t, benchmark.Sent(), benchmark.Received())

	require.NoError(t, benchmark.Stop(ctx))
}

func BenchmarkTell(b *testing.B) {
	ctx := context.Background()
	benchmark := NewBenchmark(1, 1, 0)
	if err := benchmark.Start(ctx); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	if err := benchmark.Tell(b.N); err != nil {
		b.Fatal(err)
	}
	b.StopTimer()

	if err := benchmark.Stop(ctx); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkTellParallel(b *testing.B) {
	ctx := context.Background()
	benchmark := NewBenchmark(8, 1, 0)
	if err := benchmark.Start(ctx); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ref := benchmark.refs[0]
		for pb.Next() {
			_ = ref.Tell(new(benchTell), nil)
			benchmark.sent.Inc()
		}
	})
	if err := benchmark.drain(); err != nil {
		b.Fatal(err)
	}
	b.StopTimer()

	if err := benchmark.Stop(ctx); err != nil {
		b.Fatal(err)
	}
}
