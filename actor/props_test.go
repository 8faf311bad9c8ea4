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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akkajr/akkajr/errors"
)

func TestProps(t *testing.T) {
	t.Run("With arguments", func(t *testing.T) {
		args := []any{"a", 1}
		props := NewProps(func(args ...any) (Actor, error) {
			require.Len(t, args, 2)
			return newRecorder(), nil
		}, args...)

		args[0] = "changed"
		assert.Equal(t, []any{"a", 1}, props.Args())

		actor, err := props.Instantiate()
		require.NoError(t, err)
		assert.IsType(t, &recorder{}, actor)
	})
	t.Run("With a fresh actor per call", func(t *testing.T) {
		props := PropsOf(func() Actor { return newRecorder() })
		first, err := props.Instantiate()
		require.NoError(t, err)
		second, err := props.Instantiate()
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})
	t.Run("With nil factory", func(t *testing.T) {
		_, err := PropsOf(nil).Instantiate()
		assert.ErrorIs(t, err, errors.ErrInstantiation)
	})
	t.Run("With nil actor", func(t *testing.T) {
		_, err := NewProps(func(...any) (Actor, error) { return nil, nil }).Instantiate()
		assert.ErrorIs(t, err, errors.ErrInstantiation)
	})
	t.Run("With panicking factory", func(t *testing.T) {
		_, err := NewProps(func(...any) (Actor, error) { panic("boom") }).Instantiate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInstantiation)

		var panicErr *errors.PanicError
		assert.ErrorAs(t, err, &panicErr)
	})
}
