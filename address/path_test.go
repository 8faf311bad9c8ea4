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

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akkajr/akkajr/errors"
)

func TestPath(t *testing.T) {
	t.Run("With roots", func(t *testing.T) {
		user := UserRoot()
		system := SystemRoot()
		assert.Equal(t, "/user", user.String())
		assert.Equal(t, "/system", system.String())
		assert.True(t, user.IsRoot())
		assert.True(t, system.IsRoot())
		assert.Nil(t, user.Parent())
		assert.Nil(t, system.Parent())
		assert.Equal(t, UserScope, user.Scope())
		assert.Equal(t, SystemScope, system.Scope())
		assert.Equal(t, "user", user.Name())
		assert.Zero(t, user.Depth())
	})
	t.Run("With child and parent", func(t *testing.T) {
		parent, err := UserRoot().Child("p")
		require.NoError(t, err)
		child, err := parent.Child("child")
		require.NoError(t, err)

		assert.Equal(t, "/user/p/child", child.String())
		assert.Equal(t, "child", child.Name())
		assert.Equal(t, 2, child.Depth())
		assert.True(t, child.Parent().Equals(parent))
		assert.True(t, parent.Parent().Equals(UserRoot()))
		assert.True(t, child.IsDescendantOf(parent))
		assert.True(t, child.IsDescendantOf(UserRoot()))
		assert.False(t, parent.IsDescendantOf(child))
		assert.False(t, child.IsDescendantOf(SystemRoot()))
		assert.True(t, child.Root().Equals(UserRoot()))
	})
	t.Run("With blank child name", func(t *testing.T) {
		child, err := UserRoot().Child("  ")
		require.Error(t, err)
		assert.Nil(t, child)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
	t.Run("With child name holding a separator", func(t *testing.T) {
		_, err := UserRoot().Child("a/b")
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
	t.Run("With parsing", func(t *testing.T) {
		path, err := New("/system/metrics")
		require.NoError(t, err)
		assert.Equal(t, SystemScope, path.Scope())
		assert.Equal(t, "metrics", path.Name())

		root, err := New("/user")
		require.NoError(t, err)
		assert.True(t, root.Equals(UserRoot()))
	})
	t.Run("With malformed paths", func(t *testing.T) {
		for _, value := range []string{"", "   ", "user/a", "/users/a", "/other", "/user/", "/user//a", "/userx"} {
			path, err := New(value)
			assert.Nil(t, path, value)
			assert.ErrorIs(t, err, errors.ErrValidation, value)
		}
	})
	t.Run("With equality", func(t *testing.T) {
		a, _ := New("/user/a")
		b, _ := UserRoot().Child("a")
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(nil))
		var nilPath *Path
		assert.True(t, nilPath.Equals(nil))
		assert.Empty(t, nilPath.String())
	})
}
