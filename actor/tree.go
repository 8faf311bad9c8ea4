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
	"sort"

	goset "github.com/deckarep/golang-set/v2"
)

// tree records the children of every parent path.
// It is not safe for concurrent use, the actor system guards it.
type tree struct {
	children map[string]goset.Set[string]
}

func newTree() *tree {
	return &tree{children: make(map[string]goset.Set[string])}
}

func (t *tree) addChild(parent, child string) {
	set, ok := t.children[parent]
	if !ok {
		set = goset.NewThreadUnsafeSet[string]()
		t.children[parent] = set
	}
	set.Add(child)
}

func (t *tree) removeChild(parent, child string) {
	set, ok := t.children[parent]
	if !ok {
		return
	}
	set.Remove(child)
	if set.IsEmpty() {
		delete(t.children, parent)
	}
}

// childrenOf returns the child paths of parent, sorted
func (t *tree) childrenOf(parent string) []string {
	set, ok := t.children[parent]
	if !ok {
		return nil
	}
	out := set.ToSlice()
	sort.Strings(out)
	return out
}

// forget drops the child set of path
func (t *tree) forget(path string) {
	delete(t.children, path)
}

func (t *tree) reset() {
	t.children = make(map[string]goset.Set[string])
}
