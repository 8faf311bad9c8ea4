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

	csmap "github.com/mhmtszr/concurrent-swiss-map"
	"github.com/zeebo/xxh3"
)

// cellMap indexes the live cells by their canonical path
type cellMap struct {
	mappings *csmap.CsMap[string, *cell]
}

func newCellMap(capacity int) *cellMap {
	m := csmap.Create[string, *cell](
		csmap.WithShardCount[string, *cell](32),
		csmap.WithCustomHasher[string, *cell](func(key string) uint64 {
			return xxh3.HashString(key)
		}),
		csmap.WithSize[string, *cell](uint64(capacity)),
	)
	return &cellMap{mappings: m}
}

func (m *cellMap) len() int {
	return m.mappings.Count()
}

func (m *cellMap) get(path string) (*cell, bool) {
	return m.mappings.Load(path)
}

func (m *cellMap) has(path string) bool {
	return m.mappings.Has(path)
}

func (m *cellMap) set(c *cell) {
	m.mappings.Store(c.path.String(), c)
}

func (m *cellMap) delete(path string) {
	m.mappings.Delete(path)
}

// cells returns every cell sorted by path
func (m *cellMap) cells() []*cell {
	out := make([]*cell, 0, m.mappings.Count())
	m.mappings.Range(func(_ string, c *cell) bool {
		out = append(out, c)
		return false
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].path.String() < out[j].path.String()
	})
	return out
}

func (m *cellMap) reset() {
	m.mappings.Clear()
}
