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

// Package address provides the hierarchical paths actors are addressed by.
//
// Every path is rooted at one of two namespaces: "/user" for actors created
// by applications and "/system" for actors created by the runtime itself.
// A path is made of slash-separated segments:
//
//	/user/orders/order-42
//
// Paths are immutable and compare by their canonical string.
package address

import (
	"fmt"
	"strings"

	"github.com/akkajr/akkajr/errors"
	"github.com/akkajr/akkajr/internal/validation"
)

const (
	separator = "/"

	// UserScope is the scope of paths rooted at UserRoot
	UserScope = "user"
	// SystemScope is the scope of paths rooted at SystemRoot
	SystemScope = "system"

	userRoot   = separator + UserScope
	systemRoot = separator + SystemScope
)

// Path is the canonical, slash-delimited location of an actor in the tree
type Path struct {
	value string
}

var _ validation.Validator = (*Path)(nil)

// UserRoot returns the root of the user namespace
func UserRoot() *Path {
	return &Path{value: userRoot}
}

// SystemRoot returns the root of the system namespace
func SystemRoot() *Path {
	return &Path{value: systemRoot}
}

// New parses the given string into a Path. It returns a validation error
// when the string is blank, is not rooted at "/user" or "/system", or holds
// an empty segment.
func New(value string) (*Path, error) {
	path := &Path{value: value}
	if err := path.Validate(); err != nil {
		return nil, err
	}
	return path, nil
}

// Validate checks the path is well formed
func (p *Path) Validate() error {
	if err := validation.NewEmptyStringValidator("path", p.value).Validate(); err != nil {
		return errors.NewErrValidation(err)
	}

	if p.value != userRoot && p.value != systemRoot &&
		!strings.HasPrefix(p.value, userRoot+separator) &&
		!strings.HasPrefix(p.value, systemRoot+separator) {
		return errors.NewErrValidation(fmt.Errorf("path %q must start with %s or %s", p.value, userRoot, systemRoot))
	}

	for _, segment := range p.segments()[1:] {
		if err := validation.NewSegmentValidator("path segment", segment).Validate(); err != nil {
			return errors.NewErrValidation(fmt.Errorf("path %q: %w", p.value, err))
		}
	}
	return nil
}

// Child returns the path of a child named name.
// It fails with a validation error when name is blank or holds a '/'.
func (p *Path) Child(name string) (*Path, error) {
	if err := validation.NewSegmentValidator("name", name).Validate(); err != nil {
		return nil, errors.NewErrValidation(err)
	}
	return &Path{value: p.value + separator + name}, nil
}

// Parent returns the path of the parent, or nil when p is a root
func (p *Path) Parent() *Path {
	if p.IsRoot() {
		return nil
	}
	index := strings.LastIndex(p.value, separator)
	return &Path{value: p.value[:index]}
}

// Name returns the last segment of the path
func (p *Path) Name() string {
	return p.value[strings.LastIndex(p.value, separator)+1:]
}

// Scope returns UserScope or SystemScope
func (p *Path) Scope() string {
	return p.segments()[0]
}

// Root returns the root of the namespace the path lives in
func (p *Path) Root() *Path {
	return &Path{value: separator + p.Scope()}
}

// IsRoot reports whether the path is "/user" or "/system"
func (p *Path) IsRoot() bool {
	return p.value == userRoot || p.value == systemRoot
}

// IsDescendantOf reports whether p lives strictly below other
func (p *Path) IsDescendantOf(other *Path) bool {
	if other == nil {
		return false
	}
	return strings.HasPrefix(p.value, other.value+separator)
}

// Depth returns the number of segments below the root
func (p *Path) Depth() int {
	return len(p.segments()) - 1
}

// Equals reports whether both paths are the same
func (p *Path) Equals(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.value == other.value
}

// String returns the canonical form of the path
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return p.value
}

func (p *Path) segments() []string {
	return strings.Split(strings.TrimPrefix(p.value, separator), separator)
}
