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
	"fmt"
	"slices"

	"github.com/akkajr/akkajr/errors"
)

// Factory builds a fresh actor from the arguments recorded in a Props
type Factory func(args ...any) (Actor, error)

// Props describes how to build an actor. The actor itself is only built
// when it is created by the actor system.
type Props struct {
	factory Factory
	args    []any
}

// NewProps creates a Props from a factory and the arguments to call it with.
// The arguments slice is copied.
func NewProps(factory Factory, args ...any) *Props {
	return &Props{
		factory: factory,
		args:    slices.Clone(args),
	}
}

// PropsOf creates a Props from a constructor that takes no argument
func PropsOf(constructor func() Actor) *Props {
	if constructor == nil {
		return NewProps(nil)
	}
	return NewProps(func(...any) (Actor, error) {
		return constructor(), nil
	})
}

// Args returns a copy of the recorded arguments
func (p *Props) Args() []any {
	return slices.Clone(p.args)
}

// Instantiate builds a new actor. A missing factory, a factory error, a
// factory panic or a nil actor are returned as an InstantiationError.
func (p *Props) Instantiate() (actor Actor, err error) {
	if p.factory == nil {
		return nil, errors.NewInstantiationError(fmt.Errorf("props has no factory"))
	}

	defer func() {
		if r := recover(); r != nil {
			actor = nil
			err = errors.NewInstantiationError(errors.NewPanicError(fmt.Errorf("%v", r)))
		}
	}()

	actor, err = p.factory(slices.Clone(p.args)...)
	if err != nil {
		return nil, errors.NewInstantiationError(err)
	}

	if actor == nil {
		return nil, errors.NewInstantiationError(fmt.Errorf("factory returned a nil actor"))
	}
	return actor, nil
}
