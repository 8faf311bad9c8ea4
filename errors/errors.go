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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrActorSystemNotRunning is returned when the actor system has been shut down.
	ErrActorSystemNotRunning = errors.New("actor system is not running")

	// ErrValidation is returned when a path, an actor name, a props or a parent is malformed or missing.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName is returned when the path an actor would occupy is already taken by a live actor.
	ErrDuplicateName = errors.New("actor already exists")

	// ErrUnresolvedParent is returned when the parent of an actor to create is not alive.
	ErrUnresolvedParent = errors.New("parent actor is not alive")

	// ErrInstantiation is returned when an actor instance cannot be built from its props.
	ErrInstantiation = errors.New("failed to create actor instance")

	// ErrPreStartFailure is returned when the actor's PreStart hook fails.
	ErrPreStartFailure = errors.New("preStart failed")

	// ErrProcessing is reported when an actor fails to handle a message.
	ErrProcessing = errors.New("failed to process message")

	// ErrShutdownHook is reported when the actor's PostStop hook fails.
	ErrShutdownHook = errors.New("postStop failed")

	// ErrUndefinedActor is returned when a reference is not attached to any actor.
	ErrUndefinedActor = errors.New("actor is not defined")

	// ErrDead indicates that the actor is no longer alive or has been terminated.
	ErrDead = errors.New("actor is not alive")
)

// NewErrValidation wraps a base error with ErrValidation.
func NewErrValidation(err error) error {
	return &ValidationError{err: errors.Join(ErrValidation, err)}
}

// NewErrDuplicateName formats an ErrDuplicateName for the given actor path.
func NewErrDuplicateName(actorPath string) error {
	return fmt.Errorf("actor=(%s) %w", actorPath, ErrDuplicateName)
}

// NewErrUnresolvedParent formats an ErrUnresolvedParent for the given parent path.
func NewErrUnresolvedParent(parentPath string) error {
	return fmt.Errorf("(parent=%s) %w", parentPath, ErrUnresolvedParent)
}

// NewErrPreStartFailure wraps a base error with ErrPreStartFailure to indicate a startup failure.
func NewErrPreStartFailure(err error) error {
	return errors.Join(ErrPreStartFailure, err)
}

// ValidationError defines an invalid input supplied to the runtime
type ValidationError struct {
	err error
}

// enforce compilation error
var _ error = (*ValidationError)(nil)

// Error implements the standard error interface
func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// InstantiationError defines an error when building an actor from its props
type InstantiationError struct {
	err error
}

var _ error = (*InstantiationError)(nil)

// NewInstantiationError returns an instance of InstantiationError
func NewInstantiationError(err error) *InstantiationError {
	return &InstantiationError{
		err: fmt.Errorf("%w: %w", ErrInstantiation, err),
	}
}

// Error implements the standard error interface
func (e *InstantiationError) Error() string {
	return e.err.Error()
}

func (e *InstantiationError) Unwrap() error {
	return e.err
}

// ProcessingError defines an error raised while an actor handles a message.
// It never leaves the actor's worker, it is logged and counted.
type ProcessingError struct {
	actorPath string
	messageID string
	err       error
}

var _ error = (*ProcessingError)(nil)

// NewProcessingError returns an instance of ProcessingError
func NewProcessingError(actorPath, messageID string, err error) *ProcessingError {
	return &ProcessingError{
		actorPath: actorPath,
		messageID: messageID,
		err:       fmt.Errorf("%w: %w", ErrProcessing, err),
	}
}

// ActorPath returns the path of the failing actor
func (e *ProcessingError) ActorPath() string {
	return e.actorPath
}

// MessageID returns the id of the message that failed
func (e *ProcessingError) MessageID() string {
	return e.messageID
}

// Error implements the standard error interface
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("(actor=%s, message=%s) %v", e.actorPath, e.messageID, e.err)
}

func (e *ProcessingError) Unwrap() error {
	return e.err
}

// ShutdownHookError defines an error returned by an actor PostStop hook
type ShutdownHookError struct {
	actorPath string
	err       error
}

var _ error = (*ShutdownHookError)(nil)

// NewShutdownHookError returns an instance of ShutdownHookError
func NewShutdownHookError(actorPath string, err error) *ShutdownHookError {
	return &ShutdownHookError{
		actorPath: actorPath,
		err:       fmt.Errorf("%w: %w", ErrShutdownHook, err),
	}
}

// Error implements the standard error interface
func (e *ShutdownHookError) Error() string {
	return fmt.Sprintf("(actor=%s) %v", e.actorPath, e.err)
}

func (e *ShutdownHookError) Unwrap() error {
	return e.err
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
