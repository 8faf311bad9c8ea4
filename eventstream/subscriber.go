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

package eventstream

import (
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Subscriber receives the messages published to the topics it subscribed to.
// Subscribers are created by a Stream via AddSubscriber().
type Subscriber interface {
	// ID returns the unique identifier of the subscriber
	ID() string
	// Active reports whether the subscriber still accepts messages
	Active() bool
	// Topics returns the topics the subscriber listens to
	Topics() []string
	// Iterator drains the messages buffered at the time of the call
	Iterator() chan *Message
	// Poll waits up to timeout for the next message.
	// It returns nil when no message arrived in time or the subscriber is shut down.
	Poll(timeout time.Duration) *Message
	// Shutdown stops the subscriber and drops its buffered messages
	Shutdown()

	signal(message *Message)
	subscribe(topic string)
	unsubscribe(topic string)
}

type subscriber struct {
	id string

	topicsMu sync.Mutex
	topics   map[string]struct{}

	messages *queue.Queue
	active   atomic.Bool
}

var _ Subscriber = (*subscriber)(nil)

func newSubscriber() *subscriber {
	s := &subscriber{
		id:       uuid.NewString(),
		topics:   make(map[string]struct{}),
		messages: queue.New(16),
	}
	s.active.Store(true)
	return s
}

func (s *subscriber) ID() string {
	return s.id
}

func (s *subscriber) Active() bool {
	return s.active.Load()
}

func (s *subscriber) Topics() []string {
	s.topicsMu.Lock()
	defer s.topicsMu.Unlock()

	topics := make([]string, 0, len(s.topics))
	for topic := range s.topics {
		topics = append(topics, topic)
	}
	return topics
}

func (s *subscriber) Shutdown() {
	if s.active.CompareAndSwap(true, false) {
		s.messages.Dispose()
	}
}

// Iterator drains the messages that are buffered at the time of invocation and
// returns them through a closed channel.
func (s *subscriber) Iterator() chan *Message {
	n := s.messages.Len()
	if n == 0 || !s.active.Load() {
		out := make(chan *Message)
		close(out)
		return out
	}

	items, _ := s.messages.Get(n)
	out := make(chan *Message, len(items))
	for _, item := range items {
		out <- item.(*Message)
	}
	close(out)
	return out
}

func (s *subscriber) Poll(timeout time.Duration) *Message {
	if !s.active.Load() {
		return nil
	}

	items, err := s.messages.Poll(1, timeout)
	if err != nil || len(items) == 0 {
		return nil
	}
	return items[0].(*Message)
}

func (s *subscriber) signal(message *Message) {
	if s.active.Load() {
		_ = s.messages.Put(message)
	}
}

func (s *subscriber) subscribe(topic string) {
	s.topicsMu.Lock()
	s.topics[topic] = struct{}{}
	s.topicsMu.Unlock()
}

func (s *subscriber) unsubscribe(topic string) {
	s.topicsMu.Lock()
	delete(s.topics, topic)
	s.topicsMu.Unlock()
}
