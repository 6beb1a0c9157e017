package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Topic identifies a kind of application event.
type Topic string

// Event is the envelope published on the bus.
type Event struct {
	ctx       context.Context
	Topic     Topic
	Timestamp time.Time
	Data      any
}

func NewEvent(ctx context.Context, topic Topic, data any) Event {
	return Event{ctx: ctx, Topic: topic, Timestamp: time.Now(), Data: data}
}

// Context returns the context the event was published under.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handler func(Event) error

// Bus is a concurrency-safe synchronous dispatcher: handlers run
// sequentially during Publish, on the publisher's goroutine.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Topic]map[uint64]handler
	nextID      uint64
}

func New() *Bus {
	return &Bus{subscribers: make(map[Topic]map[uint64]handler)}
}

// Subscribe registers a handler for the topic and returns an unsubscribe
// function.
func (b *Bus) Subscribe(topic Topic, h func(Event) error) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[uint64]handler)
	}
	b.subscribers[topic][id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if handlers := b.subscribers[topic]; handlers != nil {
			delete(handlers, id)
			if len(handlers) == 0 {
				delete(b.subscribers, topic)
			}
		}
	}
}

// SubscribeTyped registers a handler expecting a payload of type T. Events
// whose payload is not a T are skipped. A free function because methods
// cannot introduce type parameters.
func SubscribeTyped[T any](b *Bus, topic Topic, h func(ctx context.Context, data T) error) (unsubscribe func()) {
	return b.Subscribe(topic, func(e Event) error {
		payload, ok := e.Data.(T)
		if !ok {
			log.Debugf("bus: payload type mismatch on %s: expected %T, got %T", topic, *new(T), e.Data)
			return nil
		}
		return h(e.Context(), payload)
	})
}

// Publish delivers the event to all handlers of its topic. Handler errors do
// not stop delivery; they are collected and returned together.
func (b *Bus) Publish(e Event) error {
	if err := e.Context().Err(); err != nil {
		return fmt.Errorf("bus: %s: context cancelled before publish: %w", e.Topic, err)
	}

	b.mu.RLock()
	handlers := make([]handler, 0, len(b.subscribers[e.Topic]))
	for _, h := range b.subscribers[e.Topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	var failed int
	for _, h := range handlers {
		if err := h(e); err != nil {
			log.Errorf("bus: handler error on %s: %v", e.Topic, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("bus: %s: %d handler(s) failed", e.Topic, failed)
	}
	return nil
}
