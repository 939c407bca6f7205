// Package event provides a small synchronous event bus connecting the
// extension core to plugins: text changes, viewport taps, and accessory
// lifecycle notifications all flow through it.
package event

import "sync"

// Topic names an event stream.
type Topic string

// Topics published by the extension core.
const (
	// TopicTextChange fires after every applied mutation.
	TopicTextChange Topic = "text.change"
	// TopicViewportTap fires when the touch router intercepts a tap
	// inside the active viewport rectangle.
	TopicViewportTap Topic = "viewport.tap"
	// TopicViewportEnter fires when the viewport lock engages.
	TopicViewportEnter Topic = "viewport.enter"
	// TopicViewportExit fires when the viewport lock disengages.
	TopicViewportExit Topic = "viewport.exit"
)

// Event is a published occurrence. Data is topic-specific.
type Event struct {
	Topic Topic
	Data  map[string]any
}

// Handler receives published events.
type Handler func(Event)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	topic Topic
	id    uint64
}

// Bus is a synchronous topic bus. Delivery happens on the publisher's
// goroutine in subscription order. The bus carries its own lock because
// subscriptions can be created and removed outside an editor call frame;
// everything else in the core is single-threaded by contract.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Topic][]subscriber
}

type subscriber struct {
	id uint64
	fn Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], subscriber{id: b.nextID, fn: fn})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.handlers[sub.topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every handler subscribed to its topic, in
// subscription order, on the calling goroutine.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.handlers[ev.Topic]))
	copy(subs, b.handlers[ev.Topic])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// SubscriberCount returns the number of handlers on a topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[topic])
}
