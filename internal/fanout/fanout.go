package fanout

import (
	"sync"

	"servicehive/utils"
)

// Event topics published by the marketplace
const (
	TopicNewGig          = "newGig"
	TopicNewBid          = "newBid"
	TopicFreelancerHired = "freelancerHired"
)

// Event is one published notification
type Event struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

// HiredNotice is the freelancerHired payload
type HiredNotice struct {
	FreelancerID string `json:"freelancer_id"`
	GigTitle     string `json:"gig_title"`
	Message      string `json:"message"`
}

// Publisher is the capability the lifecycle engine needs: fire-and-forget
// delivery of an event to whoever is listening right now.
type Publisher interface {
	Publish(topic string, payload any)
}

const subscriberBuffer = 16

// Broker fans events out to currently-connected subscribers. Delivery is
// at-most-once with no ordering guarantee across subscribers: a subscriber
// whose buffer is full simply misses the event, and nothing is retained for
// subscribers that connect later.
type Broker struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	topics map[string]struct{} // empty means all topics
	ch     chan Event
}

// NewBroker creates a broker with no subscribers
func NewBroker() *Broker {
	return &Broker{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a listener for the given topics (all topics when none
// are given). The returned cancel func removes the subscriber and closes the
// channel; it is safe to call more than once.
func (b *Broker) Subscribe(topics ...string) (<-chan Event, func()) {
	sub := &subscriber{
		topics: make(map[string]struct{}, len(topics)),
		ch:     make(chan Event, subscriberBuffer),
	}
	for _, topic := range topics {
		sub.topics[topic] = struct{}{}
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, sub)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers the event to every matching subscriber without blocking.
// A slow subscriber drops the event rather than delaying the publisher.
func (b *Broker) Publish(topic string, payload any) {
	event := Event{Topic: topic, Payload: payload}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if len(sub.topics) > 0 {
			if _, ok := sub.topics[topic]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- event:
		default:
			utils.Warn("fanout: dropped event for slow subscriber", map[string]any{
				"topic": topic,
			})
		}
	}
}
