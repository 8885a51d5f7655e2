package fanout

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(ch <-chan Event) []Event {
	out := make([]Event, 0)
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, event)
		default:
			return out
		}
	}
}

func TestBroker_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	broker := NewBroker()
	ch1, cancel1 := broker.Subscribe()
	defer cancel1()
	ch2, cancel2 := broker.Subscribe()
	defer cancel2()

	broker.Publish(TopicNewGig, "gig1")

	events1 := drain(ch1)
	require.Len(t, events1, 1)
	require.Equal(t, TopicNewGig, events1[0].Topic)
	require.Equal(t, "gig1", events1[0].Payload)

	require.Equal(t, events1, drain(ch2))
}

func TestBroker_TopicFiltering(t *testing.T) {
	t.Parallel()

	broker := NewBroker()
	bidsOnly, cancelBids := broker.Subscribe(TopicNewBid)
	defer cancelBids()
	all, cancelAll := broker.Subscribe()
	defer cancelAll()

	broker.Publish(TopicNewGig, "gig1")
	broker.Publish(TopicNewBid, "bid1")
	broker.Publish(TopicFreelancerHired, HiredNotice{FreelancerID: "user2"})

	bidEvents := drain(bidsOnly)
	require.Len(t, bidEvents, 1)
	require.Equal(t, TopicNewBid, bidEvents[0].Topic)

	require.Len(t, drain(all), 3)
}

func TestBroker_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	broker := NewBroker()
	ch, cancel := broker.Subscribe(TopicNewGig)
	defer cancel()

	// Overfill the buffer without reading; Publish must never block.
	for i := 0; i < subscriberBuffer+5; i++ {
		broker.Publish(TopicNewGig, fmt.Sprintf("gig%d", i))
	}

	events := drain(ch)
	require.Len(t, events, subscriberBuffer)
	// The retained events are the oldest ones; the overflow was dropped.
	require.Equal(t, "gig0", events[0].Payload)
	require.Equal(t, fmt.Sprintf("gig%d", subscriberBuffer-1), events[len(events)-1].Payload)
}

func TestBroker_CancelRemovesSubscriberAndClosesChannel(t *testing.T) {
	t.Parallel()

	broker := NewBroker()
	ch, cancel := broker.Subscribe()

	cancel()
	cancel() // idempotent

	broker.Publish(TopicNewGig, "gig1")

	_, open := <-ch
	require.False(t, open, "channel must be closed after cancel")
}

func TestBroker_PublishWithNoSubscribers(t *testing.T) {
	t.Parallel()

	broker := NewBroker()
	// Must not panic or block.
	broker.Publish(TopicNewGig, "gig1")
}

func TestBroker_ConcurrentPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	broker := NewBroker()

	cancels := make([]func(), 0, 8)
	var readers sync.WaitGroup
	for i := 0; i < 8; i++ {
		ch, cancel := broker.Subscribe(TopicNewBid)
		cancels = append(cancels, cancel)
		readers.Add(1)
		go func() {
			defer readers.Done()
			for range ch {
			}
		}()
	}

	var publishers sync.WaitGroup
	for i := 0; i < 8; i++ {
		publishers.Add(1)
		go func() {
			defer publishers.Done()
			for j := 0; j < 50; j++ {
				broker.Publish(TopicNewBid, j)
			}
		}()
	}
	publishers.Wait()

	for _, cancel := range cancels {
		cancel()
	}
	readers.Wait()
}
