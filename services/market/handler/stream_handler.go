package handler

import (
	"io"

	"servicehive/internal/fanout"
	"servicehive/services/market/helpers"
	"servicehive/utils"

	"github.com/gin-gonic/gin"
)

// StreamHandler bridges the fanout broker onto Server-Sent Events. It is the
// only place that knows the wire protocol; the broker itself is
// transport-agnostic.
type StreamHandler struct {
	broker *fanout.Broker
}

func NewStreamHandler(broker *fanout.Broker) *StreamHandler {
	return &StreamHandler{broker: broker}
}

// EventsHandler handles GET /events. The subscriber lives for the duration
// of the connection; events published while it is disconnected are lost.
func (h *StreamHandler) EventsHandler(c *gin.Context) {
	events, cancel := h.broker.Subscribe()
	defer cancel()

	utils.Info("EventsHandler: subscriber connected", map[string]any{
		"user_id": helpers.ActorID(c),
	})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	// send the headers now so clients see the stream open before any event
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(event.Topic, event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	utils.Info("EventsHandler: subscriber disconnected", map[string]any{
		"user_id": helpers.ActorID(c),
	})
}
