package socket

import (
	"context"
	"sync"

	"solamate_server/idle"
)

// client is one websocket connection. Frames queued on send are written by
// the connection's writer goroutine.
type client struct {
	WSID   string
	wallet string
	send   chan []byte

	idle   *idle.Detector
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	topics  map[string]bool
	pending map[string]bool
}

func new_client(WSID string, wallet string) *client {
	ctx, cancel := context.WithCancel(context.Background())
	return &client{
		WSID:    WSID,
		wallet:  wallet,
		send:    make(chan []byte, SEND_BUFFER),
		ctx:     ctx,
		cancel:  cancel,
		topics:  make(map[string]bool),
		pending: make(map[string]bool),
	}
}

// enqueue queues a frame without blocking; a full buffer drops it
func (c *client) enqueue(b []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

func (c *client) is_idle() bool {
	return c.idle != nil && c.idle.IsIdle()
}

// defer_reload records a reload for topic to deliver when the client wakes.
// Repeated reloads while idle collapse into one.
func (c *client) defer_reload(topic string) {
	c.mu.Lock()
	c.pending[topic] = true
	c.mu.Unlock()
}

func (c *client) take_pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	topics := make([]string, 0, len(c.pending))
	for topic := range c.pending {
		if c.topics[topic] {
			topics = append(topics, topic)
		}
	}
	c.pending = make(map[string]bool)
	return topics
}

func (c *client) add_topic(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.topics[topic] {
		return false
	}
	c.topics[topic] = true
	return true
}

func (c *client) remove_topic(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.topics[topic] {
		return false
	}
	delete(c.topics, topic)
	delete(c.pending, topic)
	return true
}

// close marks the client closed and returns the topics it had joined
func (c *client) close() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.cancel()
	close(c.send)

	topics := make([]string, 0, len(c.topics))
	for topic := range c.topics {
		topics = append(topics, topic)
	}
	c.topics = make(map[string]bool)
	return topics
}
