package socket

import (
	"context"
	"strconv"
	"sync"
	"time"

	"solamate_server/chain"
	"solamate_server/friends"
	"solamate_server/helpers"
	"solamate_server/idle"
	"solamate_server/messages"
	"solamate_server/schemas"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// DedupWindow is how long an event signature is remembered
const DedupWindow = time.Minute

// Resubscribe bounds the wait before reopening a chain subscription that ended
const (
	ResubscribeMin = 2 * time.Second
	ResubscribeMax = time.Minute
)

// FriendsLoader loads and invalidates cached friend lists
type FriendsLoader interface {
	Load(ctx context.Context, wallet solana.PublicKey, force bool) (*friends.List, error)
	Invalidate(wallet solana.PublicKey)
}

// MessageLoader loads the messages of a chat room
type MessageLoader interface {
	FetchMessages(ctx context.Context, room solana.PublicKey) ([]chain.MessageRecord, error)
}

// Publisher announces topic reloads to every instance
type Publisher interface {
	Reload(ctx context.Context, topic string, account string, slot uint64) error
}

// Config of a Hub. A nil Streamer disables chain subscriptions and a nil
// Publisher delivers chain events to local connections only.
type Config struct {
	ProgramID solana.PublicKey
	Streamer  chain.Streamer
	Friends   FriendsLoader
	Messages  MessageLoader
	Publisher Publisher
	Idle      idle.Config
	Now       func() time.Time

	// Resubscribe is the first retry delay, ResubscribeMin when zero
	Resubscribe time.Duration
}

type topic_entry struct {
	subs map[string]*client
	stop func()
}

// Hub owns the websocket connections of this instance and the chain
// subscriptions backing their topics
type Hub struct {
	cfg   Config
	ctx   context.Context
	conns conc_ws_id_table_shards

	mu     sync.Mutex
	topics map[string]*topic_entry

	seenMu sync.Mutex
	seen   map[string]time.Time
}

// NewHub creates a hub whose chain subscriptions live until ctx ends
func NewHub(ctx context.Context, cfg Config) *Hub {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Resubscribe <= 0 {
		cfg.Resubscribe = ResubscribeMin
	}
	return &Hub{
		cfg:    cfg,
		ctx:    ctx,
		conns:  new_ws_id_table(),
		topics: make(map[string]*topic_entry),
		seen:   make(map[string]time.Time),
	}
}

// Connections is the number of open connections
func (h *Hub) Connections() int {
	return h.conns.count()
}

// Subscribers is the number of connections joined to topic
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.topics[topic]; ok {
		return len(e.subs)
	}
	return 0
}

func (h *Hub) register(wallet string) (*client, error) {
	c, err := h.conns.create_connection(wallet)
	if err != nil {
		return nil, err
	}

	cfg := h.cfg.Idle
	cfg.OnChange = func(isIdle bool) {
		if !isIdle {
			for _, topic := range c.take_pending() {
				go h.push(c, topic)
			}
		}
	}
	c.idle = idle.New(cfg)
	go c.idle.Run(c.ctx)

	h.join(c, messages.NotificationsTopic(wallet))
	return c, nil
}

func (h *Hub) unregister(c *client) {
	h.conns.delete_connection(c.WSID)
	for _, topic := range c.close() {
		h.leave_topic(c, topic)
	}
}

// join adds c to topic, opening the chain subscriptions for the first
// local subscriber
func (h *Hub) join(c *client, topic string) bool {
	if !c.add_topic(topic) {
		return false
	}

	h.mu.Lock()
	e, ok := h.topics[topic]
	if !ok {
		e = &topic_entry{subs: make(map[string]*client)}
		h.topics[topic] = e
	}
	e.subs[c.WSID] = c
	h.mu.Unlock()

	if !ok {
		stop := h.open_chain(topic)
		h.mu.Lock()
		if h.topics[topic] == e {
			e.stop, stop = stop, nil
		}
		h.mu.Unlock()
		if stop != nil {
			stop()
		}
	}
	return true
}

// leave removes c from topic
func (h *Hub) leave(c *client, topic string) bool {
	if !c.remove_topic(topic) {
		return false
	}
	h.leave_topic(c, topic)
	return true
}

func (h *Hub) leave_topic(c *client, topic string) {
	var stop func()

	h.mu.Lock()
	if e, ok := h.topics[topic]; ok {
		delete(e.subs, c.WSID)
		if len(e.subs) == 0 {
			stop = e.stop
			delete(h.topics, topic)
		}
	}
	h.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// open_chain subscribes the filter sets of topic and keeps them open until
// the returned stop is called. The first attempt is synchronous.
func (h *Hub) open_chain(topic string) (stop func()) {
	if h.cfg.Streamer == nil {
		return nil
	}

	kind, key, ok := messages.SplitTopic(topic)
	if !ok || kind == messages.TopicNotifications {
		return nil
	}
	pub, err := solana.PublicKeyFromBase58(key)
	if err != nil {
		return nil
	}

	var filterSets [][]rpc.RPCFilter
	switch kind {
	case messages.TopicFriends:
		filterSets = chain.FriendshipFilters(pub)
	case messages.TopicChat:
		filterSets = chain.MessageFilters(pub)
	default:
		return nil
	}

	ctx, cancel := context.WithCancel(h.ctx)
	var wg sync.WaitGroup
	for _, filters := range filterSets {
		sub, err := chain.SubscribeProgram(ctx, h.cfg.Streamer, h.cfg.ProgramID, filters, func(n chain.Notification) {
			h.chain_changed(topic, n)
		})
		if err != nil {
			zap.L().Warn("topic subscription failed", zap.String("topic", topic), zap.Error(err))
		}
		wg.Add(1)
		go func(filters []rpc.RPCFilter, sub *chain.Subscription) {
			defer wg.Done()
			h.keep_open(ctx, topic, filters, sub)
		}(filters, sub)
	}

	return func() {
		cancel()
		wg.Wait()
	}
}

// keep_open reopens sub whenever it ends before ctx, backing off between
// failed attempts. Each reopen reloads the topic since changes in the gap
// were missed.
func (h *Hub) keep_open(ctx context.Context, topic string, filters []rpc.RPCFilter, sub *chain.Subscription) {
	backoff := h.cfg.Resubscribe
	for {
		if sub != nil {
			<-sub.Done()
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		next, err := chain.SubscribeProgram(ctx, h.cfg.Streamer, h.cfg.ProgramID, filters, func(n chain.Notification) {
			h.chain_changed(topic, n)
		})
		if err != nil {
			sub = nil
			if backoff *= 2; backoff > ResubscribeMax {
				backoff = ResubscribeMax
			}
			continue
		}
		zap.L().Info("topic resubscribed", zap.String("topic", topic))
		sub, backoff = next, h.cfg.Resubscribe
		h.Deliver(messages.Event{
			Op:        messages.OpReload,
			Topic:     topic,
			Timestamp: h.cfg.Now().UnixMilli(),
		})
	}
}

func (h *Hub) chain_changed(topic string, n chain.Notification) {
	account := n.Account.String()
	if h.cfg.Publisher != nil {
		err := h.cfg.Publisher.Reload(h.ctx, topic, account, n.Slot)
		if err == nil {
			return
		}
		zap.L().Warn("publish reload failed", zap.String("topic", topic), zap.Error(err))
	}
	h.Deliver(messages.Event{
		Op:        messages.OpReload,
		Topic:     topic,
		Timestamp: h.cfg.Now().UnixMilli(),
		Signature: account + ":" + strconv.FormatUint(n.Slot, 10),
	})
}

// seen_before reports whether signature was delivered on topic within
// DedupWindow. One account write can reload several topics, so the key
// carries both.
func (h *Hub) seen_before(topic, signature string) bool {
	if signature == "" {
		return false
	}
	key := topic + "|" + signature
	now := h.cfg.Now()

	h.seenMu.Lock()
	defer h.seenMu.Unlock()

	if at, ok := h.seen[key]; ok && now.Sub(at) < DedupWindow {
		return true
	}
	if len(h.seen) >= 1024 {
		for sig, at := range h.seen {
			if now.Sub(at) >= DedupWindow {
				delete(h.seen, sig)
			}
		}
	}
	h.seen[key] = now
	return false
}

// Deliver routes a published event to the local connections of its topic
func (h *Hub) Deliver(ev messages.Event) {
	if h.seen_before(ev.Topic, ev.Signature) {
		return
	}

	h.mu.Lock()
	e, ok := h.topics[ev.Topic]
	var targets []*client
	if ok {
		targets = make([]*client, 0, len(e.subs))
		for _, c := range e.subs {
			targets = append(targets, c)
		}
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	switch ev.Op {
	case messages.OpNotification:
		for _, c := range targets {
			write_raw(c, OpNotification, ev.Data)
		}
	case messages.OpReload:
		if kind, key, ok := messages.SplitTopic(ev.Topic); ok && kind == messages.TopicFriends && h.cfg.Friends != nil {
			if pub, err := solana.PublicKeyFromBase58(key); err == nil {
				h.cfg.Friends.Invalidate(pub)
			}
		}
		for _, c := range targets {
			if c.is_idle() {
				c.defer_reload(ev.Topic)
				continue
			}
			go h.push(c, ev.Topic)
		}
	}
}

// push sends the full data set of topic to c
func (h *Hub) push(c *client, topic string) {
	kind, key, ok := messages.SplitTopic(topic)
	if !ok {
		return
	}
	pub, err := solana.PublicKeyFromBase58(key)
	if err != nil {
		return
	}

	switch kind {
	case messages.TopicFriends:
		if h.cfg.Friends == nil {
			return
		}
		list, err := h.cfg.Friends.Load(c.ctx, pub, false)
		if err != nil {
			zap.L().Warn("friends reload failed", zap.String("wallet", key), zap.Error(err))
			return
		}
		write_message(c, OpFriends, friends_data{
			Topic: topic,
			FriendsResponse: schemas.FriendsResponse{
				Success:   true,
				Friends:   list.Accepted,
				Pending:   list.Pending,
				Incoming:  list.Incoming(),
				Outgoing:  list.Outgoing(),
				FetchedAt: list.FetchedAt,
				Stale:     list.Stale,
			},
		})
	case messages.TopicChat:
		if h.cfg.Messages == nil {
			return
		}
		records, err := h.cfg.Messages.FetchMessages(c.ctx, pub)
		if err != nil {
			zap.L().Warn("chat reload failed", zap.String("room", key), zap.Error(err))
			return
		}
		write_message(c, OpMessages, messages_data{
			Topic: topic,
			ChatMessagesResponse: schemas.ChatMessagesResponse{
				Success:  true,
				ChatRoom: key,
				Messages: helpers.MessagesToSchema(records),
			},
		})
	}
}
