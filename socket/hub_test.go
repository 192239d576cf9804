package socket

import (
	"context"
	Errors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"solamate_server/chain"
	"solamate_server/friends"
	"solamate_server/idle"
	"solamate_server/messages"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFriends struct {
	loads         int32
	invalidations int32
}

func (f *fakeFriends) Load(_ context.Context, wallet solana.PublicKey, _ bool) (*friends.List, error) {
	atomic.AddInt32(&f.loads, 1)
	return &friends.List{
		Accepted:  []friends.Friend{{WalletAddress: "friend1", Status: "accepted"}},
		Pending:   []friends.Friend{{WalletAddress: "friend2", Status: "pending", Direction: friends.Incoming}},
		FetchedAt: time.Now(),
	}, nil
}

func (f *fakeFriends) Invalidate(solana.PublicKey) {
	atomic.AddInt32(&f.invalidations, 1)
}

type fakeMessages struct{}

func (fakeMessages) FetchMessages(_ context.Context, room solana.PublicKey) ([]chain.MessageRecord, error) {
	return []chain.MessageRecord{{
		Address: solana.NewWallet().PublicKey(),
		Message: chain.Message{ChatRoom: room, Content: "hello", Timestamp: 1},
	}}, nil
}

type fakeStream struct {
	ch    chan *chain.Notification
	fail  chan error
	unsub chan struct{}
	once  sync.Once
}

func (s *fakeStream) Recv(ctx context.Context) (*chain.Notification, error) {
	select {
	case n := <-s.ch:
		return n, nil
	case err := <-s.fail:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *fakeStream) Unsubscribe() {
	s.once.Do(func() { close(s.unsub) })
}

type fakeStreamer struct {
	mu      sync.Mutex
	streams []*fakeStream
}

func (f *fakeStreamer) ProgramSubscribe(context.Context, solana.PublicKey, []rpc.RPCFilter) (chain.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &fakeStream{
		ch:    make(chan *chain.Notification, 1),
		fail:  make(chan error, 1),
		unsub: make(chan struct{}),
	}
	f.streams = append(f.streams, s)
	return s, nil
}

func (f *fakeStreamer) opened() []*fakeStream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeStream(nil), f.streams...)
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newHub(t *testing.T, cfg Config) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if cfg.Idle.Check == 0 {
		cfg.Idle.Check = time.Hour
	}
	return NewHub(ctx, cfg)
}

func nextFrame(t *testing.T, c *client) (op_type, []byte) {
	t.Helper()
	select {
	case b := <-c.send:
		return op_type(jsoniter.Get(b, "Op").ToString()), b
	case <-time.After(2 * time.Second):
		t.Fatal("no frame")
		return "", nil
	}
}

func noFrame(t *testing.T, c *client) {
	t.Helper()
	select {
	case b := <-c.send:
		t.Fatalf("unexpected frame %s", b)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_SubscribeFriendsPushesInitialReload(t *testing.T) {
	ff := &fakeFriends{}
	h := newHub(t, Config{Friends: ff})
	wallet := solana.NewWallet().PublicKey().String()

	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)

	h.handle_op(c, []byte(`{"Op":"subscribe_friends"}`))

	op, b := nextFrame(t, c)
	assert.Equal(t, OpSubscribed, op)
	assert.Equal(t, messages.FriendsTopic(wallet), jsoniter.Get(b, "Data", "Topic").ToString())

	op, b = nextFrame(t, c)
	require.Equal(t, OpFriends, op)
	assert.Equal(t, "friend1", jsoniter.Get(b, "Data", "friends", 0, "walletAddress").ToString())
	assert.Equal(t, "friend2", jsoniter.Get(b, "Data", "incoming", 0, "walletAddress").ToString())
	assert.Equal(t, 1, h.Subscribers(messages.FriendsTopic(wallet)))
}

func TestHub_SubscribeChat(t *testing.T) {
	h := newHub(t, Config{Messages: fakeMessages{}})
	wallet := solana.NewWallet().PublicKey()
	peer := solana.NewWallet().PublicKey()
	c, err := h.register(wallet.String())
	require.NoError(t, err)
	defer h.unregister(c)

	room, err := chain.NewDeriver(h.cfg.ProgramID).ChatRoomPDA(peer, wallet)
	require.NoError(t, err)
	h.handle_op(c, []byte(`{"Op":"subscribe_chat","Data":{"Peer":"`+peer.String()+`"}}`))

	op, b := nextFrame(t, c)
	assert.Equal(t, OpSubscribed, op)
	assert.Equal(t, messages.ChatTopic(room.String()), jsoniter.Get(b, "Data", "Topic").ToString())
	op, b = nextFrame(t, c)
	require.Equal(t, OpMessages, op)
	assert.Equal(t, room.String(), jsoniter.Get(b, "Data", "chatRoom").ToString())
	assert.Equal(t, "text", jsoniter.Get(b, "Data", "messages", 0, "parsed", "kind").ToString())
}

func TestHub_SubscribeChatRejectsOtherRooms(t *testing.T) {
	h := newHub(t, Config{Messages: fakeMessages{}})
	wallet := solana.NewWallet().PublicKey().String()
	peer := solana.NewWallet().PublicKey().String()
	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{name: "MissingPeer", data: `{"ChatRoom":"` + peer + `"}`, message: "Invalid peer"},
		{name: "ForeignRoom", data: `{"ChatRoom":"` + solana.NewWallet().PublicKey().String() + `","Peer":"` + peer + `"}`, message: "Not a participant of this chat room"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.handle_op(c, []byte(`{"Op":"subscribe_chat","Data":`+tt.data+`}`))
			op, b := nextFrame(t, c)
			assert.Equal(t, OpError, op)
			assert.Equal(t, tt.message, jsoniter.Get(b, "Data", "Message").ToString())
		})
	}
	assert.Equal(t, 1, len(c.topics))
}

func TestHub_Ops(t *testing.T) {
	h := newHub(t, Config{})
	c, err := h.register(solana.NewWallet().PublicKey().String())
	require.NoError(t, err)
	defer h.unregister(c)

	h.handle_op(c, []byte(`{"Op":"ping"}`))
	op, _ := nextFrame(t, c)
	assert.Equal(t, OpPong, op)

	h.handle_op(c, []byte(`{"Op":"subscribe_chat","Data":{"ChatRoom":"nope"}}`))
	op, _ = nextFrame(t, c)
	assert.Equal(t, OpError, op)

	h.handle_op(c, []byte(`{"Op":"dance"}`))
	op, _ = nextFrame(t, c)
	assert.Equal(t, OpError, op)

	h.handle_op(c, []byte(`{"Op":"activity"}`))
	noFrame(t, c)
}

func TestHub_ChainSubscriptionsAreRefCounted(t *testing.T) {
	streamer := &fakeStreamer{}
	h := newHub(t, Config{Streamer: streamer, Friends: &fakeFriends{}})
	wallet := solana.NewWallet().PublicKey().String()
	topic := messages.FriendsTopic(wallet)

	c1, err := h.register(wallet)
	require.NoError(t, err)
	c2, err := h.register(wallet)
	require.NoError(t, err)

	require.True(t, h.join(c1, topic))
	require.True(t, h.join(c2, topic))
	assert.False(t, h.join(c2, topic))

	streams := streamer.opened()
	require.Len(t, streams, 2)

	assert.True(t, h.leave(c1, topic))
	for _, s := range streams {
		select {
		case <-s.unsub:
			t.Fatal("unsubscribed while a subscriber remains")
		default:
		}
	}

	h.unregister(c2)
	for _, s := range streams {
		select {
		case <-s.unsub:
		case <-time.After(2 * time.Second):
			t.Fatal("subscription leaked")
		}
	}
	assert.Equal(t, 0, h.Subscribers(topic))

	h.unregister(c1)
	assert.Equal(t, 0, h.Connections())
}

func TestHub_ChainNotificationReloads(t *testing.T) {
	streamer := &fakeStreamer{}
	ff := &fakeFriends{}
	h := newHub(t, Config{Streamer: streamer, Friends: ff})
	wallet := solana.NewWallet().PublicKey().String()

	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)
	require.True(t, h.join(c, messages.FriendsTopic(wallet)))

	streams := streamer.opened()
	require.Len(t, streams, 2)
	streams[1].ch <- &chain.Notification{Account: solana.NewWallet().PublicKey(), Slot: 9}

	op, _ := nextFrame(t, c)
	assert.Equal(t, OpFriends, op)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ff.invalidations))
}

func TestHub_SharedFriendshipReloadsBothWallets(t *testing.T) {
	streamer := &fakeStreamer{}
	ff := &fakeFriends{}
	h := newHub(t, Config{Streamer: streamer, Friends: ff})
	walletA := solana.NewWallet().PublicKey().String()
	walletB := solana.NewWallet().PublicKey().String()

	a, err := h.register(walletA)
	require.NoError(t, err)
	defer h.unregister(a)
	b, err := h.register(walletB)
	require.NoError(t, err)
	defer h.unregister(b)

	require.True(t, h.join(a, messages.FriendsTopic(walletA)))
	require.True(t, h.join(b, messages.FriendsTopic(walletB)))

	// A's userA filter and B's userB filter both match the one account
	streams := streamer.opened()
	require.Len(t, streams, 4)
	n := &chain.Notification{Account: solana.NewWallet().PublicKey(), Slot: 42}
	streams[0].ch <- n
	op, _ := nextFrame(t, a)
	assert.Equal(t, OpFriends, op)

	streams[3].ch <- n
	op, _ = nextFrame(t, b)
	assert.Equal(t, OpFriends, op)

	noFrame(t, a)
	assert.Equal(t, int32(2), atomic.LoadInt32(&ff.invalidations))
}

func TestHub_DeliverDedupsPerTopic(t *testing.T) {
	h := newHub(t, Config{Friends: &fakeFriends{}})
	walletA := solana.NewWallet().PublicKey().String()
	walletB := solana.NewWallet().PublicKey().String()

	a, err := h.register(walletA)
	require.NoError(t, err)
	defer h.unregister(a)
	b, err := h.register(walletB)
	require.NoError(t, err)
	defer h.unregister(b)
	require.True(t, h.join(a, messages.FriendsTopic(walletA)))
	require.True(t, h.join(b, messages.FriendsTopic(walletB)))

	for i := 0; i < 2; i++ {
		h.Deliver(messages.Event{Op: messages.OpReload, Topic: messages.FriendsTopic(walletA), Signature: "acct:7"})
		h.Deliver(messages.Event{Op: messages.OpReload, Topic: messages.FriendsTopic(walletB), Signature: "acct:7"})
	}

	op, _ := nextFrame(t, a)
	assert.Equal(t, OpFriends, op)
	op, _ = nextFrame(t, b)
	assert.Equal(t, OpFriends, op)
	noFrame(t, a)
	noFrame(t, b)
}

func TestHub_EndedSubscriptionIsReopened(t *testing.T) {
	streamer := &fakeStreamer{}
	ff := &fakeFriends{}
	h := newHub(t, Config{Streamer: streamer, Friends: ff, Resubscribe: 10 * time.Millisecond})
	wallet := solana.NewWallet().PublicKey().String()

	c, err := h.register(wallet)
	require.NoError(t, err)
	require.True(t, h.join(c, messages.FriendsTopic(wallet)))
	require.Len(t, streamer.opened(), 2)

	streamer.opened()[0].fail <- Errors.New("connection reset")

	require.Eventually(t, func() bool { return len(streamer.opened()) == 3 }, 2*time.Second, 5*time.Millisecond)
	op, _ := nextFrame(t, c)
	assert.Equal(t, OpFriends, op)

	streamer.opened()[2].ch <- &chain.Notification{Account: solana.NewWallet().PublicKey(), Slot: 5}
	op, _ = nextFrame(t, c)
	assert.Equal(t, OpFriends, op)

	h.unregister(c)
	for _, s := range streamer.opened()[1:] {
		select {
		case <-s.unsub:
		case <-time.After(2 * time.Second):
			t.Fatal("subscription leaked")
		}
	}
	assert.Len(t, streamer.opened(), 3)
}

func TestHub_IdleDefersReload(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	ff := &fakeFriends{}
	h := newHub(t, Config{
		Friends: ff,
		Now:     clock.now,
		Idle:    idle.Config{Timeout: time.Minute, Throttle: time.Second, Check: time.Hour, Now: clock.now},
	})
	wallet := solana.NewWallet().PublicKey().String()
	topic := messages.FriendsTopic(wallet)

	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)
	require.True(t, h.join(c, topic))

	clock.advance(2 * time.Minute)
	require.True(t, c.idle.Evaluate())

	h.Deliver(messages.Event{Op: messages.OpReload, Topic: topic, Signature: "a:1"})
	h.Deliver(messages.Event{Op: messages.OpReload, Topic: topic, Signature: "b:2"})
	noFrame(t, c)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ff.loads))

	c.idle.Touch()
	op, _ := nextFrame(t, c)
	assert.Equal(t, OpFriends, op)
	noFrame(t, c)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ff.loads))
}

func TestHub_DeliverDedupsSignatures(t *testing.T) {
	h := newHub(t, Config{})
	wallet := solana.NewWallet().PublicKey().String()
	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)

	ev := messages.Event{
		Op:        messages.OpNotification,
		Topic:     messages.NotificationsTopic(wallet),
		Signature: "sig1",
		Data:      jsoniter.RawMessage(`{"title":"Payment received"}`),
	}
	h.Deliver(ev)
	h.Deliver(ev)

	op, b := nextFrame(t, c)
	assert.Equal(t, OpNotification, op)
	assert.Equal(t, "Payment received", jsoniter.Get(b, "Data", "title").ToString())
	noFrame(t, c)

	ev.Signature = "sig2"
	h.Deliver(ev)
	op, _ = nextFrame(t, c)
	assert.Equal(t, OpNotification, op)
}

func TestHub_UnsubscribeKeepsNotifications(t *testing.T) {
	h := newHub(t, Config{})
	wallet := solana.NewWallet().PublicKey().String()
	c, err := h.register(wallet)
	require.NoError(t, err)
	defer h.unregister(c)

	h.handle_op(c, []byte(`{"Op":"unsubscribe","Data":{"Topic":"`+messages.NotificationsTopic(wallet)+`"}}`))
	assert.Equal(t, 1, h.Subscribers(messages.NotificationsTopic(wallet)))
}

func TestConnTable(t *testing.T) {
	table := new_ws_id_table()
	c, err := table.create_connection("w")
	require.NoError(t, err)
	assert.Len(t, c.WSID, 10)
	assert.Same(t, c, table.get_connection(c.WSID))
	assert.Equal(t, 1, table.count())

	assert.Same(t, c, table.delete_connection(c.WSID))
	assert.Nil(t, table.get_connection(c.WSID))
	assert.Equal(t, 0, table.count())
}
