package chain

import (
	"context"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"
)

// Notification is a single account change delivered by programSubscribe
type Notification struct {
	Account solana.PublicKey
	Slot    uint64
	Data    []byte
}

// Stream yields notifications for one open subscription
type Stream interface {
	Recv(ctx context.Context) (*Notification, error)
	Unsubscribe()
}

// Streamer opens program subscriptions
type Streamer interface {
	ProgramSubscribe(ctx context.Context, programID solana.PublicKey, filters []rpc.RPCFilter) (Stream, error)
}

// WSStreamer adapts a solana-go websocket client to Streamer. A connection
// that fails a subscribe or a receive is dropped and redialed on the next
// subscribe.
type WSStreamer struct {
	url string

	mu     sync.Mutex
	client *ws.Client
}

// NewStreamer returns a streamer for the websocket endpoint at url. It dials
// lazily.
func NewStreamer(url string) *WSStreamer {
	return &WSStreamer{url: url}
}

// Connect dials the endpoint unless a connection is already open
func (s *WSStreamer) Connect(ctx context.Context) error {
	_, err := s.conn(ctx)
	return err
}

// Close closes the current connection
func (s *WSStreamer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
}

func (s *WSStreamer) conn(ctx context.Context) (*ws.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		client, err := ws.Connect(ctx, s.url)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s.client, nil
}

func (s *WSStreamer) drop(client *ws.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == client {
		client.Close()
		s.client = nil
	}
}

func (s *WSStreamer) ProgramSubscribe(ctx context.Context, programID solana.PublicKey, filters []rpc.RPCFilter) (Stream, error) {
	client, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := client.ProgramSubscribeWithOpts(programID, rpc.CommitmentConfirmed, solana.EncodingBase64, filters)
	if err != nil {
		s.drop(client)
		return nil, classify(err)
	}
	return &wsStream{sub: sub, onFail: func() { s.drop(client) }}, nil
}

type wsStream struct {
	sub    *ws.ProgramSubscription
	onFail func()
}

func (w *wsStream) Recv(ctx context.Context) (*Notification, error) {
	res, err := w.sub.Recv(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.onFail()
		}
		return nil, err
	}
	n := &Notification{
		Account: res.Value.Pubkey,
		Slot:    res.Context.Slot,
	}
	if res.Value.Account != nil && res.Value.Account.Data != nil {
		n.Data = res.Value.Account.Data.GetBinary()
	}
	return n, nil
}

func (w *wsStream) Unsubscribe() {
	w.sub.Unsubscribe()
}

// Subscription is a running programSubscribe loop
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Close unsubscribes and waits for the receive loop to exit
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Done is closed once the receive loop has exited
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// SubscribeProgram opens a program subscription restricted by filters and
// calls onChange for every notification. Only the initial open error is
// returned; later receive failures are logged and end the subscription,
// which closes Done.
func SubscribeProgram(ctx context.Context, streamer Streamer, programID solana.PublicKey, filters []rpc.RPCFilter, onChange func(Notification)) (*Subscription, error) {
	stream, err := streamer.ProgramSubscribe(ctx, programID, filters)
	if err != nil {
		zap.L().Warn("program subscribe failed", zap.String("program", programID.String()), zap.Error(err))
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		defer stream.Unsubscribe()

		for {
			n, err := stream.Recv(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					zap.L().Warn("program subscription ended", zap.String("program", programID.String()), zap.Error(err))
				}
				return
			}
			if n != nil {
				onChange(*n)
			}
		}
	}()

	return sub, nil
}

// FriendshipFilters returns the two filter sets matching friendships where
// wallet is userA or userB. programSubscribe filters are conjunctive, so each
// side needs its own subscription.
func FriendshipFilters(wallet solana.PublicKey) [][]rpc.RPCFilter {
	return [][]rpc.RPCFilter{
		{DiscriminatorFilter("Friendship"), MemcmpFilter(FriendshipUserAOffset, wallet.Bytes())},
		{DiscriminatorFilter("Friendship"), MemcmpFilter(FriendshipUserBOffset, wallet.Bytes())},
	}
}

// MessageFilters matches messages posted to room
func MessageFilters(room solana.PublicKey) [][]rpc.RPCFilter {
	return [][]rpc.RPCFilter{
		{DiscriminatorFilter("Message"), MemcmpFilter(MessageChatRoomOffset, room.Bytes())},
	}
}
