// Package friends keeps a shared, time-bounded view of each wallet's friend
// list built from on-chain friendship accounts.
package friends

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"solamate_server/chain"
	"solamate_server/storage"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a loaded list is served without refetching
const DefaultTTL = 30 * time.Second

// Profile lookups run at most this many at a time per refresh
const lookupConcurrency = 8

// Direction of a pending request relative to the wallet that loaded the list
const (
	Incoming = "incoming"
	Outgoing = "outgoing"
)

// FriendshipSource lists every friendship account
type FriendshipSource interface {
	FetchFriendships(ctx context.Context) ([]chain.FriendshipRecord, error)
}

// ProfileLookup resolves the off-chain profile of a wallet
type ProfileLookup interface {
	Get(ctx context.Context, wallet string) (*storage.Profile, error)
}

// Friend is one counterpart of the loading wallet
type Friend struct {
	WalletAddress     string `json:"walletAddress"`
	Username          string `json:"username,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	HasAvatar         bool   `json:"hasAvatar"`
	FriendshipAddress string `json:"friendshipAddress"`
	Status            string `json:"status"`
	Direction         string `json:"direction,omitempty"`
	CreatedAt         int64  `json:"createdAt"`
}

// List is a snapshot of a wallet's friends. Lists handed out by the cache
// are shared and must not be mutated.
type List struct {
	Accepted  []Friend  `json:"accepted"`
	Pending   []Friend  `json:"pending"`
	FetchedAt time.Time `json:"fetchedAt"`
	Stale     bool      `json:"stale"`
}

// Incoming returns pending requests sent to the wallet
func (l *List) Incoming() []Friend {
	return l.byDirection(Incoming)
}

// Outgoing returns pending requests the wallet sent
func (l *List) Outgoing() []Friend {
	return l.byDirection(Outgoing)
}

func (l *List) byDirection(dir string) []Friend {
	out := make([]Friend, 0, len(l.Pending))
	for _, f := range l.Pending {
		if f.Direction == dir {
			out = append(out, f)
		}
	}
	return out
}

// Cache serves friend lists per wallet. Refreshes for the same wallet are
// coalesced: a caller arriving during a refresh waits for its result.
type Cache struct {
	source   FriendshipSource
	profiles ProfileLookup
	ttl      time.Duration
	now      func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*List
	// gen counts invalidations per wallet; a refresh that started under an
	// older generation does not store its result
	gen map[string]uint64
}

// Option configures a Cache
type Option func(*Cache)

// WithTTL overrides DefaultTTL
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates an empty cache
func NewCache(source FriendshipSource, profiles ProfileLookup, opts ...Option) *Cache {
	c := &Cache{
		source:   source,
		profiles: profiles,
		ttl:      DefaultTTL,
		now:      time.Now,
		entries:  make(map[string]*List),
		gen:      make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the friend list of wallet, refreshing it when older than the
// TTL or when force is set. A rate-limited refresh keeps the previous list and
// returns it marked stale.
func (c *Cache) Load(ctx context.Context, wallet solana.PublicKey, force bool) (*List, error) {
	key := wallet.String()

	if !force {
		if list, ok := c.fresh(key); ok {
			return list, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.refresh(context.WithoutCancel(ctx), wallet)
	})
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

// Peek returns the cached list without refreshing
func (c *Cache) Peek(wallet solana.PublicKey) (*List, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.entries[wallet.String()]
	return list, ok
}

// Invalidate drops the cached list of wallet. Loads after it never join a
// refresh that started before it.
func (c *Cache) Invalidate(wallet solana.PublicKey) {
	key := wallet.String()
	c.mu.Lock()
	delete(c.entries, key)
	c.gen[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *Cache) fresh(key string) (*List, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.entries[key]
	if !ok || c.now().Sub(list.FetchedAt) >= c.ttl {
		return nil, false
	}
	return list, true
}

func (c *Cache) refresh(ctx context.Context, wallet solana.PublicKey) (*List, error) {
	const op = "friends.refresh.cache"
	key := wallet.String()

	c.mu.RLock()
	gen := c.gen[key]
	c.mu.RUnlock()

	records, err := c.source.FetchFriendships(ctx)
	if errors.Is(err, chain.ErrRateLimited) {
		zap.L().Debug("friendship fetch rate limited", zap.String("op", op), zap.String("wallet", key))

		c.mu.RLock()
		prev, ok := c.entries[key]
		c.mu.RUnlock()

		stale := &List{Accepted: []Friend{}, Pending: []Friend{}}
		if ok {
			cp := *prev
			stale = &cp
		}
		stale.Stale = true
		return stale, nil
	} else if err != nil {
		return nil, err
	}

	mine := make([]chain.FriendshipRecord, 0)
	for _, r := range records {
		if r.Involves(wallet) {
			mine = append(mine, r)
		}
	}

	friends := make([]Friend, len(mine))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, r := range mine {
		i, r := i, r
		g.Go(func() error {
			friends[i] = c.resolve(gctx, wallet, r)
			return nil
		})
	}
	_ = g.Wait()

	list := &List{
		Accepted:  make([]Friend, 0, len(friends)),
		Pending:   make([]Friend, 0),
		FetchedAt: c.now(),
	}
	for _, f := range friends {
		if f.Status == chain.FriendshipAccepted.String() {
			list.Accepted = append(list.Accepted, f)
		} else {
			list.Pending = append(list.Pending, f)
		}
	}
	sortFriends(list.Accepted)
	sortFriends(list.Pending)

	c.mu.Lock()
	if c.gen[key] == gen {
		c.entries[key] = list
	}
	c.mu.Unlock()

	return list, nil
}

// resolve joins the counterpart's profile. A missing or failing profile
// leaves only the wallet address.
func (c *Cache) resolve(ctx context.Context, wallet solana.PublicKey, r chain.FriendshipRecord) Friend {
	counterpart := r.Counterpart(wallet)
	f := Friend{
		WalletAddress:     counterpart.String(),
		FriendshipAddress: r.Address.String(),
		Status:            r.Status.String(),
		CreatedAt:         r.CreatedAt,
	}
	if r.Status != chain.FriendshipAccepted {
		f.Direction = Incoming
		if r.Requester.Equals(wallet) {
			f.Direction = Outgoing
		}
	}

	p, err := c.profiles.Get(ctx, f.WalletAddress)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			zap.L().Debug("friend profile lookup failed", zap.String("wallet", f.WalletAddress), zap.Error(err))
		}
		return f
	}
	f.Username = p.Username
	f.DisplayName = p.DisplayName
	f.HasAvatar = p.HasAvatar
	return f
}

func sortFriends(fs []Friend) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].CreatedAt != fs[j].CreatedAt {
			return fs[i].CreatedAt > fs[j].CreatedAt
		}
		return fs[i].WalletAddress < fs[j].WalletAddress
	})
}
