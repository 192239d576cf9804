package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var (
	ErrRateLimited      = errors.New("chain: rate limited")
	ErrAccountNotFound  = errors.New("chain: account not found")
	ErrChainUnavailable = errors.New("chain: rpc call failed")
)

// RPC is the subset of the solana-go rpc client used here
type RPC interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

// Client is a typed reader over the SolaMate program accounts
type Client struct {
	Deriver
	rpc RPC
}

// NewClient binds an rpc connection to programID
func NewClient(conn RPC, programID solana.PublicKey) *Client {
	return &Client{
		Deriver: NewDeriver(programID),
		rpc:     conn,
	}
}

// classify maps rpc failures onto the package errors. Rate limits surface as
// HTTP 429 text from the jsonrpc layer.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return ErrAccountNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "too many requests") {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", ErrChainUnavailable, err)
}

// DiscriminatorFilter matches accounts of the given Anchor type
func DiscriminatorFilter(name string) rpc.RPCFilter {
	disc := AccountDiscriminator(name)
	return MemcmpFilter(0, disc[:])
}

// MemcmpFilter matches b at offset in the serialized account
func MemcmpFilter(offset uint64, b []byte) rpc.RPCFilter {
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  solana.Base58(b),
		},
	}
}

func (c *Client) programAccounts(ctx context.Context, filters ...rpc.RPCFilter) (rpc.GetProgramAccountsResult, error) {
	out, err := c.rpc.GetProgramAccountsWithOpts(ctx, c.programID, &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
		Filters:    filters,
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (c *Client) accountData(ctx context.Context, addr solana.PublicKey) ([]byte, error) {
	out, err := c.rpc.GetAccountInfoWithOpts(ctx, addr, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		return nil, classify(err)
	}
	if out == nil || out.Value == nil || out.Value.Data == nil {
		return nil, ErrAccountNotFound
	}
	return out.Value.Data.GetBinary(), nil
}

// FriendshipRecord is a decoded friendship plus its address
type FriendshipRecord struct {
	Address solana.PublicKey
	Friendship
}

// FetchFriendships returns every friendship account of the program. Accounts
// that fail to decode are skipped.
func (c *Client) FetchFriendships(ctx context.Context) ([]FriendshipRecord, error) {
	accounts, err := c.programAccounts(ctx, DiscriminatorFilter("Friendship"))
	if err != nil {
		return nil, err
	}

	records := make([]FriendshipRecord, 0, len(accounts))
	for _, acc := range accounts {
		if acc == nil || acc.Account == nil || acc.Account.Data == nil {
			continue
		}
		f, err := DecodeFriendship(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		records = append(records, FriendshipRecord{Address: acc.Pubkey, Friendship: *f})
	}
	return records, nil
}

// FetchProfile reads the on-chain profile of wallet. A profile written with an
// older layout does not decode and is reported as not found.
func (c *Client) FetchProfile(ctx context.Context, wallet solana.PublicKey) (*Profile, error) {
	addr, err := c.ProfilePDA(wallet)
	if err != nil {
		return nil, err
	}
	data, err := c.accountData(ctx, addr)
	if err != nil {
		return nil, err
	}
	p, err := DecodeProfile(data)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	return p, nil
}

// MessageRecord is a decoded message plus its address
type MessageRecord struct {
	Address solana.PublicKey
	Message
}

// FetchMessages returns the messages of room ordered by timestamp
func (c *Client) FetchMessages(ctx context.Context, room solana.PublicKey) ([]MessageRecord, error) {
	accounts, err := c.programAccounts(ctx,
		DiscriminatorFilter("Message"),
		MemcmpFilter(MessageChatRoomOffset, room.Bytes()),
	)
	if err != nil {
		return nil, err
	}

	records := make([]MessageRecord, 0, len(accounts))
	for _, acc := range accounts {
		if acc == nil || acc.Account == nil || acc.Account.Data == nil {
			continue
		}
		m, err := DecodeMessage(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		records = append(records, MessageRecord{Address: acc.Pubkey, Message: *m})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

// FetchExpenseStats reads the expense statistics of wallet
func (c *Client) FetchExpenseStats(ctx context.Context, wallet solana.PublicKey) (*ExpenseStats, error) {
	addr, err := c.ExpenseStatsPDA(wallet)
	if err != nil {
		return nil, err
	}
	data, err := c.accountData(ctx, addr)
	if err != nil {
		return nil, err
	}
	return DecodeExpenseStats(data)
}
