package chain

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Byte offsets into the serialized account layouts, used by memcmp filters.
// They are coupled to the program's layout: a layout change makes filters
// silently stop matching, so DecodeFriendship/DecodeMessage re-check the
// discriminator on every account they are handed.
const (
	DiscriminatorSize = 8

	FriendshipUserAOffset = DiscriminatorSize
	FriendshipUserBOffset = DiscriminatorSize + 32
	MessageChatRoomOffset = DiscriminatorSize
)

// FriendshipStatus mirrors the on-chain enum
type FriendshipStatus uint8

const (
	FriendshipPending FriendshipStatus = iota
	FriendshipAccepted
)

func (s FriendshipStatus) String() string {
	switch s {
	case FriendshipPending:
		return "pending"
	case FriendshipAccepted:
		return "accepted"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

var ErrDecode = errors.New("chain: account decode failed")
var ErrDiscriminator = errors.New("chain: account discriminator mismatch")

// AccountDiscriminator computes the 8-byte Anchor account discriminator:
// sha256("account:<Name>")[:8].
func AccountDiscriminator(name string) [8]byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var disc [8]byte
	copy(disc[:], hash[:8])
	return disc
}

var (
	profileDiscriminator      = AccountDiscriminator("UserProfile")
	friendshipDiscriminator   = AccountDiscriminator("Friendship")
	chatRoomDiscriminator     = AccountDiscriminator("ChatRoom")
	messageDiscriminator      = AccountDiscriminator("Message")
	expenseStatsDiscriminator = AccountDiscriminator("ExpenseStats")
	fundingEventDiscriminator = AccountDiscriminator("FundingEvent")
)

// Profile is the on-chain user profile
type Profile struct {
	Owner       solana.PublicKey
	Username    string
	DisplayName string
	CreatedAt   int64
}

// Friendship is a pending or accepted relationship between two wallets
type Friendship struct {
	UserA     solana.PublicKey
	UserB     solana.PublicKey
	Requester solana.PublicKey
	Status    FriendshipStatus
	CreatedAt int64
}

// Involves reports whether wallet is one of the two parties
func (f Friendship) Involves(wallet solana.PublicKey) bool {
	return f.UserA.Equals(wallet) || f.UserB.Equals(wallet)
}

// Counterpart returns the party that is not wallet
func (f Friendship) Counterpart(wallet solana.PublicKey) solana.PublicKey {
	if f.UserA.Equals(wallet) {
		return f.UserB
	}
	return f.UserA
}

// ChatRoom links two participants
type ChatRoom struct {
	UserA        solana.PublicKey
	UserB        solana.PublicKey
	MessageCount uint64
	CreatedAt    int64
}

// Message is a single chat message
type Message struct {
	ChatRoom  solana.PublicKey
	Sender    solana.PublicKey
	Content   string
	Timestamp int64
}

// ExpenseStats aggregates a wallet's transfers
type ExpenseStats struct {
	Owner            solana.PublicKey
	TotalSent        uint64
	TotalReceived    uint64
	TransactionCount uint64
	LastUpdated      int64
}

// FundingEvent records a deposit into the app
type FundingEvent struct {
	Funder    solana.PublicKey
	Amount    uint64
	Timestamp int64
	Memo      string
}

func decodeAccount(data []byte, disc [8]byte, v interface{}) error {
	if len(data) < DiscriminatorSize {
		return fmt.Errorf("%w: %d bytes", ErrDecode, len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], disc[:]) {
		return ErrDiscriminator
	}
	if err := bin.NewBorshDecoder(data[DiscriminatorSize:]).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// DecodeProfile decodes a profile account
func DecodeProfile(data []byte) (*Profile, error) {
	p := new(Profile)
	return p, decodeAccount(data, profileDiscriminator, p)
}

// DecodeFriendship decodes a friendship account
func DecodeFriendship(data []byte) (*Friendship, error) {
	f := new(Friendship)
	return f, decodeAccount(data, friendshipDiscriminator, f)
}

// DecodeChatRoom decodes a chat room account
func DecodeChatRoom(data []byte) (*ChatRoom, error) {
	r := new(ChatRoom)
	return r, decodeAccount(data, chatRoomDiscriminator, r)
}

// DecodeMessage decodes a message account
func DecodeMessage(data []byte) (*Message, error) {
	m := new(Message)
	return m, decodeAccount(data, messageDiscriminator, m)
}

// DecodeExpenseStats decodes an expense stats account
func DecodeExpenseStats(data []byte) (*ExpenseStats, error) {
	s := new(ExpenseStats)
	return s, decodeAccount(data, expenseStatsDiscriminator, s)
}

// DecodeFundingEvent decodes a funding event account
func DecodeFundingEvent(data []byte) (*FundingEvent, error) {
	e := new(FundingEvent)
	return e, decodeAccount(data, fundingEventDiscriminator, e)
}

// EncodeAccount serializes v behind the discriminator of name. Used to build
// fixtures and instruction payloads.
func EncodeAccount(name string, v interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	disc := AccountDiscriminator(name)
	buf.Write(disc[:])
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
