package chain

import (
	"bytes"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// Seed tags used by the SolaMate program
var (
	SeedProfile      = []byte("user_profile")
	SeedFriendship   = []byte("friendship")
	SeedChatRoom     = []byte("chat_room")
	SeedMessage      = []byte("message")
	SeedExpenseStats = []byte("expense_stats")
	SeedFundingEvent = []byte("funding_event")
	SeedGroupSplit   = []byte("group_split")
)

// Deriver computes program-derived addresses for a fixed program ID
type Deriver struct {
	programID solana.PublicKey
}

// NewDeriver creates a deriver bound to programID
func NewDeriver(programID solana.PublicKey) Deriver {
	return Deriver{programID: programID}
}

// ProgramID returns the program the deriver is bound to
func (d Deriver) ProgramID() solana.PublicKey {
	return d.programID
}

func (d Deriver) find(seeds ...[]byte) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(seeds, d.programID)
	return addr, err
}

// ProfilePDA derives the profile account of wallet
func (d Deriver) ProfilePDA(wallet solana.PublicKey) (solana.PublicKey, error) {
	return d.find(SeedProfile, wallet.Bytes())
}

// FriendshipPDA derives the friendship account opened by requester towards recipient
func (d Deriver) FriendshipPDA(requester, recipient solana.PublicKey) (solana.PublicKey, error) {
	return d.find(SeedFriendship, requester.Bytes(), recipient.Bytes())
}

// ChatRoomPDA derives the chat room shared by a and b. Keys are ordered so both
// participants derive the same address.
func (d Deriver) ChatRoomPDA(a, b solana.PublicKey) (solana.PublicKey, error) {
	lo, hi := orderKeys(a, b)
	return d.find(SeedChatRoom, lo.Bytes(), hi.Bytes())
}

// MessagePDA derives a message account inside room at unix timestamp ts
func (d Deriver) MessagePDA(room solana.PublicKey, ts int64) (solana.PublicKey, error) {
	return d.find(SeedMessage, room.Bytes(), timestampSeed(ts))
}

// ExpenseStatsPDA derives the expense statistics account of wallet
func (d Deriver) ExpenseStatsPDA(wallet solana.PublicKey) (solana.PublicKey, error) {
	return d.find(SeedExpenseStats, wallet.Bytes())
}

// FundingEventPDA derives a funding event recorded by wallet at ts
func (d Deriver) FundingEventPDA(wallet solana.PublicKey, ts int64) (solana.PublicKey, error) {
	return d.find(SeedFundingEvent, wallet.Bytes(), timestampSeed(ts))
}

// GroupSplitPDA derives a group split created by creator at ts
func (d Deriver) GroupSplitPDA(creator solana.PublicKey, ts int64) (solana.PublicKey, error) {
	return d.find(SeedGroupSplit, creator.Bytes(), timestampSeed(ts))
}

// timestampSeed encodes ts as the 8-byte little-endian seed the program expects
func timestampSeed(ts int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(ts))
	return b
}

func orderKeys(a, b solana.PublicKey) (solana.PublicKey, solana.PublicKey) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
