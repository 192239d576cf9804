package schemas

import (
	"time"

	"solamate_server/chain"
	"solamate_server/friends"
)

// FriendsQuery struct
type FriendsQuery struct {
	WalletAddress string `query:"walletAddress" json:"walletAddress" validate:"required,wallet"`
	Refresh       bool   `query:"refresh" json:"refresh"`
}

// FriendsResponse struct
type FriendsResponse struct {
	Success   bool             `json:"success"`
	Friends   []friends.Friend `json:"friends"`
	Pending   []friends.Friend `json:"pending"`
	Incoming  []friends.Friend `json:"incoming"`
	Outgoing  []friends.Friend `json:"outgoing"`
	FetchedAt time.Time        `json:"fetchedAt"`
	Stale     bool             `json:"stale"`
}

// ChatMessagesQuery struct; either ChatRoom or both participants
type ChatMessagesQuery struct {
	ChatRoom string `query:"chatRoom" json:"chatRoom" validate:"required_without_all=A B,omitempty,wallet"`
	A        string `query:"a" json:"a" validate:"required_with=B,omitempty,wallet"`
	B        string `query:"b" json:"b" validate:"required_with=A,omitempty,wallet"`
}

// RoomMessageSchema struct
type RoomMessageSchema struct {
	Address   string              `json:"address"`
	Sender    string              `json:"sender"`
	Content   string              `json:"content"`
	Timestamp int64               `json:"timestamp"`
	Parsed    chain.ParsedContent `json:"parsed"`
}

// ChatMessagesResponse struct
type ChatMessagesResponse struct {
	Success  bool                `json:"success"`
	ChatRoom string              `json:"chatRoom"`
	Messages []RoomMessageSchema `json:"messages"`
}

// PDAQuery struct
type PDAQuery struct {
	Kind      string `query:"kind" json:"kind" validate:"required,oneof=profile friendship chat_room message expense_stats funding_event group_split"`
	A         string `query:"a" json:"a" validate:"required,wallet"`
	B         string `query:"b" json:"b" validate:"omitempty,wallet"`
	Timestamp int64  `query:"timestamp" json:"timestamp" validate:"min=0"`
}

// PDAResponse struct
type PDAResponse struct {
	Success   bool   `json:"success"`
	Kind      string `json:"kind"`
	Address   string `json:"address"`
	ProgramID string `json:"programId"`
}

// ExpenseStatsSchema struct; amounts are lamports with SOL conveniences
type ExpenseStatsSchema struct {
	TotalSent        uint64  `json:"totalSent"`
	TotalReceived    uint64  `json:"totalReceived"`
	TotalSentSOL     float64 `json:"totalSentSol"`
	TotalReceivedSOL float64 `json:"totalReceivedSol"`
	TransactionCount uint64  `json:"transactionCount"`
	LastUpdated      int64   `json:"lastUpdated"`
}

// ExpenseStatsResponse struct
type ExpenseStatsResponse struct {
	Success bool                `json:"success"`
	Exists  bool                `json:"exists"`
	Stats   *ExpenseStatsSchema `json:"stats,omitempty"`
}

// TransferErrorSchema struct
type TransferErrorSchema struct {
	Error string `json:"error" validate:"required,max=2000"`
}

// TransferErrorResponse struct
type TransferErrorResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
