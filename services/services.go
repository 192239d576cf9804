// Package services holds the fiber handlers of every API route.
package services

//go:generate mockgen -source=services.go -destination=../mocks/services.go -package=mocks

import (
	"context"
	"time"

	"solamate_server/chain"
	"solamate_server/clients"
	"solamate_server/friends"
	"solamate_server/pet"
	"solamate_server/storage"

	"github.com/gagliardetto/solana-go"
)

type ProfileStore interface {
	Get(ctx context.Context, wallet string) (*storage.Profile, error)
	Save(ctx context.Context, p *storage.Profile) (*storage.Profile, error)
	List(ctx context.Context) ([]storage.Profile, error)
	Search(ctx context.Context, query, exclude string, limit int) ([]storage.Profile, error)
}

type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, string, error)
}

type NotificationStore interface {
	List(ctx context.Context, wallet string, unreadOnly bool) ([]storage.Notification, error)
	Create(ctx context.Context, n *storage.Notification) error
	MarkRead(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, wallet string) (int, error)
}

type NonceStore interface {
	Issue(ctx context.Context, wallet, nonce string, ttl time.Duration) error
	Redeem(ctx context.Context, wallet, nonce string) (bool, error)
}

type EventPublisher interface {
	Notify(ctx context.Context, wallet string, notification interface{}) error
}

type ChatCompleter interface {
	Complete(ctx context.Context, req clients.ChatRequest) (*clients.ChatResponse, error)
}

type ReceiptReader interface {
	ReadReceipt(ctx context.Context, image []byte, mimeType string) (*clients.Receipt, error)
}

type SpeechSynthesizer interface {
	DefaultVoice() string
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, string, error)
}

type Pinner interface {
	PinFile(ctx context.Context, name string, data []byte) (*clients.PinResult, error)
	PinJSON(ctx context.Context, name string, data interface{}) (*clients.PinResult, error)
	URL(hash string) string
	GatewayURLs(hash string) []string
}

type FriendsLoader interface {
	Load(ctx context.Context, wallet solana.PublicKey, force bool) (*friends.List, error)
}

type ChainReader interface {
	FetchMessages(ctx context.Context, room solana.PublicKey) ([]chain.MessageRecord, error)
	FetchExpenseStats(ctx context.Context, wallet solana.PublicKey) (*chain.ExpenseStats, error)
}

type PetEngine interface {
	Get(ctx context.Context, wallet string) (*pet.State, error)
	UpdatePetStatus(ctx context.Context, wallet string) (*pet.State, error)
	Adopt(ctx context.Context, wallet, name, petType string) (*pet.State, error)
	Rename(ctx context.Context, wallet, name string) (*pet.State, error)
	AddXP(ctx context.Context, wallet string, amount int) (*pet.XPResult, error)
	FeedPet(ctx context.Context, wallet string) (*pet.XPResult, error)
	PlayWithPet(ctx context.Context, wallet string) (*pet.XPResult, error)
	Tasks(ctx context.Context, wallet string) ([]pet.Task, error)
	IncrementTask(ctx context.Context, wallet, taskID string, n int) (*pet.TaskResult, error)
}

// Handler carries the dependencies of every route
type Handler struct {
	Profiles      ProfileStore
	Avatars       ObjectStore
	Audio         ObjectStore
	Notifications NotificationStore
	Nonces        NonceStore
	Events        EventPublisher
	AI            ChatCompleter
	Receipts      ReceiptReader
	Speech        SpeechSynthesizer
	IPFS          Pinner
	Friends       FriendsLoader
	Chain         ChainReader
	Deriver       chain.Deriver
	Pets          PetEngine
	Now           func() time.Time
}

// New fills defaults on h
func New(h Handler) *Handler {
	if h.Now == nil {
		h.Now = time.Now
	}
	return &h
}
