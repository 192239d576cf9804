package schemas

import (
	"time"

	"solamate_server/pet"
)

// PetSchema struct
type PetSchema struct {
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Personality      string    `json:"personality"`
	XPBonus          int       `json:"xpBonus"`
	Level            int       `json:"level"`
	XP               int       `json:"xp"`
	TotalXP          int       `json:"totalXp"`
	NextLevelXP      int       `json:"nextLevelXp"`
	Happiness        int       `json:"happiness"`
	Energy           int       `json:"energy"`
	LastFed          time.Time `json:"lastFed"`
	LastPlayed       time.Time `json:"lastPlayed"`
	InteractionCount int       `json:"interactionCount"`
}

// PetResponse struct
type PetResponse struct {
	Success bool      `json:"success"`
	Pet     PetSchema `json:"pet"`
}

// PetActionSchema struct
type PetActionSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
}

// AdoptPetSchema struct
type AdoptPetSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Name          string `json:"name" validate:"max=30"`
	Type          string `json:"type" validate:"required,oneof=cat dog dragon fox panda phoenix"`
}

// AddXPSchema struct
type AddXPSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Amount        int    `json:"amount" validate:"required,min=1,max=1000"`
}

// PetActionResponse struct
type PetActionResponse struct {
	Success   bool      `json:"success"`
	Pet       PetSchema `json:"pet"`
	XPGained  int       `json:"xpGained"`
	LeveledUp bool      `json:"leveledUp"`
}

// TasksResponse struct
type TasksResponse struct {
	Success bool       `json:"success"`
	Date    string     `json:"date"`
	Tasks   []pet.Task `json:"tasks"`
}

// TaskProgressSchema struct
type TaskProgressSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	TaskID        string `json:"taskId" validate:"required,max=50"`
	Amount        int    `json:"amount" validate:"omitempty,min=1,max=100"`
}

// TaskProgressResponse struct
type TaskProgressResponse struct {
	Success       bool     `json:"success"`
	Task          pet.Task `json:"task"`
	JustCompleted bool     `json:"justCompleted"`
	XPGained      int      `json:"xpGained"`
	LeveledUp     bool     `json:"leveledUp"`
}

// RenamePetSchema struct
type RenamePetSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Name          string `json:"name" validate:"required,max=30"`
}
