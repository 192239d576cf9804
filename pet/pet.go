// Package pet implements the companion pet: experience and levels, feeding
// and play cooldowns, happiness decay and daily tasks.
package pet

import (
	"fmt"
	"math"
	"time"
)

// MaxLevel is the highest reachable level
const MaxLevel = 10

// levelThresholds[L-1] is the total XP needed to reach level L
var levelThresholds = [MaxLevel]int{0, 100, 250, 500, 900, 1400, 2000, 2800, 3800, 5000}

const (
	FeedCooldown  = 6 * time.Hour
	PlayCooldown  = 4 * time.Hour
	DecayInterval = 12 * time.Hour

	MaxStat = 100

	FeedHappiness = 20
	FeedEnergy    = 10
	FeedXP        = 10

	PlayHappiness = 15
	PlayEnergy    = 10
	PlayXP        = 15

	DecayHappiness = 10
)

// XPRequiredForLevel returns the total XP threshold of level. Levels below 1
// need nothing and levels above MaxLevel are unreachable.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		return math.MaxInt
	}
	return levelThresholds[level-1]
}

// CalculateLevel returns the highest level whose threshold totalXP meets
func CalculateLevel(totalXP int) int {
	level := 1
	for l := 2; l <= MaxLevel; l++ {
		if totalXP < levelThresholds[l-1] {
			break
		}
		level = l
	}
	return level
}

// Trait describes a pet type
type Trait struct {
	Name        string `json:"name"`
	XPBonus     int    `json:"xpBonus"`
	Personality string `json:"personality"`
}

// DefaultType is assigned to pets created without a type
const DefaultType = "cat"

// Traits maps pet type to its trait. XPBonus is a percentage added to every
// XP gain.
var Traits = map[string]Trait{
	"cat":     {Name: "Cat", XPBonus: 10, Personality: "curious, a little sassy, loves naps"},
	"dog":     {Name: "Dog", XPBonus: 5, Personality: "loyal, energetic and always excited to see you"},
	"dragon":  {Name: "Dragon", XPBonus: 20, Personality: "proud, fiery and fiercely protective of your treasure"},
	"fox":     {Name: "Fox", XPBonus: 15, Personality: "clever, playful and good with numbers"},
	"panda":   {Name: "Panda", XPBonus: 0, Personality: "calm, gentle and a fan of bamboo snacks"},
	"phoenix": {Name: "Phoenix", XPBonus: 25, Personality: "wise, warm and endlessly optimistic"},
}

// TraitOf returns the trait of petType, falling back to DefaultType
func TraitOf(petType string) Trait {
	if t, ok := Traits[petType]; ok {
		return t
	}
	return Traits[DefaultType]
}

// ApplyBonus adds the type bonus percentage to amount, rounded down
func ApplyBonus(petType string, amount int) int {
	if amount <= 0 {
		return 0
	}
	return amount + amount*TraitOf(petType).XPBonus/100
}

// State is the persisted pet of one wallet
type State struct {
	Wallet           string    `json:"wallet"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Level            int       `json:"level"`
	XP               int       `json:"xp"`
	TotalXP          int       `json:"totalXp"`
	Happiness        int       `json:"happiness"`
	Energy           int       `json:"energy"`
	LastFed          time.Time `json:"lastFed"`
	LastPlayed       time.Time `json:"lastPlayed"`
	InteractionCount int       `json:"interactionCount"`
	CreatedAt        time.Time `json:"createdAt"`

	// DecayBlocks counts the 12 hour blocks since LastFed already charged
	DecayBlocks int `json:"decayBlocks"`
}

// NewState returns a fresh level 1 pet
func NewState(wallet, name, petType string, now time.Time) *State {
	if _, ok := Traits[petType]; !ok {
		petType = DefaultType
	}
	if name == "" {
		name = TraitOf(petType).Name
	}
	return &State{
		Wallet:    wallet,
		Name:      name,
		Type:      petType,
		Level:     1,
		Happiness: 80,
		Energy:    80,
		CreatedAt: now,
	}
}

// NextLevelXP is the XP still needed for the next level, zero at MaxLevel
func (s *State) NextLevelXP() int {
	if s.Level >= MaxLevel {
		return 0
	}
	return XPRequiredForLevel(s.Level+1) - s.TotalXP
}

// addXP applies the type bonus and recomputes the level
func (s *State) addXP(amount int) (gained int, leveledUp bool) {
	gained = ApplyBonus(s.Type, amount)
	before := s.Level
	s.TotalXP += gained
	s.Level = CalculateLevel(s.TotalXP)
	s.XP = s.TotalXP - XPRequiredForLevel(s.Level)
	return gained, s.Level > before
}

// decay charges happiness for every full DecayInterval since the last feed
// not yet charged. It reports whether anything changed.
func (s *State) decay(now time.Time) bool {
	since := s.LastFed
	if since.IsZero() {
		since = s.CreatedAt
	}
	elapsed := now.Sub(since)
	if elapsed <= DecayInterval {
		return false
	}

	blocks := int(elapsed / DecayInterval)
	pending := blocks - s.DecayBlocks
	if pending <= 0 {
		return false
	}
	s.Happiness = clamp(s.Happiness - pending*DecayHappiness)
	s.DecayBlocks = blocks
	return true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// CooldownError is returned when an action is repeated too early
type CooldownError struct {
	Action         string
	HoursRemaining int
}

func (e CooldownError) Error() string {
	unit := "hours"
	if e.HoursRemaining == 1 {
		unit = "hour"
	}
	switch e.Action {
	case ActionFeed:
		return fmt.Sprintf("Your pet is not hungry yet. Try again in %d %s.", e.HoursRemaining, unit)
	case ActionPlay:
		return fmt.Sprintf("Your pet is tired. Try again in %d %s.", e.HoursRemaining, unit)
	default:
		return fmt.Sprintf("%s is on cooldown for %d %s", e.Action, e.HoursRemaining, unit)
	}
}

const (
	ActionFeed = "feed"
	ActionPlay = "play"
)

func cooldownRemaining(last, now time.Time, cooldown time.Duration) (time.Duration, bool) {
	if last.IsZero() {
		return 0, false
	}
	left := cooldown - now.Sub(last)
	return left, left > 0
}

func hoursCeil(d time.Duration) int {
	return int(math.Ceil(d.Hours()))
}
