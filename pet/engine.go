package pet

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// tasksTTL keeps yesterday's tasks around long enough for late readers
const tasksTTL = 48 * time.Hour

var ErrUnknownTask = errors.New("pet: unknown task")

// XPResult reports an experience gain
type XPResult struct {
	State     *State `json:"pet"`
	Gained    int    `json:"xpGained"`
	LeveledUp bool   `json:"leveledUp"`
}

// TaskResult reports a task increment
type TaskResult struct {
	Task          Task      `json:"task"`
	JustCompleted bool      `json:"justCompleted"`
	Reward        *XPResult `json:"reward,omitempty"`
}

// Engine applies pet rules on top of a Store
type Engine struct {
	store Store
	now   func() time.Time
}

// NewEngine creates an engine. now defaults to time.Now.
func NewEngine(store Store, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, now: now}
}

func petKey(wallet string) string {
	return "pet:" + wallet
}

func tasksKey(wallet, day string) string {
	return "tasks:" + wallet + ":" + day
}

func (e *Engine) decode(wallet string, data []byte, now time.Time) (*State, error) {
	if len(data) == 0 {
		return NewState(wallet, "", DefaultType, now), nil
	}
	s := new(State)
	if err := jsoniter.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("pet: decode %s: %w", wallet, err)
	}
	return s, nil
}

// mutate runs fn on the current state of wallet inside one atomic update
func (e *Engine) mutate(ctx context.Context, wallet string, fn func(s *State, now time.Time) error) (*State, error) {
	var out *State
	err := e.store.Update(ctx, petKey(wallet), 0, func(cur []byte) ([]byte, error) {
		now := e.now()
		s, err := e.decode(wallet, cur, now)
		if err != nil {
			return nil, err
		}
		if err := fn(s, now); err != nil {
			return nil, err
		}
		out = s
		return jsoniter.Marshal(s)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the pet of wallet without applying decay. A wallet without a
// pet gets a default one.
func (e *Engine) Get(ctx context.Context, wallet string) (*State, error) {
	data, err := e.store.Get(ctx, petKey(wallet))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return e.decode(wallet, data, e.now())
}

// Adopt replaces the pet of wallet with a fresh one
func (e *Engine) Adopt(ctx context.Context, wallet, name, petType string) (*State, error) {
	return e.mutate(ctx, wallet, func(s *State, now time.Time) error {
		*s = *NewState(wallet, name, petType, now)
		return nil
	})
}

// Rename changes the pet's name
func (e *Engine) Rename(ctx context.Context, wallet, name string) (*State, error) {
	return e.mutate(ctx, wallet, func(s *State, _ time.Time) error {
		s.Name = name
		return nil
	})
}

// UpdatePetStatus applies happiness decay and returns the current pet
func (e *Engine) UpdatePetStatus(ctx context.Context, wallet string) (*State, error) {
	return e.mutate(ctx, wallet, func(s *State, now time.Time) error {
		s.decay(now)
		return nil
	})
}

// AddXP grants amount (before the type bonus)
func (e *Engine) AddXP(ctx context.Context, wallet string, amount int) (*XPResult, error) {
	res := new(XPResult)
	s, err := e.mutate(ctx, wallet, func(s *State, _ time.Time) error {
		res.Gained, res.LeveledUp = s.addXP(amount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.State = s
	return res, nil
}

// FeedPet feeds the pet unless it was fed within FeedCooldown
func (e *Engine) FeedPet(ctx context.Context, wallet string) (*XPResult, error) {
	res := new(XPResult)
	s, err := e.mutate(ctx, wallet, func(s *State, now time.Time) error {
		if left, active := cooldownRemaining(s.LastFed, now, FeedCooldown); active {
			return CooldownError{Action: ActionFeed, HoursRemaining: hoursCeil(left)}
		}
		s.decay(now)
		s.Happiness = clamp(s.Happiness + FeedHappiness)
		s.Energy = clamp(s.Energy + FeedEnergy)
		s.LastFed = now
		s.DecayBlocks = 0
		s.InteractionCount++
		res.Gained, res.LeveledUp = s.addXP(FeedXP)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.State = s

	return e.creditTask(ctx, wallet, TaskFeedPet, res)
}

// PlayWithPet plays with the pet unless it played within PlayCooldown
func (e *Engine) PlayWithPet(ctx context.Context, wallet string) (*XPResult, error) {
	res := new(XPResult)
	s, err := e.mutate(ctx, wallet, func(s *State, now time.Time) error {
		if left, active := cooldownRemaining(s.LastPlayed, now, PlayCooldown); active {
			return CooldownError{Action: ActionPlay, HoursRemaining: hoursCeil(left)}
		}
		s.decay(now)
		s.Happiness = clamp(s.Happiness + PlayHappiness)
		s.Energy = clamp(s.Energy - PlayEnergy)
		s.LastPlayed = now
		s.InteractionCount++
		res.Gained, res.LeveledUp = s.addXP(PlayXP)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.State = s

	return e.creditTask(ctx, wallet, TaskPlayWithPet, res)
}

// creditTask advances the daily task tied to an action and folds its reward
// into res
func (e *Engine) creditTask(ctx context.Context, wallet, taskID string, res *XPResult) (*XPResult, error) {
	tr, err := e.IncrementTask(ctx, wallet, taskID, 1)
	if err != nil {
		return nil, err
	}
	if tr.Reward != nil {
		res.State = tr.Reward.State
		res.Gained += tr.Reward.Gained
		res.LeveledUp = res.LeveledUp || tr.Reward.LeveledUp
	}
	return res, nil
}

// Tasks returns today's tasks of wallet
func (e *Engine) Tasks(ctx context.Context, wallet string) ([]Task, error) {
	data, err := e.store.Get(ctx, tasksKey(wallet, DateKey(e.now())))
	if errors.Is(err, ErrNotFound) || (err == nil && len(data) == 0) {
		return freshTasks(), nil
	} else if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := jsoniter.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// IncrementTask advances taskID by n for today. Completing a task grants its
// XP reward once.
func (e *Engine) IncrementTask(ctx context.Context, wallet, taskID string, n int) (*TaskResult, error) {
	res := new(TaskResult)
	day := DateKey(e.now())

	err := e.store.Update(ctx, tasksKey(wallet, day), tasksTTL, func(cur []byte) ([]byte, error) {
		tasks := freshTasks()
		if len(cur) > 0 {
			tasks = nil
			if err := jsoniter.Unmarshal(cur, &tasks); err != nil {
				return nil, err
			}
		}

		task, done, found := increment(tasks, taskID, n)
		if !found {
			return nil, ErrUnknownTask
		}
		res.Task, res.JustCompleted = task, done
		return jsoniter.Marshal(tasks)
	})
	if err != nil {
		return nil, err
	}

	if res.JustCompleted && res.Task.XPReward > 0 {
		reward, err := e.AddXP(ctx, wallet, res.Task.XPReward)
		if err != nil {
			return nil, err
		}
		res.Reward = reward
	}
	return res, nil
}
