// Package idle tracks client activity and flips to idle after a period
// without input.
package idle

import (
	"context"
	"sync"
	"time"
)

// Defaults used when a Config field is zero
const (
	DefaultTimeout  = 60 * time.Second
	DefaultThrottle = time.Second
	DefaultCheck    = 5 * time.Second
)

// Config of a Detector
type Config struct {
	Timeout  time.Duration
	Throttle time.Duration
	Check    time.Duration
	Now      func() time.Time
	OnChange func(idle bool)
}

// Detector is a two-state machine: active until Timeout passes without
// activity, then idle until the next Touch or Reset.
type Detector struct {
	timeout  time.Duration
	throttle time.Duration
	check    time.Duration
	now      func() time.Time
	onChange func(idle bool)

	mu           sync.Mutex
	lastActivity time.Time
	idle         bool
}

// New creates an active detector
func New(cfg Config) *Detector {
	d := &Detector{
		timeout:  cfg.Timeout,
		throttle: cfg.Throttle,
		check:    cfg.Check,
		now:      cfg.Now,
		onChange: cfg.OnChange,
	}
	if d.timeout <= 0 {
		d.timeout = DefaultTimeout
	}
	if d.throttle <= 0 {
		d.throttle = DefaultThrottle
	}
	if d.check <= 0 {
		d.check = DefaultCheck
	}
	if d.now == nil {
		d.now = time.Now
	}
	d.lastActivity = d.now()
	return d
}

// Touch records activity. Calls closer together than the throttle window are
// ignored while active; an idle detector always wakes.
func (d *Detector) Touch() {
	d.mu.Lock()
	now := d.now()
	if !d.idle && now.Sub(d.lastActivity) < d.throttle {
		d.mu.Unlock()
		return
	}
	d.lastActivity = now
	changed := d.idle
	d.idle = false
	d.mu.Unlock()

	if changed {
		d.notify(false)
	}
}

// Reset returns the detector to active unconditionally
func (d *Detector) Reset() {
	d.mu.Lock()
	d.lastActivity = d.now()
	changed := d.idle
	d.idle = false
	d.mu.Unlock()

	if changed {
		d.notify(false)
	}
}

// IsIdle reports the current state
func (d *Detector) IsIdle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.idle
}

// LastActivity returns the time of the last recorded activity
func (d *Detector) LastActivity() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastActivity
}

// Evaluate moves an active detector to idle once the timeout has passed.
// It returns the resulting state.
func (d *Detector) Evaluate() bool {
	d.mu.Lock()
	if d.idle || d.now().Sub(d.lastActivity) < d.timeout {
		idle := d.idle
		d.mu.Unlock()
		return idle
	}
	d.idle = true
	d.mu.Unlock()

	d.notify(true)
	return true
}

// Run evaluates the detector every check interval until ctx is done
func (d *Detector) Run(ctx context.Context) {
	ticker := time.NewTicker(d.check)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Evaluate()
		}
	}
}

func (d *Detector) notify(idle bool) {
	if d.onChange != nil {
		d.onChange(idle)
	}
}
