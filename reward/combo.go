package reward

import (
	"sync"
	"time"
)

// comboIdleWindow is how long the streak survives without a new hit.
const comboIdleWindow = 5 * time.Second

// comboBonuses maps exact streak counts to bonus experience. Thresholds
// are exact-match: a streak of 4 grants nothing.
var comboBonuses = map[int]int{
	3:  5,
	5:  10,
	10: 25,
}

// Combo tracks a streak of consecutive successful actions. The counter
// resets after the idle window elapses with no new hit, or on Reset.
type Combo struct {
	mu      sync.Mutex
	count   int
	timer   *time.Timer
	idle    time.Duration
	onCombo func(count int)
	onBonus func(count, bonus int)
}

// NewCombo builds a combo tracker with the standard 5-second idle
// window. Either callback may be nil.
func NewCombo(onCombo func(count int), onBonus func(count, bonus int)) *Combo {
	return &Combo{
		idle:    comboIdleWindow,
		onCombo: onCombo,
		onBonus: onBonus,
	}
}

// SetIdleWindow overrides the idle-reset window. Call before play
// starts; shrinking it mid-streak does not reschedule a pending reset.
func (c *Combo) SetIdleWindow(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.idle = d
}

// Add registers one successful action: increments the streak, restarts
// the idle timer and fires the callbacks. Both callbacks run
// synchronously within the call.
func (c *Combo) Add() {
	c.mu.Lock()
	c.count++
	count := c.count
	c.restartTimerLocked()
	c.mu.Unlock()

	if c.onCombo != nil {
		c.onCombo(count)
	}
	if bonus, ok := comboBonuses[count]; ok && c.onBonus != nil {
		c.onBonus(count, bonus)
	}
}

// Count returns the current streak.
func (c *Combo) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset zeroes the streak and cancels any pending idle reset.
func (c *Combo) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.stopTimerLocked()
}

func (c *Combo) restartTimerLocked() {
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.idle, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.count = 0
		c.timer = nil
	})
}

func (c *Combo) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
