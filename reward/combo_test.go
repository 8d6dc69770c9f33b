package reward

import (
	"testing"
	"time"
)

type bonusHit struct {
	count int
	bonus int
}

func TestCombo_BonusThresholds(t *testing.T) {
	var counts []int
	var bonuses []bonusHit
	c := NewCombo(
		func(count int) { counts = append(counts, count) },
		func(count, bonus int) { bonuses = append(bonuses, bonusHit{count, bonus}) },
	)
	defer c.Reset()

	for i := 0; i < 5; i++ {
		c.Add()
	}

	if c.Count() != 5 {
		t.Errorf("count = %d, want 5", c.Count())
	}
	if len(counts) != 5 || counts[4] != 5 {
		t.Errorf("combo callbacks = %v", counts)
	}
	// Bonuses only at the exact thresholds 3 and 5.
	want := []bonusHit{{3, 5}, {5, 10}}
	if len(bonuses) != 2 || bonuses[0] != want[0] || bonuses[1] != want[1] {
		t.Errorf("bonuses = %v, want %v", bonuses, want)
	}
}

func TestCombo_TenHitBonus(t *testing.T) {
	var bonuses []bonusHit
	c := NewCombo(nil, func(count, bonus int) { bonuses = append(bonuses, bonusHit{count, bonus}) })
	defer c.Reset()

	for i := 0; i < 10; i++ {
		c.Add()
	}
	if len(bonuses) != 3 || bonuses[2] != (bonusHit{10, 25}) {
		t.Errorf("bonuses = %v", bonuses)
	}
}

func TestCombo_Reset(t *testing.T) {
	c := NewCombo(nil, nil)
	c.Add()
	c.Add()
	c.Reset()
	if c.Count() != 0 {
		t.Errorf("count after reset = %d", c.Count())
	}

	// The streak restarts from one, so no threshold is re-skipped.
	c.Add()
	if c.Count() != 1 {
		t.Errorf("count = %d, want 1", c.Count())
	}
	c.Reset()
}

func TestCombo_IdleWindowResets(t *testing.T) {
	c := NewCombo(nil, nil)
	c.SetIdleWindow(20 * time.Millisecond)
	defer c.Reset()

	c.Add()
	c.Add()
	if c.Count() != 2 {
		t.Fatalf("count = %d", c.Count())
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("idle window never reset the streak")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCombo_AddRestartsIdleTimer(t *testing.T) {
	c := NewCombo(nil, nil)
	c.SetIdleWindow(200 * time.Millisecond)
	defer c.Reset()

	// Keep hitting inside the window: the streak must survive.
	for i := 0; i < 4; i++ {
		c.Add()
		time.Sleep(20 * time.Millisecond)
	}
	if c.Count() != 4 {
		t.Errorf("count = %d, want 4 (timer should restart on every hit)", c.Count())
	}
}
