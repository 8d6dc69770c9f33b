package reward

import (
	"testing"

	"github.com/solhart/guideplay/store"
)

// quietState unlocks nothing: slow step, no progress.
func quietState() State {
	return State{CurrentStepTime: 400}
}

func TestCheck_FirstStepUnlocksOnce(t *testing.T) {
	var unlocks []string
	a := NewAchievements(store.NewMemory(), func(ach Achievement) {
		unlocks = append(unlocks, ach.ID)
	})

	state := quietState()
	state.CompletedSteps = 1
	a.Check(state)

	if len(unlocks) != 1 || unlocks[0] != "first-step" {
		t.Fatalf("unlocks = %v, want exactly [first-step]", unlocks)
	}
	if !a.IsUnlocked("first-step") {
		t.Error("first-step not reported unlocked")
	}

	// Same state again: no further callback.
	a.Check(state)
	if len(unlocks) != 1 {
		t.Errorf("unlocks after recheck = %v", unlocks)
	}
}

func TestCheck_CatalogOrder(t *testing.T) {
	var unlocks []string
	a := NewAchievements(nil, func(ach Achievement) {
		unlocks = append(unlocks, ach.ID)
	})

	state := quietState()
	state.CompletedSteps = 1
	state.CorrectAnswers = 10
	a.Check(state)

	if len(unlocks) != 2 || unlocks[0] != "first-step" || unlocks[1] != "question-master" {
		t.Errorf("unlocks = %v, want catalog order", unlocks)
	}
}

func TestCheck_PerfectScoreNeedsQuestions(t *testing.T) {
	a := NewAchievements(nil, nil)

	state := quietState()
	state.CorrectRate = 1
	a.Check(state)
	if a.IsUnlocked("perfect-score") {
		t.Error("perfect-score unlocked with zero questions")
	}

	state.TotalQuestions = 3
	a.Check(state)
	if !a.IsUnlocked("perfect-score") {
		t.Error("perfect-score not unlocked")
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	kv := store.NewMemory()

	a := NewAchievements(kv, nil)
	state := quietState()
	state.CompletedSteps = 1
	a.Check(state)

	// A fresh instance over the same store sees the unlock.
	b := NewAchievements(kv, nil)
	b.Load()
	if !b.IsUnlocked("first-step") {
		t.Error("unlock not restored from store")
	}
	if got := len(b.Unlocked()); got != 1 {
		t.Errorf("unlocked count = %d", got)
	}
}

func TestLoad_CorruptDataLeavesEmptySet(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("unlocked_achievements", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	a := NewAchievements(kv, nil)
	a.Load() // must not panic
	if len(a.Unlocked()) != 0 {
		t.Errorf("unlocked = %v, want empty set after corrupt load", a.Unlocked())
	}
}

func TestReset_ClearsAndPersists(t *testing.T) {
	kv := store.NewMemory()
	a := NewAchievements(kv, nil)
	state := quietState()
	state.CompletedSteps = 1
	a.Check(state)

	a.Reset()
	if a.IsUnlocked("first-step") {
		t.Error("reset did not clear unlocks")
	}

	b := NewAchievements(kv, nil)
	b.Load()
	if len(b.Unlocked()) != 0 {
		t.Error("reset not persisted")
	}
}
