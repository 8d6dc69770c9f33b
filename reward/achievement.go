// Package reward holds the gamification engines: achievement unlocking
// and combo tracking. Both are pure state machines driven by
// player-progress events, independent of parsing and rendering. Each
// instance owns its mutable state exclusively; do not share one across
// concurrently-progressing course sessions.
package reward

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/solhart/guideplay/store"
)

// unlockedKey is the persistence key for the unlocked achievement ids.
const unlockedKey = "unlocked_achievements"

// State is the progress snapshot achievement predicates evaluate.
// CurrentStepTime is seconds spent on the active step; ProgressPercent
// and CorrectRate are 0-100 and 0-1 respectively.
type State struct {
	CompletedSteps  int
	CorrectAnswers  int
	TotalQuestions  int
	CollectedCards  int
	CurrentStepTime float64
	ProgressPercent float64
	CorrectRate     float64
}

// Rarity grades an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Reward is what an unlock grants.
type Reward struct {
	Exp   int    `json:"exp"`
	Coins int    `json:"coins"`
	Badge string `json:"badge,omitempty"`
}

// Achievement is one catalog entry. Condition must be side-effect free.
type Achievement struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Condition   func(State) bool `json:"-"`
	Reward      Reward           `json:"reward"`
	Rarity      Rarity           `json:"rarity"`
}

// catalog is the fixed achievement set, evaluated in order.
func catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first-step",
			Name:        "初出茅庐",
			Description: "完成第一个步骤",
			Icon:        "🌱",
			Condition:   func(s State) bool { return s.CompletedSteps >= 1 },
			Reward:      Reward{Exp: 10, Coins: 5},
			Rarity:      RarityCommon,
		},
		{
			ID:          "speed-demon",
			Name:        "速度之星",
			Description: "在5分钟内完成一个步骤",
			Icon:        "⚡",
			Condition:   func(s State) bool { return s.CurrentStepTime < 300 },
			Reward:      Reward{Exp: 50, Coins: 20},
			Rarity:      RarityRare,
		},
		{
			ID:          "perfect-score",
			Name:        "完美通关",
			Description: "所有题目全部答对",
			Icon:        "🏆",
			Condition:   func(s State) bool { return s.CorrectRate == 1 && s.TotalQuestions > 0 },
			Reward:      Reward{Exp: 100, Coins: 50, Badge: "perfect"},
			Rarity:      RarityEpic,
		},
		{
			ID:          "knowledge-collector",
			Name:        "知识收集者",
			Description: "收集5张知识卡片",
			Icon:        "📚",
			Condition:   func(s State) bool { return s.CollectedCards >= 5 },
			Reward:      Reward{Exp: 30, Coins: 15},
			Rarity:      RarityRare,
		},
		{
			ID:          "question-master",
			Name:        "答题达人",
			Description: "答对10道题目",
			Icon:        "🎯",
			Condition:   func(s State) bool { return s.CorrectAnswers >= 10 },
			Reward:      Reward{Exp: 40, Coins: 20},
			Rarity:      RarityRare,
		},
		{
			ID:          "completionist",
			Name:        "有始有终",
			Description: "完成所有步骤",
			Icon:        "💯",
			Condition:   func(s State) bool { return s.ProgressPercent == 100 },
			Reward:      Reward{Exp: 80, Coins: 40},
			Rarity:      RarityEpic,
		},
	}
}

// Achievements evaluates a fixed catalog against progress snapshots and
// unlocks entries whose predicate turns true. The unlocked set is
// monotonic within a session and persisted best-effort through the KV
// store.
type Achievements struct {
	mu       sync.Mutex
	catalog  []Achievement
	unlocked map[string]struct{}
	onUnlock func(Achievement)
	kv       store.KV
}

// NewAchievements builds the engine. kv may be nil (no persistence);
// onUnlock may be nil (no notification).
func NewAchievements(kv store.KV, onUnlock func(Achievement)) *Achievements {
	return &Achievements{
		catalog:  catalog(),
		unlocked: make(map[string]struct{}),
		onUnlock: onUnlock,
		kv:       kv,
	}
}

// Check evaluates every not-yet-unlocked achievement against the
// snapshot, in catalog order, unlocking each whose predicate is newly
// true. The unlock callback fires exactly once per achievement.
func (a *Achievements) Check(state State) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ach := range a.catalog {
		if _, done := a.unlocked[ach.ID]; done {
			continue
		}
		if !ach.Condition(state) {
			continue
		}
		a.unlocked[ach.ID] = struct{}{}
		if a.onUnlock != nil {
			a.onUnlock(ach)
		}
		a.saveLocked()
	}
}

// IsUnlocked reports whether the achievement id has been unlocked.
func (a *Achievements) IsUnlocked(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.unlocked[id]
	return ok
}

// Unlocked returns the unlocked achievements in catalog order.
func (a *Achievements) Unlocked() []Achievement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := []Achievement{}
	for _, ach := range a.catalog {
		if _, ok := a.unlocked[ach.ID]; ok {
			out = append(out, ach)
		}
	}
	return out
}

// All returns a copy of the catalog.
func (a *Achievements) All() []Achievement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Achievement, len(a.catalog))
	copy(out, a.catalog)
	return out
}

// Load restores the unlocked set from the KV store. A corrupt stored
// value is logged and leaves the set empty; an absent key is a valid
// empty state.
func (a *Achievements) Load() {
	if a.kv == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	raw, ok, err := a.kv.Get(unlockedKey)
	if err != nil {
		log.Printf("reward: load unlocked achievements: %v", err)
		return
	}
	if !ok {
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("reward: corrupt unlocked achievements, starting empty: %v", err)
		return
	}
	for _, id := range ids {
		a.unlocked[id] = struct{}{}
	}
}

// Reset clears the unlocked set and persists the empty state.
func (a *Achievements) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unlocked = make(map[string]struct{})
	a.saveLocked()
}

// saveLocked persists the unlocked id set in catalog order. Persistence
// is best-effort: failures are logged, never propagated.
func (a *Achievements) saveLocked() {
	if a.kv == nil {
		return
	}
	ids := []string{}
	for _, ach := range a.catalog {
		if _, ok := a.unlocked[ach.ID]; ok {
			ids = append(ids, ach.ID)
		}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		log.Printf("reward: encode unlocked achievements: %v", err)
		return
	}
	if err := a.kv.Set(unlockedKey, raw); err != nil {
		log.Printf("reward: save unlocked achievements: %v", err)
	}
}
