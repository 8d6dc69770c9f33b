// Package feedback routes gamification outcomes to an injectable
// presentation surface. The decision logic lives in package reward; this
// package only translates outcomes into toasts, particles, score
// flashes and sounds, so it is fully testable with a fake presenter.
package feedback

import (
	"fmt"

	"github.com/solhart/guideplay/reward"
)

// Kind classifies a feedback event.
type Kind string

const (
	KindSuccess     Kind = "success"
	KindError       Kind = "error"
	KindLevelUp     Kind = "levelup"
	KindAchievement Kind = "achievement"
)

// ToastKind selects a toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Sound names a synthesized effect.
type Sound string

const (
	SoundCorrect   Sound = "correct"
	SoundIncorrect Sound = "incorrect"
	SoundLevelUp   Sound = "levelup"
)

// Presenter is the capability interface a rendering surface implements.
// All calls are fire-and-forget; the core never waits on presentation.
type Presenter interface {
	ShowToast(message string, kind ToastKind)
	ShowParticle(kind Kind)
	ShowScore(points int)
}

// SoundPlayer plays a synthesized effect. Implementations must be safe
// to call from the triggering goroutine and must not block on playback.
type SoundPlayer interface {
	Play(sound Sound)
}

// NopSound is a SoundPlayer that stays silent.
type NopSound struct{}

func (NopSound) Play(Sound) {}

// System fans feedback out to a presenter and a sound player. It is an
// explicitly constructed instance: build one per player session and pass
// it down.
type System struct {
	presenter Presenter
	sound     SoundPlayer
}

// New builds a feedback system. sound may be nil for silent play.
func New(presenter Presenter, sound SoundPlayer) *System {
	if sound == nil {
		sound = NopSound{}
	}
	return &System{presenter: presenter, sound: sound}
}

// Answer presents the outcome of one quiz answer.
func (s *System) Answer(correct bool, points int) {
	if correct {
		s.presenter.ShowParticle(KindSuccess)
		s.sound.Play(SoundCorrect)
		s.presenter.ShowToast(fmt.Sprintf("✅ 回答正确！+%d分", points), ToastSuccess)
		s.presenter.ShowScore(points)
		return
	}
	s.presenter.ShowParticle(KindError)
	s.sound.Play(SoundIncorrect)
	s.presenter.ShowToast("❌ 回答错误，再想想", ToastError)
}

// AchievementUnlocked presents a fresh unlock.
func (s *System) AchievementUnlocked(a reward.Achievement) {
	s.presenter.ShowParticle(KindAchievement)
	s.sound.Play(SoundLevelUp)
	s.presenter.ShowToast(fmt.Sprintf("%s 成就解锁：%s", a.Icon, a.Name), ToastInfo)
}

// ComboChanged presents the running streak count.
func (s *System) ComboChanged(count int) {
	if count < 2 {
		return
	}
	s.presenter.ShowToast(fmt.Sprintf("%d 连击！", count), ToastInfo)
}

// ComboBonus presents a streak bonus.
func (s *System) ComboBonus(count, bonus int) {
	s.presenter.ShowParticle(KindLevelUp)
	s.sound.Play(SoundLevelUp)
	s.presenter.ShowToast(fmt.Sprintf("🔥 %d 连击奖励 +%d 经验", count, bonus), ToastSuccess)
}
