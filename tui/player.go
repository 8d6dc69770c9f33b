// Package tui is the terminal player surface. It renders an interactive
// course step by step, drives the gamification engines from keyboard
// events and implements the feedback presenter as timed screen overlays.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/solhart/guideplay/course"
	"github.com/solhart/guideplay/feedback"
	"github.com/solhart/guideplay/reward"
	"github.com/solhart/guideplay/store"
)

const (
	pointsPerQuestion = 10
	toastLifetime     = 3 * time.Second
	particleLifetime  = 1500 * time.Millisecond
	scoreLifetime     = 1500 * time.Millisecond
	redrawInterval    = 100 * time.Millisecond
)

// overlay is one transient on-screen effect (toast, particle, score).
type overlay struct {
	text    string
	style   tcell.Style
	expires time.Time
}

// Player owns one play-through of a course.
type Player struct {
	screen tcell.Screen
	course *course.Course

	fb           *feedback.System
	achievements *reward.Achievements
	combo        *reward.Combo

	stepIndex int
	selected  int             // highlighted quiz option
	quizPos   int             // current question within the step
	answered  map[string]bool // quiz id → answered
	completed map[int]bool    // step index → done
	collected map[int]bool    // step index → knowledge card taken

	score          int
	exp            int
	coins          int
	correctAnswers int
	totalQuestions int
	stepStart      time.Time

	toasts    []overlay
	particles []overlay
	scores    []overlay

	quit bool
}

// New wires a player with its own feedback and reward instances. kv may
// be nil (no persistence), sound may be nil (silent).
func New(c *course.Course, kv store.KV, sound feedback.SoundPlayer) *Player {
	p := &Player{
		course:    c,
		answered:  make(map[string]bool),
		completed: make(map[int]bool),
		collected: make(map[int]bool),
		stepStart: time.Now(),
	}
	for _, step := range c.Steps {
		p.totalQuestions += len(step.Quiz)
	}

	p.fb = feedback.New(p, sound)
	p.achievements = reward.NewAchievements(kv, func(a reward.Achievement) {
		p.exp += a.Reward.Exp
		p.coins += a.Reward.Coins
		p.fb.AchievementUnlocked(a)
	})
	p.achievements.Load()
	p.combo = reward.NewCombo(p.fb.ComboChanged, func(count, bonus int) {
		p.exp += bonus
		p.fb.ComboBonus(count, bonus)
	})

	return p
}

// Run takes over the terminal until the player quits or the course ends.
func (p *Player) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	if len(p.course.Steps) == 0 {
		screen.Fini()
		return fmt.Errorf("tui: course has no steps")
	}
	p.screen = screen
	defer screen.Fini()
	defer p.combo.Reset()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	p.draw()
	for !p.quit {
		select {
		case ev := <-events:
			p.handleEvent(ev)
		case <-ticker.C:
			p.pruneOverlays()
		}
		p.draw()
	}
	return nil
}

func (p *Player) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		p.handleKey(ev)
	}
}

func (p *Player) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		p.quit = true
	case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
		p.prevStep()
	case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
		p.advance()
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		p.moveSelection(-1)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		p.moveSelection(1)
	case ev.Key() == tcell.KeyEnter:
		p.confirm()
	default:
		// Direct option letters.
		if r := ev.Rune(); r >= 'a' && r <= 'd' {
			p.selectOption(int(r - 'a'))
		} else if r >= 'A' && r <= 'D' {
			p.selectOption(int(r - 'A'))
		}
	}
}

// currentQuestion returns the active unanswered question, if any.
func (p *Player) currentQuestion() (course.Quiz, bool) {
	step := p.course.Steps[p.stepIndex]
	for i := p.quizPos; i < len(step.Quiz); i++ {
		if !p.answered[step.Quiz[i].ID] {
			p.quizPos = i
			return step.Quiz[i], true
		}
	}
	return course.Quiz{}, false
}

func (p *Player) moveSelection(delta int) {
	q, ok := p.currentQuestion()
	if !ok || len(q.Options) == 0 {
		return
	}
	p.selected = (p.selected + delta + len(q.Options)) % len(q.Options)
}

func (p *Player) selectOption(i int) {
	q, ok := p.currentQuestion()
	if !ok || i >= len(q.Options) {
		return
	}
	p.selected = i
}

// confirm submits the highlighted answer, or advances when the step has
// no pending question.
func (p *Player) confirm() {
	q, ok := p.currentQuestion()
	if !ok {
		p.advance()
		return
	}
	if len(q.Options) == 0 {
		p.answered[q.ID] = true
		return
	}

	p.answered[q.ID] = true
	letter := string(rune('A' + p.selected))
	// A question without a stated answer accepts any choice.
	if q.Answer == "" || letter == q.Answer {
		p.score += pointsPerQuestion
		p.correctAnswers++
		p.combo.Add()
		p.fb.Answer(true, pointsPerQuestion)
	} else {
		p.combo.Reset()
		p.fb.Answer(false, 0)
	}
	p.selected = 0
	p.checkProgress()
}

// advance completes the current step and moves forward.
func (p *Player) advance() {
	if !p.completed[p.stepIndex] {
		p.completed[p.stepIndex] = true
		step := p.course.Steps[p.stepIndex]
		if step.KnowledgeCard != nil && !p.collected[p.stepIndex] {
			p.collected[p.stepIndex] = true
		}
		p.checkProgress()
	}
	if p.stepIndex < len(p.course.Steps)-1 {
		p.stepIndex++
		p.quizPos = 0
		p.selected = 0
		p.stepStart = time.Now()
	}
}

func (p *Player) prevStep() {
	if p.stepIndex > 0 {
		p.stepIndex--
		p.quizPos = 0
		p.selected = 0
		p.stepStart = time.Now()
	}
}

// checkProgress snapshots the session and lets the achievement engine
// react.
func (p *Player) checkProgress() {
	state := reward.State{
		CompletedSteps:  len(p.completed),
		CorrectAnswers:  p.correctAnswers,
		TotalQuestions:  p.totalQuestions,
		CollectedCards:  len(p.collected),
		CurrentStepTime: time.Since(p.stepStart).Seconds(),
		ProgressPercent: 100 * float64(len(p.completed)) / float64(max(len(p.course.Steps), 1)),
	}
	if p.totalQuestions > 0 {
		state.CorrectRate = float64(p.correctAnswers) / float64(p.totalQuestions)
	}
	p.achievements.Check(state)
}

// ShowToast implements feedback.Presenter.
func (p *Player) ShowToast(message string, kind feedback.ToastKind) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	switch kind {
	case feedback.ToastSuccess:
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case feedback.ToastError:
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	p.toasts = append(p.toasts, overlay{
		text:    message,
		style:   style,
		expires: time.Now().Add(toastLifetime),
	})
}

// ShowParticle implements feedback.Presenter.
func (p *Player) ShowParticle(kind feedback.Kind) {
	var text string
	switch kind {
	case feedback.KindSuccess:
		text = "✨"
	case feedback.KindError:
		text = "💥"
	case feedback.KindLevelUp:
		text = "🎉"
	case feedback.KindAchievement:
		text = "🏆"
	}
	p.particles = append(p.particles, overlay{
		text:    text,
		style:   tcell.StyleDefault.Bold(true),
		expires: time.Now().Add(particleLifetime),
	})
}

// ShowScore implements feedback.Presenter.
func (p *Player) ShowScore(points int) {
	p.scores = append(p.scores, overlay{
		text:    fmt.Sprintf("+%d", points),
		style:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		expires: time.Now().Add(scoreLifetime),
	})
}

func (p *Player) pruneOverlays() {
	now := time.Now()
	p.toasts = pruneExpired(p.toasts, now)
	p.particles = pruneExpired(p.particles, now)
	p.scores = pruneExpired(p.scores, now)
}

func pruneExpired(overlays []overlay, now time.Time) []overlay {
	kept := overlays[:0]
	for _, o := range overlays {
		if o.expires.After(now) {
			kept = append(kept, o)
		}
	}
	return kept
}
