// Package course turns a parsed teaching guide into a renderable
// interactive course: ordered steps with stable ids, rendered HTML
// summaries and derived knowledge cards.
package course

import "github.com/solhart/guideplay/guide"

// StepType classifies how the player presents a step.
type StepType string

const (
	// StepContent is a read-through step with no embedded quiz.
	StepContent StepType = "content"
	// StepOperation is a step the learner acts on (carries a quiz).
	StepOperation StepType = "operation"
)

// KnowledgeCard is a short auto-derived highlight reinforcing one step's
// key takeaway.
type KnowledgeCard struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Quiz is a guide question with a stable per-course id.
type Quiz struct {
	guide.Question
	ID string `json:"id"`
}

// Step is one playable unit of the course.
type Step struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Duration      string         `json:"duration,omitempty"`
	Type          StepType       `json:"type"`
	ContentHTML   string         `json:"contentHtml"`
	PracticeTasks []string       `json:"practiceTasks"`
	Quiz          []Quiz         `json:"quiz"`
	KnowledgeCard *KnowledgeCard `json:"knowledgeCard,omitempty"`
}

// Meta carries the course-level document data.
type Meta struct {
	Title        string            `json:"title"`
	Duration     string            `json:"duration,omitempty"`
	Goals        []guide.GoalGroup `json:"goals"`
	Preparations []string          `json:"preparations"`
	Homework     []string          `json:"homework"`
	FAQ          []guide.FAQEntry  `json:"faq"`
	Tips         []string          `json:"tips"`
	Checklist    []string          `json:"checklist"`
}

// Course is the complete interactive model handed to a player surface.
// It is JSON-serializable and holds no references back into the builder.
type Course struct {
	Meta  Meta   `json:"meta"`
	Steps []Step `json:"steps"`
}

// knowledgeIcons is the fixed icon palette cycled by step index.
var knowledgeIcons = []string{"💡", "🔥", "📌", "🎯", "🧠", "⚡️"}
