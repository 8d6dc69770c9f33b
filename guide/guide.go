// Package guide parses semi-structured Markdown teaching guides into a
// typed document model. The format is convention-driven: a single `#`
// title, `##` sections keyed by Chinese heading keywords, `###` step
// headings and `####` step sub-headings. Parsing is tolerant: a missing
// section yields an empty structure, malformed lines are skipped.
package guide

import "errors"

// ErrEmptyGuide is returned when the input document is empty or
// whitespace-only. It is the only hard failure in this package.
var ErrEmptyGuide = errors.New("guide: empty document")

// Fallback title for documents without a `# ` heading.
const untitledGuide = "未命名任务"

// Section lookup keywords. Matching is fuzzy: the first section whose
// heading contains the keyword wins, tolerating numbering or decoration
// around the heading text.
const (
	keyGoals        = "学习目标"
	keyDuration     = "任务时间"
	keyPreparations = "准备工作"
	keySteps        = "操作步骤"
	keyHomework     = "作业要求"
	keyFAQ          = "常见问题"
	keyTips         = "学习提示"
	keyChecklist    = "自我检查"
)

// GoalGroup is a titled bundle of learning goals.
type GoalGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Question is one embedded quiz question. Answer is a single letter code
// (A-D) and may be empty when the document omits it.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Step is one instructional unit from the operation-steps section.
// Raw keeps the unmodified source block for traceability.
type Step struct {
	Title    string     `json:"title"`
	Duration string     `json:"duration,omitempty"`
	Summary  []string   `json:"summary"`
	Practice []string   `json:"practice,omitempty"`
	Quiz     []Question `json:"quiz,omitempty"`
	Raw      string     `json:"raw,omitempty"`
}

// FAQEntry is one question/answer pair from the FAQ section.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Parsed is the full document model produced by Parse. It is a value
// object: callers own it and it holds no references back into the parser.
type Parsed struct {
	Title           string            `json:"title"`
	Sections        map[string]string `json:"sections"`
	Goals           []GoalGroup       `json:"goals"`
	Duration        string            `json:"duration,omitempty"`
	TimeAllocations []string          `json:"timeAllocations"`
	Preparations    []string          `json:"preparations"`
	Steps           []Step            `json:"steps"`
	Homework        []string          `json:"homework"`
	FAQ             []FAQEntry        `json:"faq"`
	Tips            []string          `json:"tips"`
	Checklist       []string          `json:"checklist"`

	// sectionOrder preserves heading order so fuzzy lookup is
	// deterministic (first match in document order).
	sectionOrder []string
}

// SectionOrder returns section keys in document order.
func (p *Parsed) SectionOrder() []string {
	out := make([]string, len(p.sectionOrder))
	copy(out, p.sectionOrder)
	return out
}

// findSection returns the body of the first section whose key contains
// keyword, in document order. Two headings sharing the keyword tie-break
// to the earlier one.
func (p *Parsed) findSection(keyword string) (string, bool) {
	for _, key := range p.sectionOrder {
		if containsKeyword(key, keyword) {
			return p.Sections[key], true
		}
	}
	return "", false
}
