package course

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/solhart/guideplay/guide"
)

// renderer mirrors the authoring convention: GitHub-flavored markdown
// with single newlines kept as hard breaks. Guides are trusted authored
// content, so raw HTML passes through.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// Build parses a teaching-guide document and converts it into an
// interactive course. It fails only when the underlying parse fails
// (empty input); no new failure modes are added.
func Build(md string) (*Course, error) {
	parsed, err := guide.Parse(md)
	if err != nil {
		return nil, err
	}
	return FromParsed(parsed), nil
}

// FromParsed builds the course from an already-parsed guide.
func FromParsed(parsed *guide.Parsed) *Course {
	steps := make([]Step, len(parsed.Steps))
	for i, gs := range parsed.Steps {
		steps[i] = convertStep(gs, i)
	}

	return &Course{
		Meta: Meta{
			Title:        parsed.Title,
			Duration:     parsed.Duration,
			Goals:        parsed.Goals,
			Preparations: parsed.Preparations,
			Homework:     parsed.Homework,
			FAQ:          parsed.FAQ,
			Tips:         parsed.Tips,
			Checklist:    parsed.Checklist,
		},
		Steps: steps,
	}
}

func convertStep(gs guide.Step, index int) Step {
	quiz := make([]Quiz, len(gs.Quiz))
	for i, q := range gs.Quiz {
		quiz[i] = Quiz{
			Question: q,
			ID:       fmt.Sprintf("%s-quiz-%d", gs.Title, i+1),
		}
	}

	practice := gs.Practice
	if practice == nil {
		practice = []string{}
	}

	stepType := StepContent
	if len(quiz) > 0 {
		stepType = StepOperation
	}

	subtitle := gs.Title
	if gs.Duration != "" {
		subtitle = fmt.Sprintf("%s（%s）", gs.Title, gs.Duration)
	}

	return Step{
		ID:            fmt.Sprintf("step-%d", index+1),
		Title:         gs.Title,
		Subtitle:      subtitle,
		Duration:      gs.Duration,
		Type:          stepType,
		ContentHTML:   renderSummary(gs),
		PracticeTasks: practice,
		Quiz:          quiz,
		KnowledgeCard: knowledgeCard(gs, index),
	}
}

// renderSummary joins summary paragraphs with blank-line separation and
// renders them to an HTML fragment.
func renderSummary(gs guide.Step) string {
	summary := strings.TrimSpace(strings.Join(gs.Summary, "\n\n"))
	if summary == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(summary), &buf); err != nil {
		// Degrade to plain text rather than failing the build.
		return summary
	}
	return buf.String()
}

// knowledgeCard derives a card only for steps with at least one summary
// paragraph; the icon cycles deterministically through the palette.
func knowledgeCard(gs guide.Step, index int) *KnowledgeCard {
	if len(gs.Summary) == 0 {
		return nil
	}
	return &KnowledgeCard{
		Icon:    knowledgeIcons[index%len(knowledgeIcons)],
		Title:   gs.Title,
		Content: gs.Summary[0],
	}
}
