package guide

import (
	"regexp"
	"strings"
)

var (
	stepHeadingRE   = regexp.MustCompile(`^###\s+(.+)`)
	stepDurationRE  = regexp.MustCompile(`（(.+?)）`)
	paragraphGapRE  = regexp.MustCompile(`\n{2,}`)
	whitespaceRunRE = regexp.MustCompile(`\s+`)
)

// stepMode is the accumulation mode of the step body parser.
type stepMode int

const (
	modeSummary stepMode = iota
	modePractice
	modeQuiz
)

// Sub-heading keywords that switch the accumulation mode.
const (
	subQuiz      = "课堂问答"
	subPractice  = "立即动手"
	subPractice2 = "练习"
)

// parseSteps locates the operation-steps section, splits it into per-step
// blocks at `###` heading boundaries and parses each block.
func parseSteps(p *Parsed) []Step {
	text, ok := p.findSection(keySteps)
	if !ok {
		return []Step{}
	}

	steps := []Step{}
	for _, block := range splitStepBlocks(text) {
		steps = append(steps, parseStepBlock(block))
	}
	return steps
}

// splitStepBlocks splits the section body so that every `###` heading
// starts a new block. Content before the first heading forms its own
// block; blocks are trimmed and empty ones dropped.
func splitStepBlocks(text string) []string {
	var blocks []string
	var current []string

	commit := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if stepHeadingRE.MatchString(line) && len(current) > 0 {
			commit()
		}
		current = append(current, line)
	}
	commit()
	return blocks
}

// stepParser is the per-block accumulation state machine. `####`
// sub-headings switch modes; a mode switch flushes the pending buffer so
// content is never silently dropped. Content before the first
// sub-heading defaults to summary mode.
type stepParser struct {
	step   Step
	mode   stepMode
	buffer []string
}

func parseStepBlock(block string) Step {
	lines := strings.Split(block, "\n")
	titleLine := lines[0]

	sp := &stepParser{mode: modeSummary}
	sp.step.Summary = []string{}
	sp.step.Raw = block

	if m := stepHeadingRE.FindStringSubmatch(titleLine); m != nil {
		sp.step.Title = strings.TrimSpace(m[1])
	} else {
		sp.step.Title = titleLine
	}
	// The parenthetical duration stays in the title; both fields coexist.
	if m := stepDurationRE.FindStringSubmatch(sp.step.Title); m != nil {
		sp.step.Duration = m[1]
	}

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "####") {
			sp.flush()
			sp.mode = modeFor(line)
			continue
		}
		sp.buffer = append(sp.buffer, raw)
	}
	sp.flush()

	return sp.step
}

func modeFor(heading string) stepMode {
	switch {
	case strings.Contains(heading, subQuiz):
		return modeQuiz
	case strings.Contains(heading, subPractice), strings.Contains(heading, subPractice2):
		return modePractice
	default:
		return modeSummary
	}
}

// flush commits the pending buffer to the structure selected by the
// current mode.
func (sp *stepParser) flush() {
	if len(sp.buffer) == 0 {
		return
	}
	content := strings.TrimSpace(strings.Join(sp.buffer, "\n"))
	sp.buffer = sp.buffer[:0]
	if content == "" {
		return
	}

	switch sp.mode {
	case modeSummary:
		sp.step.Summary = append(sp.step.Summary, splitParagraphs(content)...)
	case modePractice:
		sp.step.Practice = append(sp.step.Practice, extractListItems(content)...)
	case modeQuiz:
		sp.step.Quiz = append(sp.step.Quiz, parseQuiz(content)...)
	}
}

// splitParagraphs breaks text on blank-line runs and normalizes inner
// whitespace to single spaces.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, para := range paragraphGapRE.Split(text, -1) {
		para = strings.TrimSpace(whitespaceRunRE.ReplaceAllString(para, " "))
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}
