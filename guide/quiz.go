package guide

import (
	"regexp"
	"strings"
)

// Quiz line patterns. The extractor is tolerant, not validating: an
// option, answer or explanation line with no open question is ignored.
var (
	quizQuestionRE    = regexp.MustCompile(`^\*\*问题\d+：\s*\*\*(.+)$`)
	quizOptionRE      = regexp.MustCompile(`^[A-D]\.\s*(.+)$`)
	quizAnswerRE      = regexp.MustCompile(`^\*\*正确答案[:：]\s*([A-D])\*\*`)
	quizExplanationRE = regexp.MustCompile(`^\*\*解析[:：]\s*(.+)$`)
)

// parseQuiz processes quiz-mode text line by line. A question marker
// opens a new record; options append in encounter order (A through D);
// the trailing open question is flushed at end of input.
func parseQuiz(text string) []Question {
	questions := []Question{}
	var current *Question

	commit := func() {
		if current != nil {
			questions = append(questions, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := quizQuestionRE.FindStringSubmatch(line); m != nil {
			commit()
			current = &Question{Question: strings.TrimSpace(m[1]), Options: []string{}}
			continue
		}
		if current == nil {
			continue
		}

		if m := quizOptionRE.FindStringSubmatch(line); m != nil {
			current.Options = append(current.Options, strings.TrimSpace(m[1]))
			continue
		}
		if m := quizAnswerRE.FindStringSubmatch(line); m != nil {
			current.Answer = m[1]
			continue
		}
		if m := quizExplanationRE.FindStringSubmatch(line); m != nil {
			current.Explanation = strings.TrimSpace(m[1])
		}
	}
	commit()

	return questions
}
