package guide

import (
	"regexp"
	"strings"
)

var sectionHeadingRE = regexp.MustCompile(`^##\s+(.+)`)

// Parse converts a raw teaching-guide document into a Parsed model.
// The only failure mode is an empty or whitespace-only document; every
// other malformation degrades to empty structures.
func Parse(md string) (*Parsed, error) {
	if strings.TrimSpace(md) == "" {
		return nil, ErrEmptyGuide
	}

	p := splitSections(md)

	p.Goals = parseGoals(p)
	p.Duration, p.TimeAllocations = parseDuration(p)
	p.Preparations = parsePreparations(p)
	p.Steps = parseSteps(p)
	p.Homework = parseHomework(p)
	p.FAQ = parseFAQ(p)
	p.Tips = parseTips(p)
	p.Checklist = parseChecklist(p)

	return p, nil
}

// splitSections performs the first pass: document title plus a mapping of
// `##` heading keys to their buffered bodies. Recognition is purely
// line-pattern driven; duplicate heading keys overwrite the earlier body
// (last write wins) while keeping the original lookup position.
func splitSections(md string) *Parsed {
	p := &Parsed{
		Sections:        make(map[string]string),
		Goals:           []GoalGroup{},
		TimeAllocations: []string{},
		Preparations:    []string{},
		Steps:           []Step{},
		Homework:        []string{},
		FAQ:             []FAQEntry{},
		Tips:            []string{},
		Checklist:       []string{},
	}

	var current string
	var buffer []string

	flush := func() {
		if current != "" {
			if _, seen := p.Sections[current]; !seen {
				p.sectionOrder = append(p.sectionOrder, current)
			}
			p.Sections[current] = strings.TrimSpace(strings.Join(buffer, "\n"))
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "# ") && p.Title == "" {
			p.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		if m := sectionHeadingRE.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.TrimSpace(m[1])
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	if p.Title == "" {
		p.Title = untitledGuide
	}
	return p
}

func containsKeyword(key, keyword string) bool {
	return strings.Contains(key, keyword)
}
