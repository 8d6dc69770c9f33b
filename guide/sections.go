package guide

import (
	"regexp"
	"strings"
)

// Semantic section parsers. Each one is a pure function over the section
// map and returns an empty structure when its target section is absent.

var (
	goalGroupRE  = regexp.MustCompile(`^\d+\.\s*\*\*(.+?)\*\*`)
	bulletRE     = regexp.MustCompile(`^[-*]\s+`)
	listItemRE   = regexp.MustCompile(`^([-*]|\d+\.)\s+`)
	dashPrefixRE = regexp.MustCompile(`^-+\s*`)
	checkboxRE   = regexp.MustCompile(`(?i)^- \[(x| )\]\s*`)
	faqHeadingRE = regexp.MustCompile(`^###\s*`)
)

// parseGoals extracts titled goal groups. A numbered bold line opens a
// group; bullets before any group land in a synthetic 目标 group.
func parseGoals(p *Parsed) []GoalGroup {
	text, ok := p.findSection(keyGoals)
	if !ok {
		return []GoalGroup{}
	}

	groups := []GoalGroup{}
	var current *GoalGroup

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := goalGroupRE.FindStringSubmatch(line); m != nil {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &GoalGroup{Title: m[1], Items: []string{}}
			continue
		}

		if bulletRE.MatchString(line) {
			if current == nil {
				current = &GoalGroup{Title: "目标", Items: []string{}}
			}
			current.Items = append(current.Items, bulletRE.ReplaceAllString(line, ""))
		}
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

// parseDuration picks the total duration (first bullet containing 总时长)
// and collects the remaining bullets as time allocations, emphasis
// markers stripped.
func parseDuration(p *Parsed) (duration string, allocations []string) {
	allocations = []string{}
	text, ok := p.findSection(keyDuration)
	if !ok {
		return "", allocations
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !strings.HasPrefix(line, "-") {
			continue
		}
		cleaned := dashPrefixRE.ReplaceAllString(line, "")
		cleaned = strings.ReplaceAll(cleaned, "**", "")
		if duration == "" && strings.Contains(cleaned, "总时长") {
			duration = cleaned
		} else {
			allocations = append(allocations, cleaned)
		}
	}
	return duration, allocations
}

func parsePreparations(p *Parsed) []string {
	text, ok := p.findSection(keyPreparations)
	if !ok {
		return []string{}
	}

	items := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !bulletRE.MatchString(line) {
			continue
		}
		item := bulletRE.ReplaceAllString(line, "")
		item = strings.ReplaceAll(item, "[ ]", "")
		items = append(items, strings.TrimSpace(item))
	}
	return items
}

func parseHomework(p *Parsed) []string {
	text, ok := p.findSection(keyHomework)
	if !ok {
		return []string{}
	}
	return extractListItems(text)
}

func parseTips(p *Parsed) []string {
	text, ok := p.findSection(keyTips)
	if !ok {
		return []string{}
	}
	return extractListItems(text)
}

// parseFAQ turns `###` headings into questions and accumulates answer
// lines until the next heading. A `**A:**` marker restarts the answer.
func parseFAQ(p *Parsed) []FAQEntry {
	text, ok := p.findSection(keyFAQ)
	if !ok {
		return []FAQEntry{}
	}

	entries := []FAQEntry{}
	var current *FAQEntry

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "###"):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &FAQEntry{Question: faqHeadingRE.ReplaceAllString(line, "")}
		case strings.HasPrefix(line, "**A:**"):
			if current != nil {
				current.Answer = strings.TrimSpace(strings.TrimPrefix(line, "**A:**"))
			}
		case current != nil:
			if current.Answer != "" {
				current.Answer += "\n"
			}
			current.Answer += line
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// parseChecklist extracts checkbox bullet lines. The checked state is
// discarded either way; only the item text survives.
func parseChecklist(p *Parsed) []string {
	text, ok := p.findSection(keyChecklist)
	if !ok {
		return []string{}
	}

	items := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "- [") {
			continue
		}
		items = append(items, strings.TrimSpace(checkboxRE.ReplaceAllString(line, "")))
	}
	return items
}

// extractListItems reduces text to its bullet or numbered list items,
// markers stripped, order preserved.
func extractListItems(text string) []string {
	items := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !listItemRE.MatchString(line) {
			continue
		}
		items = append(items, strings.TrimSpace(listItemRE.ReplaceAllString(line, "")))
	}
	return items
}
