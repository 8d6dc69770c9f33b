package tui

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	htmlBreakRE = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRE   = regexp.MustCompile(`<[^>]+>`)
)

func (p *Player) draw() {
	s := p.screen
	s.Clear()
	width, height := s.Size()

	step := p.course.Steps[p.stepIndex]
	row := 0

	// Header: course title, progress, score.
	header := fmt.Sprintf(" %s  [%d/%d]", p.course.Meta.Title, p.stepIndex+1, len(p.course.Steps))
	p.drawLine(0, row, width, header, tcell.StyleDefault.Bold(true).Reverse(true))
	row++
	status := fmt.Sprintf(" 得分 %d  经验 %d  金币 %d", p.score, p.exp, p.coins)
	if c := p.combo.Count(); c > 1 {
		status += fmt.Sprintf("  %d连击", c)
	}
	p.drawLine(0, row, width, status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	row += 2

	// Step title.
	p.drawLine(1, row, width-2, step.Subtitle, tcell.StyleDefault.Bold(true))
	row += 2

	// Summary prose.
	for _, line := range wrapText(htmlToText(step.ContentHTML), width-4) {
		if row >= height-6 {
			break
		}
		p.drawLine(2, row, width-4, line, tcell.StyleDefault)
		row++
	}
	row++

	// Practice tasks.
	if len(step.PracticeTasks) > 0 && row < height-6 {
		p.drawLine(1, row, width-2, "动手练习：", tcell.StyleDefault.Foreground(tcell.ColorAqua))
		row++
		for i, task := range step.PracticeTasks {
			if row >= height-6 {
				break
			}
			p.drawLine(3, row, width-6, fmt.Sprintf("%d. %s", i+1, task), tcell.StyleDefault)
			row++
		}
		row++
	}

	// Active quiz question.
	if q, ok := p.currentQuestion(); ok && row < height-4 {
		p.drawLine(1, row, width-2, "课堂问答："+q.Question.Question, tcell.StyleDefault.Foreground(tcell.ColorFuchsia))
		row++
		for i, opt := range q.Options {
			style := tcell.StyleDefault
			marker := "  "
			if i == p.selected {
				style = style.Reverse(true)
				marker = "> "
			}
			p.drawLine(3, row, width-6, fmt.Sprintf("%s%c. %s", marker, 'A'+i, opt), style)
			row++
		}
	} else if step.KnowledgeCard != nil && row < height-4 {
		card := step.KnowledgeCard
		p.drawLine(1, row, width-2, fmt.Sprintf("%s %s：%s", card.Icon, card.Title, card.Content),
			tcell.StyleDefault.Foreground(tcell.ColorOlive))
	}

	// Footer hints.
	hints := " ←/→ 切换步骤  ↑/↓ 选择  Enter 确认  q 退出"
	p.drawLine(0, height-1, width, hints, tcell.StyleDefault.Dim(true))

	p.drawOverlays(width, height)
	s.Show()
}

// drawOverlays paints transient toasts (top right), particles and score
// flashes (center).
func (p *Player) drawOverlays(width, height int) {
	for i, t := range p.toasts {
		y := 1 + i
		if y >= height-2 {
			break
		}
		x := width - runewidth.StringWidth(t.text) - 2
		if x < 0 {
			x = 0
		}
		p.drawLine(x, y, width-x, t.text, t.style)
	}
	for _, pt := range p.particles {
		p.drawLine(width/2-1, height/2, 4, pt.text, pt.style)
	}
	for i, sc := range p.scores {
		p.drawLine(width/2+3, height/2-1-i, 8, sc.text, sc.style)
	}
}

// drawLine writes text at (x, y), truncated to maxWidth columns.
func (p *Player) drawLine(x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if col+w > x+maxWidth {
			break
		}
		p.screen.SetContent(col, y, r, nil, style)
		col += w
	}
}

// htmlToText reduces a rendered HTML fragment to plain terminal text.
func htmlToText(fragment string) string {
	text := htmlBreakRE.ReplaceAllString(fragment, "\n")
	text = strings.ReplaceAll(text, "</p>", "\n")
	text = htmlTagRE.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}

// wrapText wraps text to the given display width, keeping explicit
// newlines.
func wrapText(text string, width int) []string {
	if width < 4 {
		width = 4
	}
	var lines []string
	for _, src := range strings.Split(text, "\n") {
		src = strings.TrimSpace(src)
		if src == "" {
			lines = append(lines, "")
			continue
		}
		var line strings.Builder
		col := 0
		for _, r := range src {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				w = 1
			}
			if col+w > width {
				lines = append(lines, line.String())
				line.Reset()
				col = 0
			}
			line.WriteRune(r)
			col += w
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}
