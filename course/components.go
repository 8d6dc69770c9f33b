package course

import (
	"fmt"

	"github.com/solhart/guideplay/layout"
)

// StepComponents synthesizes free-form canvas components for one step,
// ready to be fed through the layout engine: one text region for the
// rendered summary, one per practice task list, one quiz region per
// question. Positions are left unset so the engine places them.
func StepComponents(s Step) []layout.Component {
	var components []layout.Component

	if s.ContentHTML != "" {
		components = append(components, layout.Component{
			ID:     s.ID + "-content",
			Type:   "text",
			Config: map[string]any{"html": s.ContentHTML},
		})
	}

	if len(s.PracticeTasks) > 0 {
		components = append(components, layout.Component{
			ID:     s.ID + "-practice",
			Type:   "text",
			Config: map[string]any{"tasks": s.PracticeTasks},
		})
	}

	for i, q := range s.Quiz {
		components = append(components, layout.Component{
			ID:   fmt.Sprintf("%s-quiz-%d", s.ID, i+1),
			Type: "quiz",
			Config: map[string]any{
				"question": q.Question.Question,
				"options":  q.Options,
			},
		})
	}

	return components
}
