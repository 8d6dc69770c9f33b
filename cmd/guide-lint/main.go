// guide-lint is the authoring-side checker: it parses teaching guides,
// reports their structure and flags convention violations before a guide
// ships to learners.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/solhart/guideplay/course"
	"github.com/solhart/guideplay/guide"
	"github.com/solhart/guideplay/layout"
)

func main() {
	log.SetFlags(0)

	canvasWidth := flag.Int("canvas-width", 1200, "layout canvas width in pixels")
	canvasHeight := flag.Int("canvas-height", 1080, "layout canvas height in pixels")
	margin := flag.Int("margin", 20, "layout margin in pixels")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: guide-lint [flags] <guide.md> [guide.md ...]")
		os.Exit(2)
	}

	problems := 0
	for _, path := range flag.Args() {
		problems += lintFile(path, *canvasWidth, *canvasHeight, *margin)
	}
	if problems > 0 {
		log.Printf("%d problem(s) found", problems)
		os.Exit(1)
	}
}

func lintFile(path string, canvasWidth, canvasHeight, margin int) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return 1
	}

	parsed, err := guide.Parse(string(raw))
	if err != nil {
		log.Printf("%s: %v", path, err)
		return 1
	}

	log.Printf("%s: %q", path, parsed.Title)
	log.Printf("  sections=%d goals=%d steps=%d homework=%d faq=%d tips=%d checklist=%d",
		len(parsed.Sections), len(parsed.Goals), len(parsed.Steps),
		len(parsed.Homework), len(parsed.FAQ), len(parsed.Tips), len(parsed.Checklist))

	problems := 0
	warn := func(format string, args ...any) {
		problems++
		log.Printf("  warning: "+format, args...)
	}

	if len(parsed.Steps) == 0 {
		warn("no operation steps found")
	}
	for i, step := range parsed.Steps {
		if len(step.Summary) == 0 {
			warn("step %d (%s): no summary prose", i+1, step.Title)
		}
		if step.Duration == "" {
			warn("step %d (%s): no duration in title", i+1, step.Title)
		}
		for j, q := range step.Quiz {
			if len(q.Options) == 0 {
				warn("step %d question %d: no options", i+1, j+1)
			}
			if q.Answer == "" {
				warn("step %d question %d: no stated answer", i+1, j+1)
			}
		}
	}

	// Layout dry run: synthesize each step's components and verify the
	// bounded resolution pass clears every overlap.
	c := course.FromParsed(parsed)
	for _, step := range c.Steps {
		components := course.StepComponents(step)
		laid := layout.AutoLayout(components, canvasWidth, canvasHeight, margin)
		if layout.HasOverlap(laid, margin) {
			warn("step %s: residual component overlap after layout", step.ID)
		}
	}

	return problems
}
