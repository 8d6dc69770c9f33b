// Package layout assigns non-overlapping canvas positions to free-form
// step components. Placement is two-phase: left-to-right row filling for
// unpositioned components, then a bounded overlap-resolution sweep. The
// sweep is an approximation: adversarial size/count combinations may
// terminate with residual overlap.
package layout

// Rect is a component's pixel-unit region on the canvas.
type Rect struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Width    int `json:"width"`
	Height   int `json:"height"`
	Rotation int `json:"rotation,omitempty"`
}

// Size is a default width/height pair for a component type.
type Size struct {
	Width  int
	Height int
}

// Component is one free-form region on the canvas. Position is nil until
// the layout engine assigns one.
type Component struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Config   map[string]any `json:"config,omitempty"`
	Position *Rect          `json:"position,omitempty"`
	Style    map[string]any `json:"style,omitempty"`
}

// DefaultSizes maps component types to their default dimensions,
// assuming a 1200px canvas. Unknown types fall back to defaultSize.
var DefaultSizes = map[string]Size{
	"text":     {Width: 1200, Height: 80},
	"code":     {Width: 1200, Height: 300},
	"quiz":     {Width: 1200, Height: 250},
	"video":    {Width: 600, Height: 400},
	"image":    {Width: 600, Height: 400},
	"drawing":  {Width: 800, Height: 500},
	"dragdrop": {Width: 1200, Height: 300},
}

var defaultSize = Size{Width: 600, Height: 200}

// Overlapping reports whether two rectangles collide, treating anything
// closer than margin on both axes as a collision.
func Overlapping(a, b Rect, margin int) bool {
	return !(a.X+a.Width+margin <= b.X ||
		b.X+b.Width+margin <= a.X ||
		a.Y+a.Height+margin <= b.Y ||
		b.Y+b.Height+margin <= a.Y)
}

// maxResolvePasses bounds the overlap-resolution sweep.
const maxResolvePasses = 10

// AutoLayout returns a copy of components with every unpositioned
// component (no position, or position exactly at the origin) placed on
// the canvas. Pre-positioned components are left where they are; the
// resolution sweep may still push them down to clear an overlap.
func AutoLayout(components []Component, canvasWidth, canvasHeight, margin int) []Component {
	if len(components) == 0 {
		return components
	}

	laid := cloneComponents(components)

	// Phase 1: row-filling placement for unpositioned components.
	x := margin
	y := margin

	for i := range laid {
		c := &laid[i]
		if c.Position != nil && (c.Position.X != 0 || c.Position.Y != 0) {
			continue
		}

		size, ok := DefaultSizes[c.Type]
		if !ok {
			size = defaultSize
		}
		width := min(size.Width, canvasWidth-2*margin)
		height := size.Height

		if x+width+margin > canvasWidth {
			x = margin
			y += height + margin
		}
		if y+height > canvasHeight {
			y = max(margin, canvasHeight-height-margin)
		}

		c.Position = &Rect{X: x, Y: y, Width: width, Height: height}
		x += width + margin
	}

	// Phase 2: pairwise overlap resolution, pushing the second component
	// straight below the first. Bounded, so it can leave residual overlap.
	for pass := 0; pass < maxResolvePasses; pass++ {
		moved := false
		for i := 0; i < len(laid); i++ {
			for j := i + 1; j < len(laid); j++ {
				a, b := laid[i].Position, laid[j].Position
				if a == nil || b == nil || !Overlapping(*a, *b, margin) {
					continue
				}
				moved = true
				b.Y = a.Y + a.Height + margin
				if b.Y+b.Height > canvasHeight {
					b.Y = max(margin, canvasHeight-b.Height-margin)
				}
			}
		}
		if !moved {
			break
		}
	}

	return laid
}

// HasOverlap reports whether any positioned pair in components collides.
// It is the same predicate AutoLayout resolves against, exposed for
// external validation.
func HasOverlap(components []Component, margin int) bool {
	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i].Position, components[j].Position
			if a != nil && b != nil && Overlapping(*a, *b, margin) {
				return true
			}
		}
	}
	return false
}

// AssignDefaultSize gives a component its type's default dimensions,
// clamped to the canvas width, creating an origin position if needed.
func AssignDefaultSize(c *Component, canvasWidth int) {
	if c.Position == nil {
		c.Position = &Rect{Width: defaultSize.Width, Height: defaultSize.Height}
	}
	if size, ok := DefaultSizes[c.Type]; ok {
		c.Position.Width = min(size.Width, canvasWidth-40)
		c.Position.Height = size.Height
	}
}

func cloneComponents(components []Component) []Component {
	out := make([]Component, len(components))
	copy(out, components)
	for i := range out {
		if out[i].Position != nil {
			pos := *out[i].Position
			out[i].Position = &pos
		}
	}
	return out
}
