package layout

import "testing"

func TestOverlapping(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		margin int
		want   bool
	}{
		{"separated horizontally", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 200, Y: 0, Width: 100, Height: 100}, 10, false},
		{"touching within margin", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 105, Y: 0, Width: 100, Height: 100}, 10, true},
		{"exactly margin apart", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 110, Y: 0, Width: 100, Height: 100}, 10, false},
		{"contained", Rect{X: 0, Y: 0, Width: 300, Height: 300}, Rect{X: 50, Y: 50, Width: 10, Height: 10}, 10, true},
		{"separated vertically", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 0, Y: 150, Width: 100, Height: 100}, 10, false},
	}
	for _, tt := range tests {
		if got := Overlapping(tt.a, tt.b, tt.margin); got != tt.want {
			t.Errorf("%s: Overlapping = %v, want %v", tt.name, got, tt.want)
		}
		// The predicate is symmetric.
		if got := Overlapping(tt.b, tt.a, tt.margin); got != tt.want {
			t.Errorf("%s (swapped): Overlapping = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAutoLayout_PlacesUnpositioned(t *testing.T) {
	components := []Component{
		{ID: "a", Type: "text"},
		{ID: "b", Type: "quiz"},
		{ID: "c", Type: "video"},
		{ID: "d", Type: "image"},
	}

	laid := AutoLayout(components, 1200, 2000, 20)
	if len(laid) != 4 {
		t.Fatalf("laid = %d components", len(laid))
	}
	for _, c := range laid {
		if c.Position == nil {
			t.Fatalf("component %s has no position", c.ID)
		}
		if c.Position.Width <= 0 || c.Position.Height <= 0 {
			t.Errorf("component %s has empty size: %+v", c.ID, c.Position)
		}
	}
	if HasOverlap(laid, 20) {
		t.Error("layout left overlapping components")
	}

	// Input must not be mutated.
	for _, c := range components {
		if c.Position != nil {
			t.Errorf("input component %s mutated", c.ID)
		}
	}
}

func TestAutoLayout_RowWrap(t *testing.T) {
	// Two half-width components fit one row; the third wraps.
	components := []Component{
		{ID: "a", Type: "video"},
		{ID: "b", Type: "image"},
		{ID: "c", Type: "video"},
	}

	laid := AutoLayout(components, 1300, 3000, 20)
	if laid[0].Position.Y != laid[1].Position.Y {
		t.Errorf("first two should share a row: %+v %+v", laid[0].Position, laid[1].Position)
	}
	if laid[2].Position.Y <= laid[0].Position.Y {
		t.Errorf("third should wrap below: %+v", laid[2].Position)
	}
	if laid[2].Position.X != 20 {
		t.Errorf("wrapped row should restart at margin: %+v", laid[2].Position)
	}
}

func TestAutoLayout_KeepsExistingPositions(t *testing.T) {
	components := []Component{
		{ID: "fixed", Type: "text", Position: &Rect{X: 40, Y: 600, Width: 300, Height: 100}},
		{ID: "origin", Type: "text", Position: &Rect{X: 0, Y: 0, Width: 300, Height: 100}},
	}

	laid := AutoLayout(components, 1200, 1080, 20)
	if laid[0].Position.X != 40 || laid[0].Position.Y != 600 {
		t.Errorf("pre-positioned component moved: %+v", laid[0].Position)
	}
	// A position at the exact origin counts as unplaced and is assigned.
	if laid[1].Position.X == 0 && laid[1].Position.Y == 0 {
		t.Errorf("origin component not re-placed: %+v", laid[1].Position)
	}
}

func TestAutoLayout_UnknownTypeFallback(t *testing.T) {
	laid := AutoLayout([]Component{{ID: "x", Type: "hologram"}}, 1200, 1080, 20)
	pos := laid[0].Position
	if pos.Width != 600 || pos.Height != 200 {
		t.Errorf("fallback size = %+v, want 600x200", pos)
	}
}

func TestAutoLayout_ClampsToCanvasWidth(t *testing.T) {
	laid := AutoLayout([]Component{{ID: "wide", Type: "code"}}, 800, 1080, 20)
	if laid[0].Position.Width != 760 {
		t.Errorf("width = %d, want clamped 760", laid[0].Position.Width)
	}
}

func TestAutoLayout_BottomClamp(t *testing.T) {
	// A canvas too short for two stacked components: the second is
	// clamped near the bottom rather than escaping the canvas.
	components := []Component{
		{ID: "a", Type: "code"},
		{ID: "b", Type: "code"},
	}
	laid := AutoLayout(components, 1200, 400, 20)
	for _, c := range laid {
		if c.Position.Y+c.Position.Height > 400+c.Position.Height {
			t.Errorf("component %s escaped the canvas: %+v", c.ID, c.Position)
		}
		if c.Position.Y < 20 {
			t.Errorf("component %s above top margin: %+v", c.ID, c.Position)
		}
	}
}

func TestAutoLayout_ResolvesSeededOverlap(t *testing.T) {
	components := []Component{
		{ID: "a", Type: "text", Position: &Rect{X: 20, Y: 20, Width: 400, Height: 100}},
		{ID: "b", Type: "text", Position: &Rect{X: 30, Y: 40, Width: 400, Height: 100}},
	}
	laid := AutoLayout(components, 1200, 2000, 10)
	if HasOverlap(laid, 10) {
		t.Errorf("overlap not resolved: %+v %+v", laid[0].Position, laid[1].Position)
	}
	if laid[1].Position.Y != 20+100+10 {
		t.Errorf("second component y = %d, want pushed below first", laid[1].Position.Y)
	}
}

func TestHasOverlap_IgnoresUnpositioned(t *testing.T) {
	components := []Component{
		{ID: "a", Type: "text"},
		{ID: "b", Type: "text", Position: &Rect{X: 0, Y: 0, Width: 100, Height: 100}},
	}
	if HasOverlap(components, 10) {
		t.Error("unpositioned components cannot overlap")
	}
}

func TestAssignDefaultSize(t *testing.T) {
	c := Component{ID: "q", Type: "quiz"}
	AssignDefaultSize(&c, 1200)
	if c.Position == nil || c.Position.Width != 1160 || c.Position.Height != 250 {
		t.Errorf("position = %+v", c.Position)
	}

	unknown := Component{ID: "u", Type: "hologram"}
	AssignDefaultSize(&unknown, 1200)
	if unknown.Position == nil || unknown.Position.Width != 600 || unknown.Position.Height != 200 {
		t.Errorf("unknown type position = %+v", unknown.Position)
	}
}
