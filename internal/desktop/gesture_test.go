package desktop

import "testing"

func TestDraggableClickVersusDrag(t *testing.T) {
	tests := []struct {
		name        string
		release     Point
		wantClicked bool
		wantPos     Point
	}{
		{name: "tiny move is a click", release: Point{X: 102, Y: 101}, wantClicked: true, wantPos: Point{X: 90, Y: 50}},
		{name: "no move is a click", release: Point{X: 100, Y: 100}, wantClicked: true, wantPos: Point{X: 90, Y: 50}},
		{name: "threshold minus one", release: Point{X: 104, Y: 100}, wantClicked: true, wantPos: Point{X: 90, Y: 50}},
		{name: "threshold exactly drags", release: Point{X: 103, Y: 102}, wantPos: Point{X: 93, Y: 52}},
		{name: "long move drags", release: Point{X: 140, Y: 100}, wantPos: Point{X: 130, Y: 50}},
		{name: "negative travel counts", release: Point{X: 97, Y: 98}, wantPos: Point{X: 87, Y: 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draggable{Threshold: 5, BarHeight: 1}
			// Handle is drawn at screen (90, 51); pointer grabs it 10 cells in
			// and 49 rows down.
			d.Begin(Point{X: 100, Y: 100}, Point{X: 90, Y: 50})
			got := d.End(tt.release)

			if got.Clicked != tt.wantClicked {
				t.Errorf("Clicked = %v, want %v", got.Clicked, tt.wantClicked)
			}
			if got.Committed == tt.wantClicked {
				t.Errorf("Committed = %v, want %v", got.Committed, !tt.wantClicked)
			}
			if got.Position != tt.wantPos {
				t.Errorf("Position = %+v, want %+v", got.Position, tt.wantPos)
			}
			if d.Placed() == tt.wantClicked {
				t.Errorf("Placed = %v, want %v", d.Placed(), !tt.wantClicked)
			}
		})
	}
}

func TestDraggableMoveSubtractsBar(t *testing.T) {
	d := Draggable{BarHeight: 1}
	d.Begin(Point{X: 12, Y: 6}, Point{X: 10, Y: 5})

	if got := d.Move(Point{X: 20, Y: 10}); got != (Point{X: 18, Y: 9}) {
		t.Errorf("Move = %+v, want {18 9}", got)
	}
	if !d.Active() {
		t.Error("expected gesture to stay active while moving")
	}
}

func TestDraggableCancelRestoresOrigin(t *testing.T) {
	d := Draggable{BarHeight: 1}
	d.Begin(Point{X: 12, Y: 6}, Point{X: 10, Y: 5})
	d.Move(Point{X: 40, Y: 20})

	if got := d.Cancel(); got != (Point{X: 10, Y: 5}) {
		t.Errorf("Cancel = %+v, want origin", got)
	}
	if d.Active() || d.Placed() {
		t.Error("cancelled gesture must not be active or placed")
	}
	if res := d.End(Point{X: 90, Y: 90}); res.Committed {
		t.Error("End after Cancel must not commit")
	}
}

func TestDraggableCommitsOnce(t *testing.T) {
	d := Draggable{BarHeight: 0}
	d.Begin(Point{}, Point{})
	first := d.End(Point{X: 20})
	second := d.End(Point{X: 40})

	if !first.Committed {
		t.Fatal("first End should commit")
	}
	if second.Committed || second.Clicked {
		t.Errorf("second End = %+v, want no-op", second)
	}
	if second.Position != first.Position {
		t.Errorf("second End moved the entity to %+v", second.Position)
	}
}

func TestResizableClampsToMinimum(t *testing.T) {
	limits := Limits{MinWidth: 30, MinHeight: 8}
	tests := []struct {
		name    string
		pointer Point
		want    Size
	}{
		{name: "grow", pointer: Point{X: 70, Y: 30}, want: Size{Width: 70, Height: 26}},
		{name: "shrink within limits", pointer: Point{X: 40, Y: 15}, want: Size{Width: 40, Height: 11}},
		{name: "far past left edge", pointer: Point{X: -500, Y: 20}, want: Size{Width: 30, Height: 16}},
		{name: "far past top edge", pointer: Point{X: 60, Y: -500}, want: Size{Width: 60, Height: 8}},
		{name: "both axes collapsed", pointer: Point{X: -1, Y: -1}, want: Size{Width: 30, Height: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resizable{Limits: limits}
			r.Begin(Point{X: 60, Y: 20}, Size{Width: 60, Height: 16})

			if got := r.Move(tt.pointer); got != tt.want {
				t.Errorf("Move = %+v, want %+v", got, tt.want)
			}
			got, ok := r.End(tt.pointer)
			if !ok || got != tt.want {
				t.Errorf("End = %+v, %v, want %+v, true", got, ok, tt.want)
			}
			if !r.Resized() {
				t.Error("expected Resized after End")
			}
		})
	}
}

func TestResizableCancel(t *testing.T) {
	r := Resizable{Limits: Limits{MinWidth: 1, MinHeight: 1}}
	r.Begin(Point{}, Size{Width: 10, Height: 10})
	r.Move(Point{X: 5, Y: 5})

	if got := r.Cancel(); got != (Size{Width: 10, Height: 10}) {
		t.Errorf("Cancel = %+v, want starting size", got)
	}
	if _, ok := r.End(Point{X: 9, Y: 9}); ok {
		t.Error("End after Cancel must not commit")
	}
	if r.Resized() {
		t.Error("cancelled resize must not mark the entity resized")
	}
}

func TestWindowLifecycle(t *testing.T) {
	w := newWindow("about", "About", Point{X: 10, Y: 2}, Size{Width: 5, Height: 2}, 7,
		Draggable{Threshold: 5, BarHeight: 1}, Resizable{Limits: Limits{MinWidth: 30, MinHeight: 8}})

	if w.Size != (Size{Width: 30, Height: 8}) {
		t.Errorf("new window size = %+v, want clamped {30 8}", w.Size)
	}
	if w.State != Entering {
		t.Fatalf("state = %s, want entering", w.State)
	}
	if w.Settle(6) {
		t.Error("Settle accepted a frame from another generation")
	}
	if !w.Settle(7) || w.State != Visible {
		t.Fatalf("Settle(7) did not make the window visible (state %s)", w.State)
	}

	if !w.StartDrag(Point{X: 12, Y: 3}) {
		t.Fatal("StartDrag refused on a visible window")
	}
	if w.StartResize(Point{X: 39, Y: 10}) {
		t.Error("StartResize accepted while dragging")
	}
	w.Move(Point{X: 22, Y: 8})
	res := w.Release(Point{X: 22, Y: 8})
	if !res.PositionChanged || w.Position != (Point{X: 20, Y: 7}) {
		t.Errorf("Release = %+v at %+v, want committed move to {20 7}", res, w.Position)
	}
	if w.State != Visible {
		t.Errorf("state after release = %s, want visible", w.State)
	}

	w.SetDefaultPosition(Point{})
	if w.Position != (Point{X: 20, Y: 7}) {
		t.Error("placed window accepted a default position")
	}

	w.close()
	if w.State != Closed || w.StartDrag(Point{}) {
		t.Error("closed window must refuse gestures")
	}
}

func TestWindowDefaultsBeforePlacement(t *testing.T) {
	w := newWindow("about", "About", Point{}, Size{Width: 40, Height: 10}, 1,
		Draggable{Threshold: 5}, Resizable{Limits: Limits{MinWidth: 30, MinHeight: 8}})

	w.SetDefaultPosition(Point{X: 3, Y: 4})
	w.SetDefaultSize(Size{Width: 50, Height: 12})
	if w.Position != (Point{X: 3, Y: 4}) || w.Size != (Size{Width: 50, Height: 12}) {
		t.Fatalf("defaults not applied: %+v %+v", w.Position, w.Size)
	}

	w.StartResize(Point{X: 52, Y: 15})
	w.Release(Point{X: 62, Y: 20})
	w.SetDefaultSize(Size{Width: 30, Height: 8})
	if w.Size != (Size{Width: 60, Height: 17}) {
		t.Errorf("resized window accepted a default size: %+v", w.Size)
	}
}
