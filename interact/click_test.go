package interact

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 20, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"Top-left corner", 10, 5, true},
		{"Bottom-right inside", 29, 7, true},
		{"Middle", 20, 6, true},
		{"Left of rect", 9, 5, false},
		{"Right edge exclusive", 30, 5, false},
		{"Above", 10, 4, false},
		{"Below edge exclusive", 10, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectZeroSize(t *testing.T) {
	r := NewRect(5, 5, 0, 0)
	if r.Contains(5, 5) {
		t.Error("Zero-size rect must contain nothing")
	}
	if !r.Empty() {
		t.Error("Expected Empty")
	}
}

func TestRegistryDisjointRegions(t *testing.T) {
	reg := NewClickRegionRegistry[string]()
	reg.Register(NewRect(0, 0, 5, 1), "a")
	reg.Register(NewRect(10, 0, 5, 1), "b")

	if got, ok := reg.HandleClick(2, 0); !ok || got != "a" {
		t.Errorf("HandleClick(2,0) = %q,%v, want \"a\"", got, ok)
	}
	if got, ok := reg.HandleClick(12, 0); !ok || got != "b" {
		t.Errorf("HandleClick(12,0) = %q,%v, want \"b\"", got, ok)
	}
	if _, ok := reg.HandleClick(7, 0); ok {
		t.Error("Click in the gap should not match")
	}
}

func TestRegistryLastMatchWins(t *testing.T) {
	// A popup painted over a base widget registers later and must
	// intercept clicks on the covered cells.
	reg := NewClickRegionRegistry[string]()
	reg.Register(NewRect(0, 0, 10, 1), "base")
	reg.Register(NewRect(0, 0, 10, 1), "popup")

	if got, _ := reg.HandleClick(5, 0); got != "popup" {
		t.Errorf("Overlap click = %q, want \"popup\"", got)
	}
}

func TestRegistryPartialOverlap(t *testing.T) {
	reg := NewClickRegionRegistry[string]()
	reg.Register(NewRect(0, 0, 20, 2), "back")
	reg.Register(NewRect(5, 0, 10, 1), "front")

	if got, _ := reg.HandleClick(7, 0); got != "front" {
		t.Errorf("Covered cell = %q, want \"front\"", got)
	}
	if got, _ := reg.HandleClick(2, 1); got != "back" {
		t.Errorf("Uncovered cell = %q, want \"back\"", got)
	}
}

func TestRegistryClear(t *testing.T) {
	reg := NewClickRegionRegistry[int]()
	reg.Register(NewRect(0, 0, 10, 1), 1)
	if _, ok := reg.HandleClick(5, 0); !ok {
		t.Fatal("Expected a match before Clear")
	}

	reg.Clear()
	if _, ok := reg.HandleClick(5, 0); ok {
		t.Error("Click matched a stale region after Clear")
	}
	if !reg.IsEmpty() || reg.Len() != 0 {
		t.Error("Registry not empty after Clear")
	}
}

func TestRegistryNoMatchIsNotAnError(t *testing.T) {
	reg := NewClickRegionRegistry[string]()
	if action, ok := reg.HandleClick(100, 100); ok || action != "" {
		t.Errorf("Empty registry returned %q,%v", action, ok)
	}
}

func TestRegistryPaintOrderPreserved(t *testing.T) {
	reg := NewClickRegionRegistry[int]()
	for i := 0; i < 4; i++ {
		reg.Register(NewRect(i, 0, 1, 1), i)
	}
	regions := reg.Regions()
	if len(regions) != 4 {
		t.Fatalf("Expected 4 regions, got %d", len(regions))
	}
	for i, r := range regions {
		if r.Action != i {
			t.Errorf("Region %d holds action %d", i, r.Action)
		}
	}
}
