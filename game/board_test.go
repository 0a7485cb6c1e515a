package game

import (
	"errors"
	"testing"
)

// TestNewBoardMinimumSize verifies sub-minimum interiors are rejected
func TestNewBoardMinimumSize(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{name: "default interior", width: 78, height: 22, wantErr: false},
		{name: "exact minimum", width: 3, height: 3, wantErr: false},
		{name: "width below minimum", width: 2, height: 22, wantErr: true},
		{name: "height below minimum", width: 78, height: 2, wantErr: true},
		{name: "zero", width: 0, height: 0, wantErr: true},
		{name: "negative", width: -5, height: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %dx%d, got board %+v", tt.width, tt.height, b)
				}
				if !errors.Is(err, ErrBoardTooSmall) {
					t.Errorf("Expected ErrBoardTooSmall, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %dx%d: %v", tt.width, tt.height, err)
			}
			if b.Width != tt.width || b.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, b.Width, b.Height)
			}
		})
	}
}

// TestCenterIsClampFixpoint verifies the spawn point is always in bounds
func TestCenterIsClampFixpoint(t *testing.T) {
	sizes := []struct{ w, h int }{
		{78, 22}, {3, 3}, {4, 4}, {126, 94}, {5, 17},
	}

	for _, s := range sizes {
		b, err := NewBoard(s.w, s.h)
		if err != nil {
			t.Fatalf("NewBoard(%d,%d): %v", s.w, s.h, err)
		}

		cx, cy := b.Center()
		if cx != s.w/2 || cy != s.h/2 {
			t.Errorf("Center of %dx%d: expected (%d,%d), got (%d,%d)",
				s.w, s.h, s.w/2, s.h/2, cx, cy)
		}

		gx, gy := b.Clamp(cx, cy)
		if gx != cx || gy != cy {
			t.Errorf("Clamp moved the center of %dx%d: (%d,%d) -> (%d,%d)",
				s.w, s.h, cx, cy, gx, gy)
		}
	}
}

// TestClampSaturatesAndIsIdempotent verifies the bounds policy: saturate at
// the nearest edge, never wrap, and clamping twice changes nothing
func TestClampSaturatesAndIsIdempotent(t *testing.T) {
	b, err := NewBoard(78, 22)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{name: "interior untouched", x: 10, y: 10, wantX: 10, wantY: 10},
		{name: "origin untouched", x: 0, y: 0, wantX: 0, wantY: 0},
		{name: "far corner untouched", x: 77, y: 21, wantX: 77, wantY: 21},
		{name: "left overshoot", x: -1, y: 5, wantX: 0, wantY: 5},
		{name: "right overshoot", x: 78, y: 5, wantX: 77, wantY: 5},
		{name: "top overshoot", x: 5, y: -3, wantX: 5, wantY: 0},
		{name: "bottom overshoot", x: 5, y: 22, wantX: 5, wantY: 21},
		{name: "both overshoot", x: -10, y: 100, wantX: 0, wantY: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := b.Clamp(tt.x, tt.y)
			if gx != tt.wantX || gy != tt.wantY {
				t.Fatalf("Clamp(%d,%d): expected (%d,%d), got (%d,%d)",
					tt.x, tt.y, tt.wantX, tt.wantY, gx, gy)
			}
			if gx < 0 || gx >= b.Width || gy < 0 || gy >= b.Height {
				t.Errorf("Clamp(%d,%d) returned out-of-bounds (%d,%d)", tt.x, tt.y, gx, gy)
			}

			gx2, gy2 := b.Clamp(gx, gy)
			if gx2 != gx || gy2 != gy {
				t.Errorf("Clamp not idempotent: (%d,%d) -> (%d,%d)", gx, gy, gx2, gy2)
			}
		})
	}
}

// TestFrameSize verifies the border adds one cell on each side
func TestFrameSize(t *testing.T) {
	b, err := NewBoard(78, 22)
	if err != nil {
		t.Fatal(err)
	}
	fw, fh := b.FrameSize()
	if fw != 80 || fh != 24 {
		t.Errorf("Expected frame 80x24, got %dx%d", fw, fh)
	}
}
