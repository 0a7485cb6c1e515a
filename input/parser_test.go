package input

import "testing"

// TestParseChunkDirections verifies each arrow form decodes to its unit delta
func TestParseChunkDirections(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
		want  Signal
	}{
		{name: "CSI up", chunk: []byte("\x1b[A"), want: Up},
		{name: "CSI down", chunk: []byte("\x1b[B"), want: Down},
		{name: "CSI right", chunk: []byte("\x1b[C"), want: Right},
		{name: "CSI left", chunk: []byte("\x1b[D"), want: Left},
		{name: "SS3 up", chunk: []byte("\x1bOA"), want: Up},
		{name: "SS3 left", chunk: []byte("\x1bOD"), want: Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChunk(tt.chunk)
			if got != tt.want {
				t.Errorf("parseChunk(%q): expected %+v, got %+v", tt.chunk, tt.want, got)
			}
		})
	}
}

// TestParseChunkLastDirectionWins verifies a key-repeat backlog reduces to
// the most recent direction only
func TestParseChunkLastDirectionWins(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
		want  Signal
	}{
		{
			name:  "repeat backlog",
			chunk: []byte("\x1b[C\x1b[C\x1b[C\x1b[C"),
			want:  Right,
		},
		{
			name:  "direction change mid-chunk",
			chunk: []byte("\x1b[C\x1b[C\x1b[A"),
			want:  Up,
		},
		{
			name:  "mixed forms",
			chunk: []byte("\x1bOA\x1b[B"),
			want:  Down,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChunk(tt.chunk)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestParseChunkQuitPriority verifies quit wins over any direction in the
// same drained chunk, wherever it sits
func TestParseChunkQuitPriority(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
	}{
		{name: "quit after direction", chunk: []byte("\x1b[Cq")},
		{name: "quit before direction", chunk: []byte("q\x1b[C")},
		{name: "uppercase quit", chunk: []byte("\x1b[A\x1b[BQ")},
		{name: "ctrl-c", chunk: []byte("\x1b[C\x03\x1b[C")},
		{name: "quit alone", chunk: []byte("q")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseChunk(tt.chunk); got != Quit {
				t.Errorf("Expected Quit, got %+v", got)
			}
		})
	}
}

// TestParseChunkPartialAndNoise verifies split sequences at the chunk
// boundary and unrecognized bytes are ignored for the tick
func TestParseChunkPartialAndNoise(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
		want  Signal
	}{
		{name: "bare escape", chunk: []byte{0x1b}, want: None},
		{name: "split CSI", chunk: []byte("\x1b["), want: None},
		{name: "direction then split tail", chunk: []byte("\x1b[C\x1b["), want: Right},
		{name: "unknown CSI letter", chunk: []byte("\x1b[Z"), want: None},
		{name: "plain letters", chunk: []byte("wasd"), want: None},
		{name: "empty", chunk: nil, want: None},
		{name: "noise around direction", chunk: []byte("x\x1b[Dzz"), want: Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChunk(tt.chunk)
			if got != tt.want {
				t.Errorf("parseChunk(%q): expected %+v, got %+v", tt.chunk, tt.want, got)
			}
		})
	}
}
