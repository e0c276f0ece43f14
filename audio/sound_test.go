package audio

import (
	"testing"
	"time"
)

func countSamples(t *testing.T, c Cue) int {
	t.Helper()
	s, err := cueStreamer(sampleRate, c)
	if err != nil {
		t.Fatalf("cueStreamer(%d): %v", c, err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueEat, 60 * time.Millisecond},
		{CueGameOver, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		if got, want := countSamples(t, tt.cue), sampleRate.N(tt.want); got != want {
			t.Errorf("Cue %d: expected %d samples, got %d", tt.cue, want, got)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := cueStreamer(sampleRate, Cue(99)); err == nil {
		t.Error("Expected error for unknown cue")
	}
}

func TestOpenMuted(t *testing.T) {
	p := Open(true)
	if _, ok := p.(Silent); !ok {
		t.Errorf("Expected Silent player when muted, got %T", p)
	}
	p.Play(CueEat)
	p.Close()
}
