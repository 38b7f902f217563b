// internal/window/window_test.go
package window

import (
	"bytes"
	"errors"
	"testing"
)

func collect(t *testing.T, seq []byte, width, overlap int) []Window {
	t.Helper()
	var wins []Window
	if err := ForEach(seq, width, overlap, func(w Window) error {
		wins = append(wins, w)
		return nil
	}); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	return wins
}

func TestForEachOffsets(t *testing.T) {
	seq := bytes.Repeat([]byte("A"), 25)
	wins := collect(t, seq, 10, 3)

	wantStarts := []int{0, 7, 14, 21}
	wantLens := []int{10, 10, 10, 4}
	if len(wins) != len(wantStarts) {
		t.Fatalf("got %d windows, want %d", len(wins), len(wantStarts))
	}
	for i, w := range wins {
		if w.Start != wantStarts[i] || len(w.Seq) != wantLens[i] {
			t.Errorf("window %d: start=%d len=%d, want start=%d len=%d",
				i, w.Start, len(w.Seq), wantStarts[i], wantLens[i])
		}
		if w.End != w.Start+len(w.Seq) {
			t.Errorf("window %d: End=%d inconsistent with Start+len=%d", i, w.End, w.Start+len(w.Seq))
		}
	}
}

func TestForEachShortSequence(t *testing.T) {
	// Shorter than one window: a single clipped window.
	wins := collect(t, []byte("ACGTACG"), 10, 3)
	if len(wins) != 1 || wins[0].Start != 0 || len(wins[0].Seq) != 7 {
		t.Fatalf("unexpected windows %+v", wins)
	}
}

func TestForEachEmptySequence(t *testing.T) {
	if wins := collect(t, nil, 10, 3); len(wins) != 0 {
		t.Fatalf("empty sequence produced %d windows", len(wins))
	}
}

func TestForEachTailBoundary(t *testing.T) {
	// len == start of would-be third window: nothing may be emitted at
	// offset 14 and the tail must not be double-emitted.
	seq := bytes.Repeat([]byte("C"), 14)
	wins := collect(t, seq, 10, 3)
	if len(wins) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(wins), wins)
	}
	if wins[0].Start != 0 || wins[1].Start != 7 || wins[1].End != 14 {
		t.Fatalf("unexpected boundaries %+v", wins)
	}
}

func TestForEachFullCoverage(t *testing.T) {
	seq := bytes.Repeat([]byte("G"), 25)
	covered := make([]bool, len(seq))
	for _, w := range collect(t, seq, 10, 3) {
		for i := w.Start; i < w.End; i++ {
			covered[i] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("base %d not covered by any window", i)
		}
	}
}

func TestForEachEmitError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := ForEach(bytes.Repeat([]byte("A"), 25), 10, 3, func(Window) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("err=%v calls=%d, want boom after 1 call", err, calls)
	}
}

func TestNPercent(t *testing.T) {
	cases := []struct {
		seq  string
		want float64
	}{
		{"NNAA", 50},
		{"nnnn", 100},
		{"ACGT", 0},
		{"NnAc", 50},
		{"", 0},
	}
	for _, c := range cases {
		if got := NPercent([]byte(c.seq)); got != c.want {
			t.Errorf("NPercent(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}
