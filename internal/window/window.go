// internal/window/window.go
package window

// Window is a view of seq[Start:End]. End is clipped to the sequence
// length; the requested width survives only in the output descriptor.
type Window struct {
	Start int
	End   int
	Seq   []byte
}

// ForEach walks overlapping windows across seq. The first window starts
// at offset 0; each next start is the previous unclipped end minus
// overlap, i.e. a step of width-overlap. Windows are produced for every
// start strictly below len(seq); a start at or past the end terminates
// the walk, so a zero-width window is never produced and an empty seq
// yields nothing.
//
// width must exceed overlap; callers validate before iterating.
func ForEach(seq []byte, width, overlap int, emit func(Window) error) error {
	step := width - overlap
	for start := 0; start < len(seq); start += step {
		end := start + width
		if end > len(seq) {
			end = len(seq)
		}
		if err := emit(Window{Start: start, End: end, Seq: seq[start:end]}); err != nil {
			return err
		}
	}
	return nil
}
