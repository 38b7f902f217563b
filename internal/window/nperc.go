// internal/window/nperc.go
package window

// NPercent returns the percentage of bases in seq that are the unknown
// placeholder 'N', case-insensitive. An empty slice is 0%, so callers
// never divide by zero on a degenerate window.
func NPercent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	n := 0
	for _, b := range seq {
		if b == 'N' || b == 'n' {
			n++
		}
	}
	return float64(n) / float64(len(seq)) * 100
}
