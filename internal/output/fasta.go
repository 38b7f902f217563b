// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// WriteRecord writes one FASTA record with a single-line body.
func WriteRecord(w io.Writer, desc string, seq []byte) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", desc, seq)
	return err
}

// SequenceDescriptor labels the i-th generated sequence (1-based).
func SequenceDescriptor(i int) string {
	return fmt.Sprintf("sequence_%d", i)
}

// WindowDescriptor tags a window with its start offset plus the
// requested width and overlap: <desc>|<start>|w|<width>|o|<overlap>.
// Width is the requested width even when the window body is clipped.
func WindowDescriptor(desc string, start, width, overlap int) string {
	return fmt.Sprintf("%s|%d|w|%d|o|%d", desc, start, width, overlap)
}
