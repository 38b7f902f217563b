// internal/output/fasta_test.go
package output

import (
	"bytes"
	"testing"
)

func TestWriteRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteRecord(buf, "chr1|0|w|10|o|3", []byte("ACGT")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := buf.String(), ">chr1|0|w|10|o|3\nACGT\n"; got != want {
		t.Fatalf("record %q, want %q", got, want)
	}
}

func TestSequenceDescriptor(t *testing.T) {
	if got := SequenceDescriptor(1); got != "sequence_1" {
		t.Fatalf("descriptor %q, want sequence_1", got)
	}
}

func TestWindowDescriptor(t *testing.T) {
	got := WindowDescriptor("chr1 assembled contig", 21, 10, 3)
	if want := "chr1 assembled contig|21|w|10|o|3"; got != want {
		t.Fatalf("descriptor %q, want %q", got, want)
	}
}
