// internal/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. Descriptor is the full header line
// after '>' with surrounding space trimmed; Seq is the concatenation of
// all following sequence lines, however they were wrapped.
type Record struct {
	Descriptor string
	Seq        []byte
}

// StreamRecordsCtx parses FASTA from r and hands each record to emit as
// soon as its last sequence line has been read, so downstream work can
// start before the whole input is consumed. Blank lines are skipped;
// text before the first header is ignored.
//
// It is cancelable: the scan stops between lines once ctx is Done.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		desc    string
		seq     = make([]byte, 0, 1<<20)
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{Descriptor: desc, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			desc = string(bytes.TrimSpace(line[1:]))
			seq = seq[:0]
			started = true
			continue
		}
		if !started {
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamRecordsFromReader is the background-context convenience wrapper.
func StreamRecordsFromReader(r io.Reader, emit func(Record) error) error {
	return StreamRecordsCtx(context.Background(), r, emit)
}
