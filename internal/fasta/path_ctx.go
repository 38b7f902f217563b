// internal/fasta/path_ctx.go
package fasta

import "context"

// StreamRecordsPathCtx opens path ("-" = stdin, gzip transparent) and
// streams its records through emit. The handle is released on every
// exit path, including emit errors and cancellation.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamRecordsCtx(ctx, rc, emit)
}
