// cmd/randseq/main.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"fastatools/internal/randseqapp"
)

func main() {
	var out, errBuf bytes.Buffer
	code := randseqapp.Run(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
