package tui

import (
	"fmt"
	"io"
)

func printfTo(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
