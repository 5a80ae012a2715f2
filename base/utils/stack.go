package utils

import (
	"bytes"
	"fmt"
	"runtime"
)

// Stack returns a formatted stack trace of the calling goroutine, skipping the first skip frames
func Stack(skip int) []byte {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	buf := &bytes.Buffer{}
	for {
		f, more := frames.Next()
		fmt.Fprintf(buf, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return buf.Bytes()
}
