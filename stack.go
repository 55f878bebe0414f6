// stack.go: construction-site stack capture.
//
// Design goals:
//   - Correctness: runtime.Callers + runtime.CallersFrames so inlined frames
//     resolve accurately.
//   - Capture at the raise site: every constructor on Kind captures its own
//     stack; NewKind never does.
//   - Bounded: depth is capped so exceptional paths stay cheap.
package jsuerror

import (
	"runtime"
	"strconv"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as "function file:line".
func (f Frame) String() string {
	return f.Function + " " + f.File + ":" + strconv.Itoa(f.Line)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// String renders one indented "at" line per frame.
func (s Stack) String() string {
	var b strings.Builder
	for i, fr := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("    at ")
		b.WriteString(fr.Function)
		b.WriteString(" (")
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
		b.WriteByte(')')
	}
	return b.String()
}

const (
	// defaultMaxDepth bounds capture on exceptional paths.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames beyond its
// caller, with the default depth bound.
//
// Skip model for a typical construction:
//
//	caller → Kind.New → newInstance → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 (runtime.Callers, captureStack, captureStackDefault);
// newInstance passes the remaining depth so the first frame is the caller.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +1 runtime.Callers, +1 captureStack, +1 captureStackDefault.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
