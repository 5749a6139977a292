package errors

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors that carry a call stack, as provided
// by the pkg/errors library.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// trimInternal removes the stack trace frames that belong to this package.
// The stack should point to the frame where the error was created, not to
// the wrapping helpers.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 1 && matchesFunc(st[0],
		// where we create errors
		"github.com/carbonvault/vault/errors.Wrap",
		"github.com/carbonvault/vault/errors.Wrapf",
		"github.com/carbonvault/vault/errors.WithType",
		"github.com/carbonvault/vault/errors.(*Error).New",
		"github.com/carbonvault/vault/errors.(*Error).Newf",
		// runtime frames are added on panics
		"runtime.",
		// the coverage test runner wraps everything
		"_test/_testmain.go",
	) {
		st = st[1:]
	}
	// trim out the outer wrappers (test runner and goexit)
	for l := len(st) - 1; l > 0 && matchesFunc(st[l], "runtime.", "testing."); l-- {
		st = st[:l]
	}
	return st
}

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	fn := funcName(f)
	for _, prefix := range prefixes {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}

// funcName returns the fully qualified name of the function the frame
// belongs to, or "unknown" when the program counter cannot be resolved.
func funcName(f errors.Frame) string {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

// frameSource returns the import path qualified location of the frame
// source file. The runtime reports file paths as they were on the build
// host, so the package path is recovered from the function name instead.
func frameSource(f errors.Frame) (string, int) {
	file, line := fileLine(f)
	fn := funcName(f)
	if slash := strings.LastIndex(fn, "/"); slash >= 0 {
		if dot := strings.Index(fn[slash:], "."); dot >= 0 {
			return fn[:slash+dot] + "/" + filepath.Base(file), line
		}
	}
	return file, line
}

// writeSimpleFrame writes a compressed [file:line] information about the
// frame. Only the project-local part of the file path is printed.
func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := frameSource(f)
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format renders this error with or without the attached stack trace.
//
//   %s  is just the error message
//   %+v is the full stack trace
//   %v  appends a compressed [filename:line] where the error was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%s", e.Error())
		return
	}

	stack := trimInternal(stackTrace(e))
	if s.Flag('+') {
		fmt.Fprintf(s, "%s\n", e.Error())
		for _, f := range stack {
			file, line := frameSource(f)
			fmt.Fprintf(s, "%s\n\t%s:%d\n", funcName(f), file, line)
		}
	} else {
		fmt.Fprintf(s, "%s", e.Error())
		if len(stack) > 0 {
			writeSimpleFrame(s, stack[0])
		}
	}
}
