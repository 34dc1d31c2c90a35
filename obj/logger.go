package obj

import (
	"fmt"
	"io"
	"log"
)

// Logger is safe to use as a nil pointer, which drops everything.
type Logger struct {
	io.Writer
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

var (
	// StdLogger forwards to the standard log package.
	StdLogger = &Logger{Writer: stdWriter{}}
	Discard   *Logger
)

type stdWriter struct{}

func (stdWriter) Write(p []byte) (int, error) {
	return len(p), log.Output(4, string(p))
}

func (l *Logger) Println(a ...interface{}) {
	if l != nil && l.Writer != nil {
		fmt.Fprintln(l, a...)
	}
}

func (l *Logger) Printf(format string, a ...interface{}) {
	if l != nil && l.Writer != nil {
		fmt.Fprintf(l, format+"\n", a...)
	}
}
