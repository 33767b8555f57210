package cardtable

import (
	"io"
	"log"
	"os"
)

// logger writes tagged diagnostic lines of the form
// "[cardtable][Subject][tag] message". A disabled logger discards everything
// and costs a branch.
type logger struct {
	out     *log.Logger
	subject string
	enabled bool
}

func newLogger(w io.Writer, subject string, enabled bool) *logger {
	if w == nil {
		w = os.Stderr
	}
	return &logger{
		out:     log.New(w, "", log.Ltime|log.Lmicroseconds),
		subject: subject,
		enabled: enabled,
	}
}

// sub returns a logger sharing l's output under another subject.
func (l *logger) sub(subject string) *logger {
	if l == nil {
		return nil
	}
	return &logger{out: l.out, subject: subject, enabled: l.enabled}
}

func (l *logger) printf(tag, format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.out.Printf("[cardtable]["+l.subject+"]["+tag+"] "+format, args...)
}
