// Package log is kk's debug event log. Nothing is written unless a log file
// is chosen with --debug-log or debug_log; events raised before that are
// held in memory and replayed into the file.
package log

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// pendingLimit caps the events held before a destination is known.
const pendingLimit = 64 * 1024

// sink is the process-wide destination of debug events.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	pending bytes.Buffer
	off     bool
}

var (
	out = &sink{}
	now = time.Now
)

func (s *sink) emit(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.off:
	case s.file != nil:
		_, _ = s.file.Write(line)
	case s.pending.Len()+len(line) <= pendingLimit:
		s.pending.Write(line)
	}
}

// SetFile routes events to path, appending. Held events are written first.
// An empty path turns the log off and drops them.
func SetFile(path string) error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file != nil {
		_ = out.file.Close()
		out.file = nil
	}
	if path == "" {
		out.off = true
		out.pending.Reset()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		out.off = true
		out.pending.Reset()
		return err
	}
	out.file = f
	out.off = false
	_, _ = out.pending.WriteTo(f)
	return nil
}

// Close closes the log file if one is open.
func Close() error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file == nil {
		return nil
	}
	err := out.file.Close()
	out.file = nil
	return err
}

// Event records one thing a component did, followed by key=value pairs:
//
//	15:04:05.000000 git    exit=0 took=3ms args="status --porcelain=v1"
//
// kv alternates keys and values; a trailing key without a value is dropped.
func Event(component, msg string, kv ...any) {
	var b bytes.Buffer
	b.WriteString(now().Format("15:04:05.000000"))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-6s %s", component, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, kv[i])
		b.WriteByte('=')
		b.WriteString(value(kv[i+1]))
	}
	b.WriteByte('\n')
	out.emit(b.Bytes())
}

// Printf records a free-form message. The text before the first ": " is
// used as the component.
func Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	component, rest, ok := strings.Cut(msg, ": ")
	if !ok || strings.ContainsAny(component, " /") {
		component, rest = "kk", msg
	}
	Event(component, rest)
}

func value(v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case error:
		s = x.Error()
	case time.Duration:
		s = x.Round(time.Microsecond).String()
	default:
		s = fmt.Sprint(x)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
