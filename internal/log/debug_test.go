package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reset(t *testing.T) {
	t.Helper()
	out = &sink{}
	now = func() time.Time { return time.Date(2024, 3, 15, 12, 30, 45, 123456000, time.UTC) }
	t.Cleanup(func() {
		_ = Close()
		out = &sink{}
		now = time.Now
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestSetFileReplaysHeldEvents(t *testing.T) {
	reset(t)

	Printf("config: loaded %s", "/tmp/kk.yaml")

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("set file: %v", err)
	}
	Event("git", "ok", "exit", 0)

	got := readLog(t, path)
	want := "12:30:45.123456 config loaded /tmp/kk.yaml\n" +
		"12:30:45.123456 git    ok exit=0\n"
	if got != want {
		t.Fatalf("log mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestEventQuotesValues(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("set file: %v", err)
	}

	Event("git", "error", "args", "status --porcelain=v1", "err", errors.New("exit 128"),
		"took", 1500*time.Microsecond, "cwd", "", "dangling")

	got := readLog(t, path)
	want := `12:30:45.123456 git    error args="status --porcelain=v1" err="exit 128" took=1.5ms cwd=""` + "\n"
	if got != want {
		t.Fatalf("log mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestPrintfWithoutComponent(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("set file: %v", err)
	}

	Printf("plain message")
	Printf("/some/path: not a component")

	got := readLog(t, path)
	if !strings.Contains(got, " kk     plain message\n") ||
		!strings.Contains(got, " kk     /some/path: not a component\n") {
		t.Fatalf("unexpected log: %q", got)
	}
}

func TestSetFileEmptyTurnsLogOff(t *testing.T) {
	reset(t)

	Printf("held")
	if err := SetFile(""); err != nil {
		t.Fatalf("set empty file: %v", err)
	}
	Printf("dropped")
	if out.pending.Len() != 0 {
		t.Fatalf("expected held events to be dropped")
	}
}

func TestPendingLimit(t *testing.T) {
	reset(t)

	line := strings.Repeat("x", 1024)
	for i := 0; i < 100; i++ {
		Event("scan", line)
	}
	if out.pending.Len() > pendingLimit {
		t.Fatalf("held %d bytes, limit %d", out.pending.Len(), pendingLimit)
	}
}
