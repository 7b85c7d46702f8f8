package designs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFileOrFail(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcherFiltersToDesignInputs(t *testing.T) {
	dir := t.TempDir()
	scriptsDir := filepath.Join(dir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0755); err != nil {
		t.Fatalf("mkdir scripts: %v", err)
	}

	w, err := WatchDesign(dir, "demo.yaml")
	if err != nil {
		t.Fatalf("watch design: %v", err)
	}
	defer w.Close()
	w.SetScripts("offset_sin.tengo")

	cases := []struct {
		name       string
		path       string
		wantEvent  bool
		wantScript bool
	}{
		{"watched_design", filepath.Join(dir, "demo.yaml"), true, false},
		{"other_design", filepath.Join(dir, "other.yaml"), false, false},
		{"referenced_script", filepath.Join(scriptsDir, "offset_sin.tengo"), true, true},
		{"unreferenced_script", filepath.Join(scriptsDir, "spiral.tengo"), false, false},
		{"unrelated_file", filepath.Join(dir, "notes.txt"), false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			writeFileOrFail(t, c.path, "x")

			timeout := 2 * time.Second
			if !c.wantEvent {
				timeout = 300 * time.Millisecond
			}

			deadline := time.After(timeout)
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						t.Fatalf("events channel closed")
					}
					// A duplicate event from an earlier write may
					// still be in flight; only this case's file counts.
					if filepath.Base(ev.Path) != filepath.Base(c.path) {
						continue
					}
					if !c.wantEvent {
						t.Fatalf("unexpected event %+v for %s", ev, c.path)
					}
					if ev.Script != c.wantScript {
						t.Fatalf("event script=%v, want %v", ev.Script, c.wantScript)
					}
					return
				case <-deadline:
					if c.wantEvent {
						t.Fatalf("no event for %s", c.path)
					}
					return
				}
			}
		})
	}
}

func TestWatcherSetScriptsReplaces(t *testing.T) {
	dir := t.TempDir()
	scriptsDir := filepath.Join(dir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0755); err != nil {
		t.Fatalf("mkdir scripts: %v", err)
	}

	w, err := WatchDesign(dir, "demo.yaml")
	if err != nil {
		t.Fatalf("watch design: %v", err)
	}
	defer w.Close()

	// Path forms are normalized the same way LoadScript normalizes them.
	w.SetScripts("designs/scripts/loop.tengo")
	w.SetScripts("spiral.tengo")

	writeFileOrFail(t, filepath.Join(scriptsDir, "loop.tengo"), "x")
	select {
	case ev := <-w.Events:
		t.Fatalf("dropped script should no longer match, got %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}

	writeFileOrFail(t, filepath.Join(scriptsDir, "spiral.tengo"), "x")
	select {
	case ev, ok := <-w.Events:
		if !ok {
			t.Fatalf("events channel closed")
		}
		if !ev.Script {
			t.Fatalf("expected a script event, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for replacement script")
	}
}

func TestWatcherDebouncesRepeatedWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := WatchDesign(dir, "demo.yaml")
	if err != nil {
		t.Fatalf("watch design: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "demo.yaml")
	for i := 0; i < 5; i++ {
		writeFileOrFail(t, path, "x")
	}

	select {
	case _, ok := <-w.Events:
		if !ok {
			t.Fatalf("events channel closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for watched design")
	}

	// The burst lands inside the debounce window, so most of the writes
	// must have been collapsed into the event already consumed.
	time.Sleep(200 * time.Millisecond)
	extra := 0
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				t.Fatalf("events channel closed")
			}
			extra++
		default:
			if extra > 3 {
				t.Fatalf("burst of writes produced %d extra events", extra)
			}
			return
		}
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()

	w, err := WatchDesign(dir, "demo.yaml")
	if err != nil {
		t.Fatalf("watch design: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel not closed after Close")
	}
}
