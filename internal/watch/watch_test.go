package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileInitialAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	seen := make(chan string, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- File(ctx, path, Options{Debounce: 20 * time.Millisecond}, func(content []byte) error {
			seen <- string(content)
			return nil
		})
	}()

	if got := <-seen; got != "first" {
		t.Fatalf("initial = %q", got)
	}
	if err := os.WriteFile(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case got := <-seen:
		if got != "second" {
			t.Fatalf("change = %q", got)
		}
	case <-ctx.Done():
		t.Fatalf("no change observed")
	}
	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("watch: %v", err)
	}
}

func TestFileMissing(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), Options{}, func([]byte) error { return nil })
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileCallbackErrorStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	stop := errors.New("stop")
	err := File(context.Background(), path, Options{}, func([]byte) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v", err)
	}
}
