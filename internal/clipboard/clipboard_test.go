package clipboard

import (
	"errors"
	"os/exec"
	"testing"
)

func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	prev := lookPath
	t.Cleanup(func() { lookPath = prev })
	lookPath = func(name string) (string, error) {
		for _, have := range installed {
			if have == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestResolveExplicitBackend(t *testing.T) {
	for _, in := range []string{"xclip", " XSEL ", "wl-copy", "pbcopy", "none"} {
		if _, err := ResolveBackend(in); err != nil {
			t.Fatalf("ResolveBackend(%q): %v", in, err)
		}
	}
	if _, err := ResolveBackend("clippy"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestCopyDisabled(t *testing.T) {
	if err := CopyText("none", "x"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v", err)
	}
	if err := VerifyBytes("none", []byte("x")); !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v", err)
	}
}

func TestAvailableUsesLookPath(t *testing.T) {
	stubLookPath(t, "xclip")
	if backend, ok := Available("xclip"); !ok || backend != BackendXclip {
		t.Fatalf("Available(xclip) = %q, %v", backend, ok)
	}
	if _, ok := Available("xsel"); ok {
		t.Fatalf("xsel reported available")
	}
	if _, ok := Available("none"); ok {
		t.Fatalf("none reported available")
	}
}
