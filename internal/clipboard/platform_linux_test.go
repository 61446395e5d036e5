//go:build linux

package clipboard

import "testing"

func TestAutoPrefersWayland(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	t.Setenv("DISPLAY", ":0")
	stubLookPath(t, "wl-copy", "xclip")
	backend, err := ResolveBackend("auto")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if backend != BackendWlCopy {
		t.Fatalf("backend = %q", backend)
	}
}

func TestAutoFallsBackToXsel(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", ":0")
	stubLookPath(t, "xsel")
	backend, err := ResolveBackend("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if backend != BackendXsel {
		t.Fatalf("backend = %q", backend)
	}
}

func TestAutoWithoutDisplay(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", "")
	if _, err := ResolveBackend("auto"); err == nil {
		t.Fatalf("expected error without a display server")
	}
}

func TestLinuxPasteCommands(t *testing.T) {
	pair, ok := platformCommands()[BackendXclip]
	if !ok {
		t.Fatalf("xclip missing")
	}
	if pair.paste.name != "xclip" || pair.paste.args[0] != "-o" {
		t.Fatalf("paste = %+v", pair.paste)
	}
	if _, ok := platformCommands()[BackendPbcopy]; ok {
		t.Fatalf("pbcopy registered on linux")
	}
}
