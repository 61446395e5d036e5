//go:build linux

package clipboard

import (
	"os"
	"strings"
)

func platformCommands() map[Backend]commandPair {
	return map[Backend]commandPair{
		BackendWlCopy: {
			copy:  command{name: "wl-copy"},
			paste: command{name: "wl-paste", args: []string{"--no-newline"}},
		},
		BackendXclip: {
			copy:  command{name: "xclip", args: []string{"-selection", "clipboard"}},
			paste: command{name: "xclip", args: []string{"-o", "-selection", "clipboard"}},
		},
		BackendXsel: {
			copy:  command{name: "xsel", args: []string{"--clipboard", "--input"}},
			paste: command{name: "xsel", args: []string{"--clipboard", "--output"}},
		},
	}
}

// autoBackendCandidates prefers Wayland, then X11 tools.
func autoBackendCandidates() []Backend {
	var candidates []Backend
	if isWayland() {
		candidates = append(candidates, BackendWlCopy)
	}
	if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
		candidates = append(candidates, BackendXclip, BackendXsel)
	}
	return candidates
}

func isWayland() bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")), "wayland") {
		return true
	}
	return strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) != ""
}
