//go:build darwin

package clipboard

func platformCommands() map[Backend]commandPair {
	return map[Backend]commandPair{
		BackendPbcopy: {
			copy:  command{name: "pbcopy"},
			paste: command{name: "pbpaste"},
		},
	}
}

func autoBackendCandidates() []Backend {
	return []Backend{BackendPbcopy}
}
