//go:build !linux && !darwin

package clipboard

func platformCommands() map[Backend]commandPair {
	return nil
}

func autoBackendCandidates() []Backend {
	return nil
}
