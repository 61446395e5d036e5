package clipboard

import "fmt"

// command is an executable plus its arguments.
type command struct {
	name string
	args []string
}

// commandPair is how one backend writes and reads the clipboard.
type commandPair struct {
	copy  command
	paste command
}

func copyBytes(backend Backend, data []byte) error {
	pair, ok := platformCommands()[backend]
	if !ok {
		return fmt.Errorf("clipboard backend %q is not supported on this platform", backend)
	}
	return runCopyCommand(pair.copy.name, pair.copy.args, data)
}

func pasteBytes(backend Backend) ([]byte, error) {
	pair, ok := platformCommands()[backend]
	if !ok {
		return nil, fmt.Errorf("clipboard backend %q is not supported for paste on this platform", backend)
	}
	return runPasteCommand(pair.paste.name, pair.paste.args)
}
