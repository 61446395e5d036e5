package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	state := &appState{}
	rootCmd := newRootCmd(state)
	err := rootCmd.Execute()
	_ = state.logger.Sync()
	if err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "redactkit:", err)
		os.Exit(1)
	}
}
