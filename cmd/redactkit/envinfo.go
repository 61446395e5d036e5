package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/term"
)

type envInfo struct {
	platform string
	shell    string
	term     string
	stdinTTY bool
	cols     int
	rows     int
}

func readEnvInfo() envInfo {
	info := envInfo{
		platform: platformLabel(),
		shell:    shellLabel(),
		term:     os.Getenv("TERM"),
		stdinTTY: term.IsTerminal(int(os.Stdin.Fd())),
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil {
		info.cols = cols
		info.rows = rows
	}
	return info
}

func envSummary() string {
	info := readEnvInfo()
	return fmt.Sprintf("Detected %s, shell=%s TERM=%s size=%dx%d", info.platform, info.shell, info.term, info.cols, info.rows)
}

func platformLabel() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

func shellLabel() string {
	shell := strings.TrimSpace(os.Getenv("SHELL"))
	if shell == "" {
		return "shell"
	}
	return filepath.Base(shell)
}
