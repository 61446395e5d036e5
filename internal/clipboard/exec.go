package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

var execCommand = exec.CommandContext

const commandTimeout = 2 * time.Second

func runCopyCommand(command string, args []string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := execCommand(ctx, command, args...)
	cmd.Stdin = bytes.NewReader(data)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s timeout: %w", command, ctx.Err())
		}
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

func runPasteCommand(command string, args []string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := execCommand(ctx, command, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s timeout: %w", command, ctx.Err())
		}
		return nil, fmt.Errorf("%s: %w", command, err)
	}
	return out, nil
}
