package ptywrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// DefaultLimit caps captured output when Options.Limit is zero.
const DefaultLimit = 16 << 20

// Options controls PTY execution behavior.
type Options struct {
	// ForwardInput copies the caller's stdin to the child when stdin is a terminal.
	ForwardInput bool
	RawMode      bool
	Limit        int
}

// Capture is everything a command wrote to its terminal.
type Capture struct {
	Output    []byte
	ExitCode  int
	Truncated bool
}

// Run starts cmd under a PTY, collects its output until it exits, and returns
// the output together with the child's exit code. Nothing is written to the
// caller's terminal. Cancelling ctx kills the child.
func Run(ctx context.Context, cmd *exec.Cmd, opts Options) (Capture, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return Capture{ExitCode: 1}, fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	if opts.ForwardInput && term.IsTerminal(int(os.Stdin.Fd())) {
		restore, err := maybeMakeRaw(opts.RawMode)
		if err != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return Capture{ExitCode: 1}, err
		}
		if restore != nil {
			defer restore()
		}
		_ = pty.InheritSize(os.Stdin, ptmx)
		go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	}

	stopSignals := forwardSignals(cmd.Process, ptmx)
	defer stopSignals()

	exited := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = cmd.Process.Kill()
		case <-exited:
		}
	}()

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	buf := &cappedBuffer{limit: limit}
	// The read ends with EIO once the child and every inheritor of the tty
	// have exited.
	_, _ = io.Copy(buf, ptmx)

	waitErr := cmd.Wait()
	close(exited)
	out := Capture{Output: buf.Bytes(), Truncated: buf.truncated}
	if waitErr != nil {
		out.ExitCode = exitCode(waitErr)
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// cappedBuffer keeps the first limit bytes and discards the rest so the
// child never blocks on a full PTY.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - b.buf.Len()
	if len(p) > room {
		b.truncated = true
		if room > 0 {
			_, _ = b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) Bytes() []byte { return b.buf.Bytes() }

func (b *cappedBuffer) String() string { return b.buf.String() }

func maybeMakeRaw(enable bool) (func(), error) {
	if !enable {
		return nil, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

func forwardSignals(proc *os.Process, ptmx *os.File) func() {
	if proc == nil {
		return func() {}
	}
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range ch {
			switch sig {
			case syscall.SIGWINCH:
				_ = pty.InheritSize(os.Stdin, ptmx)
			default:
				_ = proc.Signal(sig)
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				return 128 + int(status.Signal())
			}
			return status.ExitStatus()
		}
	}
	return 1
}
