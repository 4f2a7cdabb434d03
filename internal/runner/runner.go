// Package runner executes external commands for the bootstrap pipeline.
//
// All platform-specific behaviour lives here: on Windows every invocation is
// wrapped in `cmd /C`, elsewhere the first argument is executed directly, or
// through `sh -c` when the arguments chain several commands with "&&".
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/alessio/shellescape"

	"quick-init/internal/logger"
)

var (
	// ErrSpawn is wrapped when a process could not be started at all
	// (executable missing, permission denied, bad working directory).
	ErrSpawn = errors.New("failed to execute process")

	// ErrCommandFailed is wrapped when a process ran but exited non-zero and
	// the caller treats that as fatal.
	ErrCommandFailed = errors.New("command failed")
)

// ChainSeparator joins sub-commands that must run one after another in the same
// shell. An invocation containing it runs in shell-chain mode.
const ChainSeparator = "&&"

// Invocation is one external command and the directory it runs in.
type Invocation struct {
	Args []string
	Dir  string
}

// String renders the invocation for logs.
func (i Invocation) String() string {
	return strings.Join(i.Args, " ")
}

// Result is the captured outcome of a process that ran to completion.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// CheckExit returns an error wrapping ErrCommandFailed when res reports a
// non-zero exit. The error carries the command's stderr.
func CheckExit(inv Invocation, res *Result) error {
	if res == nil || res.Success() {
		return nil
	}
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		return fmt.Errorf("%w: %s: exit code %d", ErrCommandFailed, inv, res.ExitCode)
	}
	return fmt.Errorf("%w: %s: exit code %d\nOutput: %s", ErrCommandFailed, inv, res.ExitCode, msg)
}

// RunChecked runs inv in captured mode through r. A non-zero exit is returned
// as an error when strict is set and logged as a warning otherwise.
func RunChecked(ctx context.Context, r Runner, inv Invocation, strict bool) (*Result, error) {
	res, err := r.Run(ctx, inv)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		if strict {
			return res, CheckExit(inv, res)
		}
		logger.Warn("[WARN] %s exited with code %d\n", inv, res.ExitCode)
	}
	return res, nil
}

// Runner runs invocations in one of two modes.
type Runner interface {
	// Run blocks until the process exits and captures its output.
	// A non-zero exit is reported through Result.ExitCode, not as an error;
	// the error is reserved for processes that could not be started.
	Run(ctx context.Context, inv Invocation) (*Result, error)

	// Start launches the process attached to this terminal and returns as soon
	// as it has been spawned. The child is not waited on.
	Start(ctx context.Context, inv Invocation) error
}

// Exec is the Runner backed by os/exec.
type Exec struct {
	// GOOS selects the dispatch rules; defaults to runtime.GOOS.
	GOOS string
}

// New returns an Exec for the current platform.
func New() *Exec {
	return &Exec{GOOS: runtime.GOOS}
}

// Run executes inv in captured mode.
func (e *Exec) Run(ctx context.Context, inv Invocation) (*Result, error) {
	name, args, err := e.argv(inv.Args)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("[DEBUG] Running command in %s: %s\n", inv.Dir, strings.Join(cmd.Args, " "))
	err = cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debug("[DEBUG] %s exited with code %d\nOutput: %s\n", inv, result.ExitCode, result.Stderr)
			return result, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawn, inv, err)
	}

	return result, nil
}

// Start executes inv in attached mode. The child shares this terminal's
// stdin, stdout and stderr and is released right after it spawns.
func (e *Exec) Start(_ context.Context, inv Invocation) error {
	name, args, err := e.argv(inv.Args)
	if err != nil {
		return err
	}

	// No CommandContext here: cancelling the caller must not kill the child.
	cmd := exec.Command(name, args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("[DEBUG] Starting command in %s: %s\n", inv.Dir, strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, inv, err)
	}
	return cmd.Process.Release()
}

// argv maps an argument vector onto the program and arguments actually executed.
func (e *Exec) argv(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: empty command", ErrSpawn)
	}

	goos := e.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch {
	case goos == "windows":
		return "cmd", append([]string{"/C"}, args...), nil
	case slices.Contains(args, ChainSeparator):
		return "sh", []string{"-c", shellJoin(args)}, nil
	default:
		return args[0], args[1:], nil
	}
}

// shellJoin renders args as a POSIX shell command line, quoting every token
// except the chain separator.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == ChainSeparator {
			quoted[i] = a
			continue
		}
		quoted[i] = shellescape.Quote(a)
	}
	return strings.Join(quoted, " ")
}
