package runner

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgv_PlatformDispatch(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		args     []string
		wantName string
		wantArgs []string
	}{
		{
			name:     "windows wraps through cmd",
			goos:     "windows",
			args:     []string{"npm", "install", "postcss"},
			wantName: "cmd",
			wantArgs: []string{"/C", "npm", "install", "postcss"},
		},
		{
			name:     "windows passes chains to cmd unchanged",
			goos:     "windows",
			args:     []string{"npm", "create", "vite@latest", "demo", "&&", "cd", "demo"},
			wantName: "cmd",
			wantArgs: []string{"/C", "npm", "create", "vite@latest", "demo", "&&", "cd", "demo"},
		},
		{
			name:     "linux executes directly",
			goos:     "linux",
			args:     []string{"npm", "install", "postcss"},
			wantName: "npm",
			wantArgs: []string{"install", "postcss"},
		},
		{
			name:     "darwin chain goes through sh",
			goos:     "darwin",
			args:     []string{"npm", "create", "vite@latest", "my app", "&&", "cd", "my app", "&&", "npm", "install"},
			wantName: "sh",
			wantArgs: []string{"-c", "npm create vite@latest 'my app' && cd 'my app' && npm install"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Exec{GOOS: tt.goos}
			name, args, err := e.argv(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestArgv_EmptyCommand(t *testing.T) {
	_, _, err := (&Exec{GOOS: "linux"}).argv(nil)
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestShellJoin(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "safe tokens stay bare",
			args: []string{"npm", "create", "vite@latest", "demo", "--", "--template", "react-ts"},
			want: "npm create vite@latest demo -- --template react-ts",
		},
		{
			name: "chain separator is not quoted",
			args: []string{"cd", "demo", ChainSeparator, "npm", "install"},
			want: "cd demo && npm install",
		},
		{
			name: "empty token",
			args: []string{"echo", ""},
			want: "echo ''",
		},
		{
			name: "single quote",
			args: []string{"cd", "it's"},
			want: `cd 'it'"'"'s'`,
		},
		{
			name: "separator inside a token is quoted",
			args: []string{"cd", "a&&b"},
			want: "cd 'a&&b'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shellJoin(tt.args))
		})
	}
}

func TestExecRun_ShellChainKeepsMetacharactersLiteral(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	name := "a'$(touch pwned);`id`"
	res, err := New().Run(context.Background(), Invocation{
		Args: []string{"mkdir", name, ChainSeparator, "cd", name, ChainSeparator, "pwd"},
		Dir:  dir,
	})
	require.NoError(t, err)
	require.Zero(t, res.ExitCode, res.Stderr)

	assert.Equal(t, name, filepath.Base(strings.TrimSpace(res.Stdout)))
	assert.NoFileExists(t, filepath.Join(dir, "pwned"))
}

// skipOnWindows skips tests that need POSIX utilities or direct execution;
// on Windows every command is wrapped in cmd /C, which always spawns.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX process semantics")
	}
}

func TestExecRun_CapturesOutput(t *testing.T) {
	skipOnWindows(t)

	res, err := New().Run(context.Background(), Invocation{Args: []string{"echo", "hello"}, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "hello\n", res.Stdout)
}

func TestExecRun_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	inv := Invocation{Args: []string{"sh", "-c", "echo broken >&2; exit 3"}, Dir: t.TempDir()}
	res, err := New().Run(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())

	checkErr := CheckExit(inv, res)
	assert.ErrorIs(t, checkErr, ErrCommandFailed)
	assert.Contains(t, checkErr.Error(), "broken")
}

func TestExecRun_MissingExecutable(t *testing.T) {
	skipOnWindows(t)

	res, err := New().Run(context.Background(), Invocation{
		Args: []string{"quick-init-definitely-not-installed"},
		Dir:  t.TempDir(),
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestExecRun_MissingWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	_, err := New().Run(context.Background(), Invocation{
		Args: []string{"echo", "hi"},
		Dir:  filepath.Join(t.TempDir(), "absent"),
	})
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestExecRun_ShellChainChangesDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	res, err := New().Run(context.Background(), Invocation{
		Args: []string{"mkdir", "demo", "&&", "cd", "demo", "&&", "pwd"},
		Dir:  dir,
	})
	require.NoError(t, err)
	require.True(t, res.Success(), res.Stderr)
	assert.Equal(t, "demo", filepath.Base(strings.TrimSpace(res.Stdout)))
	assert.DirExists(t, filepath.Join(dir, "demo"))
}

func TestExecStart_ReturnsAfterSpawn(t *testing.T) {
	skipOnWindows(t)

	err := New().Start(context.Background(), Invocation{Args: []string{"true"}, Dir: t.TempDir()})
	assert.NoError(t, err)
}

func TestExecStart_MissingExecutable(t *testing.T) {
	skipOnWindows(t)

	err := New().Start(context.Background(), Invocation{Args: []string{"quick-init-definitely-not-installed"}})
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestCheckExit_Success(t *testing.T) {
	assert.NoError(t, CheckExit(Invocation{Args: []string{"true"}}, &Result{}))
}
