package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	err   error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.err
}

func (f *fakeExec) Register(_ context.Context, a []string) error { return f.record("register", a) }
func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.record("login", a)
}
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.record("logout", a)
}
func (f *fakeExec) ListFolders(_ context.Context, a []string) error  { return f.record("folders", a) }
func (f *fakeExec) CreateFolder(_ context.Context, a []string) error { return f.record("mkdir", a) }
func (f *fakeExec) RenameFolder(_ context.Context, a []string) error { return f.record("renamedir", a) }
func (f *fakeExec) DeleteFolder(_ context.Context, a []string) error { return f.record("rmdir", a) }
func (f *fakeExec) ListFiles(_ context.Context, a []string) error    { return f.record("files", a) }
func (f *fakeExec) ListFolderFiles(_ context.Context, a []string) error {
	return f.record("ls", a)
}
func (f *fakeExec) CreateFile(_ context.Context, a []string) error { return f.record("touch", a) }
func (f *fakeExec) RenameFile(_ context.Context, a []string) error { return f.record("rename", a) }
func (f *fakeExec) DeleteFile(_ context.Context, a []string) error { return f.record("rm", a) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() {
		printlnFn = origPrintln
		printFn = origPrint
	})
	return &lines
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"mkdir docs",
		"folders",
		"renamedir 1 papers",
		"touch a.txt 10 1",
		"ls 1",
		"files",
		"rename 2 b.txt",
		"rm 2",
		"rmdir 1",
		"foobar",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{
		"login", "mkdir", "folders", "renamedir", "touch", "ls",
		"files", "rename", "rm", "rmdir", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"a.txt", "10", "1"}, exec.args["touch"])
	assert.Equal(t, []string{"1", "papers"}, exec.args["renamedir"])

	assert.Equal(t, helpAnonymous, (*out)[0])
	assert.Equal(t, helpLoggedIn, (*out)[1])
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_PrintsHandlerErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("folder not found")}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("rmdir 9\nrm 3\n"))

	assert.Equal(t, []string{"rmdir", "rm"}, exec.calls)
	assert.Equal(t, []string{"Error: folder not found", "Error: folder not found"}, *out)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("\n  \nfiles"))

	assert.Equal(t, []string{"files"}, exec.calls)
}
