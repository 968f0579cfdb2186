package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) state() string    { return "idle" }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) SearchName(ctx context.Context, query string) error {
	f.calls = append(f.calls, "name")
	f.args = append(f.args, query)
	return nil
}
func (f *fakeExec) SearchPhone(ctx context.Context, query string) error {
	f.calls = append(f.calls, "phone")
	f.args = append(f.args, query)
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Edit(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "edit")
	f.args = append(f.args, idArg)
	return nil
}
func (f *fakeExec) Save(ctx context.Context) error   { f.calls = append(f.calls, "save"); return nil }
func (f *fakeExec) Cancel(ctx context.Context) error { f.calls = append(f.calls, "cancel"); return nil }
func (f *fakeExec) New(ctx context.Context) error    { f.calls = append(f.calls, "new"); return nil }
func (f *fakeExec) Delete(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "delete")
	f.args = append(f.args, idArg)
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"name Ana García",
		"edit 7",
		"save",
		"delete 7",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	wantOrder := []string{"login", "name", "edit", "save", "delete"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	wantArgs := []string{"Ana García", "7", "7"}
	for i, want := range wantArgs {
		if exec.args[i] != want {
			t.Fatalf("arg %d: got %q, want %q", i, exec.args[i], want)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("edit\ndelete\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
