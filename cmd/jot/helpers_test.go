package main

// Notes:
// - Command tests go through run() and check exit codes, stdout, stderr and
//   the files left on disk. The browser and the editor are replaced through
//   Environment, so no test launches either.
// - isolateEnv uses t.Setenv, so tests calling it cannot use t.Parallel().

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jot "github.com/alnah/go-jot"
	"github.com/alnah/go-jot/internal/editor"
)

// fakeExporter records the export request and writes PDF bytes to the
// target like the real exporter would.
type fakeExporter struct {
	PDF    []byte
	Err    error
	Called bool
	In     jot.ExportInput
	Target jot.Target
	stdout *bytes.Buffer
}

func (f *fakeExporter) Export(_ context.Context, in jot.ExportInput, target jot.Target) error {
	f.Called = true
	f.In = in
	f.Target = target
	if f.Err != nil {
		return f.Err
	}
	sink, err := target.Open(f.stdout)
	if err != nil {
		return err
	}
	if _, err := sink.Write(f.PDF); err != nil {
		_ = sink.Abort()
		return err
	}
	return sink.Close()
}

// editorCall records one OpenEditor invocation.
type editorCall struct {
	Command string
	Jump    editor.JumpMode
	Path    string
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exporter *fakeExporter
	edits    []editorCall
	editErr  error
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 14, 15, 2, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.exporter = &fakeExporter{PDF: []byte("%PDF-1.7 fake"), stdout: te.stdout}
	te.Environment = &Environment{
		Now:      fixedNow,
		Stdin:    strings.NewReader(""),
		Stdout:   te.stdout,
		Stderr:   te.stderr,
		Exporter: te.exporter,
		OpenEditor: func(_ context.Context, command string, jump editor.JumpMode, path string) error {
			te.edits = append(te.edits, editorCall{Command: command, Jump: jump, Path: path})
			return te.editErr
		},
	}
	return te
}

// run invokes the CLI with args after the program name.
func (te *testEnv) run(args ...string) int {
	return run(context.Background(), append([]string{"jot"}, args...), te.Environment)
}

// isolateEnv clears JOT_* variables and points the user config directory at
// an empty temp dir so no real configuration leaks into tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "JOT_") && !knownEnvVars[name] {
			t.Setenv(name, "") // restores the value after the test
			_ = os.Unsetenv(name)
		}
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))
	t.Setenv("EDITOR", "")
}

// writeConfig writes conf.toml with the given body and points JOT_CONFIG at it.
// The notes root defaults to a temp dir unless body sets one.
func writeConfig(t *testing.T, body string) (path, root string) {
	t.Helper()
	dir := t.TempDir()
	root = filepath.Join(dir, "notes")
	if !strings.Contains(body, "root") {
		body = "root = " + tomlString(root) + "\n" + body
	}
	path = filepath.Join(dir, "conf.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JOT_CONFIG", path)
	return path, root
}

// tomlString quotes s as a TOML literal string, which keeps Windows
// backslashes intact.
func tomlString(s string) string {
	return "'" + s + "'"
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s exists, want it absent", path)
	}
}
