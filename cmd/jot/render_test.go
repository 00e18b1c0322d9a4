package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jot "github.com/alnah/go-jot"
)

// sourceFile writes a markdown file in a fresh directory and returns its path.
func sourceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writeFile(t, path, content)
	return path
}

// ---------------------------------------------------------------------------
// TestRunHTML - HTML rendering
// ---------------------------------------------------------------------------

func TestRunHTML_StdinToStdout(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	te.Stdin = strings.NewReader("# Hello\n\nWorld")

	if code := te.run("html"); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
	}
	out := te.stdout.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>\n<html>\n<head>\n") {
		t.Errorf("stdout = %q, want a full document", out)
	}
	if !strings.Contains(out, `<h1 id="hello">Hello</h1>`) {
		t.Errorf("stdout = %q, want rendered heading", out)
	}
	if strings.Contains(out, "<style>") {
		t.Error("no stylesheet configured, want no <style> block")
	}
}

func TestRunHTML_Raw(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	te.Stdin = strings.NewReader("---\ntitle: x\n---\n# Hi")

	if code := te.run("html", "--raw"); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
	}
	out := te.stdout.String()
	if strings.Contains(out, "<html>") || strings.Contains(out, "front-matter") {
		t.Errorf("stdout = %q, want a bare fragment", out)
	}
	if !strings.Contains(out, "Hi</h1>") {
		t.Errorf("stdout = %q, want converted heading", out)
	}
}

func TestRunHTML_StylesheetFromConfig(t *testing.T) {
	isolateEnv(t)
	css := filepath.Join(t.TempDir(), "custom.css")
	writeFile(t, css, "body { color: teal; }")
	writeConfig(t, "css = "+tomlString(css))
	te := newTestEnv(t)
	te.Stdin = strings.NewReader("x")

	if code := te.run("html"); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
	}
	if !strings.Contains(te.stdout.String(), "<style>body { color: teal; }</style>\n") {
		t.Errorf("stdout = %q, want inlined stylesheet", te.stdout)
	}
}

func TestRunHTML_Outputs(t *testing.T) {
	t.Run("bare output beside input", func(t *testing.T) {
		isolateEnv(t)
		writeConfig(t, "")
		te := newTestEnv(t)
		src := sourceFile(t, "plan.md", "# Plan")

		if code := te.run("html", "-i", src, "-o"); code != ExitSuccess {
			t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
		}
		data, err := os.ReadFile(filepath.Join(filepath.Dir(src), "plan.html"))
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.Contains(string(data), "Plan</h1>") {
			t.Errorf("output = %q, want rendered note", data)
		}
		if te.stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", te.stdout)
		}
	})

	t.Run("bare output before input", func(t *testing.T) {
		isolateEnv(t)
		writeConfig(t, "")
		te := newTestEnv(t)
		src := sourceFile(t, "plan.md", "# Plan")

		if code := te.run("html", "--output", "-i", src); code != ExitSuccess {
			t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
		}
		if _, err := os.Stat(filepath.Join(filepath.Dir(src), "plan.html")); err != nil {
			t.Errorf("output not beside input: %v", err)
		}
	})

	t.Run("explicit directory", func(t *testing.T) {
		isolateEnv(t)
		writeConfig(t, "")
		te := newTestEnv(t)
		src := sourceFile(t, "plan.md", "# Plan")
		outDir := t.TempDir()

		if code := te.run("html", "-i", src, "-o", outDir); code != ExitSuccess {
			t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
		}
		if _, err := os.Stat(filepath.Join(outDir, "plan.html")); err != nil {
			t.Errorf("output not in directory: %v", err)
		}
	})

	t.Run("explicit file with equals", func(t *testing.T) {
		isolateEnv(t)
		writeConfig(t, "")
		te := newTestEnv(t)
		te.Stdin = strings.NewReader("# From stdin")
		out := filepath.Join(t.TempDir(), "page.html")

		if code := te.run("html", "--output="+out); code != ExitSuccess {
			t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.Contains(string(data), "From stdin</h1>") {
			t.Errorf("output = %q, want stdin content", data)
		}
	})
}

func TestRunHTML_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		stdin    string
		wantCode int
		wantErr  string
	}{
		{
			name: "not markdown",
			args: func(t *testing.T) []string {
				return []string{"html", "-i", sourceFile(t, "notes.txt", "x")}
			},
			wantCode: ExitIO,
			wantErr:  "not a markdown",
		},
		{
			name: "uppercase extension",
			args: func(t *testing.T) []string {
				return []string{"html", "-i", sourceFile(t, "notes.MD", "x")}
			},
			wantCode: ExitIO,
			wantErr:  "not a markdown",
		},
		{
			name: "missing input file",
			args: func(t *testing.T) []string {
				return []string{"html", "-i", filepath.Join(t.TempDir(), "gone.md")}
			},
			wantCode: ExitIO,
		},
		{
			name:     "bare output with stdin",
			args:     func(t *testing.T) []string { return []string{"html", "-o"} },
			wantCode: ExitIO,
			wantErr:  "hint:",
		},
		{
			name: "extension mismatch",
			args: func(t *testing.T) []string {
				return []string{"html", "-o", filepath.Join(t.TempDir(), "page.txt")}
			},
			wantCode: ExitIO,
			wantErr:  "must end in .html",
		},
		{
			name: "missing parent",
			args: func(t *testing.T) []string {
				return []string{"html", "-o", filepath.Join(t.TempDir(), "nope", "page.html")}
			},
			wantCode: ExitIO,
			wantErr:  "never created",
		},
		{
			name:     "positional argument",
			args:     func(t *testing.T) []string { return []string{"html", "notes.md"} },
			wantCode: ExitUsage,
			wantErr:  "use -i",
		},
		{
			name:     "malformed metadata",
			args:     func(t *testing.T) []string { return []string{"html"} },
			stdin:    "---\n- a\n- b\n---\nbody",
			wantCode: ExitUsage,
			wantErr:  "malformed metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			writeConfig(t, "")
			te := newTestEnv(t)
			te.Stdin = strings.NewReader(tt.stdin)

			if code := te.run(tt.args(t)...); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tt.wantCode, te.stderr)
			}
			if !strings.Contains(te.stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want to contain %q", te.stderr, tt.wantErr)
			}
			if te.stdout.Len() != 0 {
				t.Errorf("stdout = %q, want nothing written on failure", te.stdout)
			}
		})
	}
}

func TestRunHTML_NeverOverwrites(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	src := sourceFile(t, "plan.md", "# Plan")
	out := filepath.Join(filepath.Dir(src), "plan.html")
	writeFile(t, out, "keep me")

	if code := te.run("html", "-i", src, "-o"); code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if got, _ := os.ReadFile(out); string(got) != "keep me" {
		t.Errorf("existing file = %q, want untouched", got)
	}
}

func TestRunHTML_RenderFailureRemovesOutput(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	src := sourceFile(t, "bad.md", "---\n[1, 2]\n---\n")

	if code := te.run("html", "-i", src, "-o"); code != ExitUsage {
		t.Errorf("exit code = %d, want %d; stderr: %s", code, ExitUsage, te.stderr)
	}
	assertNotExist(t, filepath.Join(filepath.Dir(src), "bad.html"))
}

// ---------------------------------------------------------------------------
// TestRunPDF - PDF export with a fake exporter
// ---------------------------------------------------------------------------

func TestRunPDF_File(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	src := sourceFile(t, "plan.md", "# Plan")

	if code := te.run("pdf", "-i", src, "-o"); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
	}

	want := filepath.Join(filepath.Dir(src), "plan.pdf")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	if string(data) != "%PDF-1.7 fake" {
		t.Errorf("PDF = %q, want exporter bytes", data)
	}

	in := te.exporter.In
	if in.Markdown != "# Plan" {
		t.Errorf("Markdown = %q, want file content", in.Markdown)
	}
	if in.SourceDir != filepath.Dir(src) {
		t.Errorf("SourceDir = %q, want %q", in.SourceDir, filepath.Dir(src))
	}
	if *in.Page != *jot.DefaultPageSettings() {
		t.Errorf("Page = %+v, want defaults", in.Page)
	}
}

func TestRunPDF_StdinToStdout(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)
	te.Stdin = strings.NewReader("# Streamed")

	if code := te.run("pdf"); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
	}
	if te.stdout.String() != "%PDF-1.7 fake" {
		t.Errorf("stdout = %q, want PDF bytes", te.stdout)
	}
	if !te.exporter.Target.IsStream() {
		t.Errorf("target = %v, want stream", te.exporter.Target)
	}
	if te.exporter.In.SourceDir != "." {
		t.Errorf("SourceDir = %q, want working directory", te.exporter.In.SourceDir)
	}
}

func TestRunPDF_PageSettings(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   jot.PageSettings
	}{
		{
			name: "defaults",
			want: jot.PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.5},
		},
		{
			name:   "from config",
			config: "[pdf]\npage_size = \"a4\"\norientation = \"landscape\"\nmargin = 1.0",
			want:   jot.PageSettings{Size: "a4", Orientation: "landscape", Margin: 1},
		},
		{
			name:   "flags override config",
			config: "[pdf]\npage_size = \"a4\"\nmargin = 1.0",
			args:   []string{"--page-size", "legal", "--margin", "2"},
			want:   jot.PageSettings{Size: "legal", Orientation: "portrait", Margin: 2},
		},
		{
			name: "short page size flag",
			args: []string{"-p", "a4", "--orientation=landscape"},
			want: jot.PageSettings{Size: "a4", Orientation: "landscape", Margin: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			writeConfig(t, tt.config)
			te := newTestEnv(t)
			te.Stdin = strings.NewReader("x")

			args := append([]string{"pdf"}, tt.args...)
			if code := te.run(args...); code != ExitSuccess {
				t.Fatalf("exit code = %d; stderr: %s", code, te.stderr)
			}
			if got := *te.exporter.In.Page; got != tt.want {
				t.Errorf("Page = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRunPDF_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		err      error
		wantCode int
	}{
		{"invalid page size", []string{"pdf", "--page-size", "a3"}, nil, ExitUsage},
		{"invalid orientation", []string{"pdf", "--orientation", "sideways"}, nil, ExitUsage},
		{"explicit zero margin", []string{"pdf", "--margin", "0"}, nil, ExitUsage},
		{"margin too large", []string{"pdf", "--margin=5"}, nil, ExitUsage},
		{"browser missing", []string{"pdf"}, &jot.ExportError{Op: "locate", Err: jot.ErrBrowserNotFound}, ExitBrowser},
		{"print failure", []string{"pdf"}, &jot.ExportError{Op: "print", Err: jot.ErrPDFGeneration}, ExitBrowser},
		{"unexpected failure", []string{"pdf"}, errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			writeConfig(t, "")
			te := newTestEnv(t)
			te.Stdin = strings.NewReader("x")
			te.exporter.Err = tt.err

			if code := te.run(tt.args...); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tt.wantCode, te.stderr)
			}
			if tt.err == nil && te.exporter.Called {
				t.Error("exporter called with invalid page settings")
			}
		})
	}
}

func TestRunPDF_ResolvesBeforeReading(t *testing.T) {
	isolateEnv(t)
	writeConfig(t, "")
	te := newTestEnv(t)

	code := te.run("pdf", "-i", sourceFile(t, "plan.md", "x"), "-o", filepath.Join(t.TempDir(), "plan.html"))
	if code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if te.exporter.Called {
		t.Error("exporter called after resolution failure")
	}
}
