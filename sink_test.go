package jot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTarget_Open - Sink selection and create-new discipline
// ---------------------------------------------------------------------------

func TestTarget_Open_Stream(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sink, err := StreamTarget().Open(&out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := sink.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if out.String() != "hello" {
		t.Errorf("stdout = %q, want %q", out.String(), "hello")
	}
}

func TestTarget_Open_StreamAbort(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sink, _ := StreamTarget().Open(&out)
	_, _ = sink.Write([]byte("partial"))
	if err := sink.Abort(); err != nil {
		t.Fatalf("Abort() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing after abort", out.String())
	}
}

func TestTarget_Open_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	sink, err := Target{path: path}.Open(nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := sink.Write([]byte("<p>x</p>")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<p>x</p>" {
		t.Errorf("file = %q, want %q", got, "<p>x</p>")
	}
}

func TestTarget_Open_FileAbortRemoves(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.pdf")
	sink, err := Target{path: path}.Open(nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	_, _ = sink.Write([]byte("%PDF"))

	if err := sink.Abort(); err != nil {
		t.Fatalf("Abort() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Abort()")
	}
	if err := sink.Abort(); err != nil {
		t.Errorf("second Abort() error = %v, want nil", err)
	}
}

func TestTarget_Open_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.html")
	if err := os.WriteFile(existing, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"destination exists", existing, ErrDestinationExists},
		{"parent removed", filepath.Join(dir, "gone", "x.html"), ErrParentNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Target{path: tt.path}.Open(nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
			}
			var pathErr *PathError
			if !errors.As(err, &pathErr) || pathErr.Path != tt.path {
				t.Errorf("Open() error = %v, want *PathError for %s", err, tt.path)
			}
		})
	}
}

func TestTarget_Open_NeverOverwrites(t *testing.T) {
	t.Parallel()

	existing := filepath.Join(t.TempDir(), "exists.pdf")
	if err := os.WriteFile(existing, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _ = Target{path: existing}.Open(nil)

	got, _ := os.ReadFile(existing)
	if string(got) != "keep" {
		t.Errorf("existing file modified: %q", got)
	}
}
