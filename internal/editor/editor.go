// Package editor opens a note in the user's editor and waits for it to exit.
//
// The editor command may carry its own arguments ("code --wait"). The note
// path is appended, followed by an optional jump argument that moves the
// cursor to the end of the note:
//
//	JumpNone  vim note.md
//	JumpEnd   vim note.md +
//	JumpLine  vim note.md +7
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Sentinel errors for editor operations.
var (
	ErrEditorNotFound = errors.New("editor not found")
	ErrEmptyCommand   = errors.New("editor command is empty")
)

// JumpMode selects the cursor-positioning argument passed after the path.
type JumpMode int

const (
	JumpNone JumpMode = iota
	JumpEnd
	JumpLine
)

// String returns the configuration name of the mode.
func (m JumpMode) String() string {
	switch m {
	case JumpEnd:
		return "end"
	case JumpLine:
		return "line"
	default:
		return "none"
	}
}

// ParseJump maps the jump and jump_style config keys to a JumpMode.
// Unknown styles fall back to JumpEnd.
func ParseJump(enabled bool, style string) JumpMode {
	if !enabled {
		return JumpNone
	}
	if style == "line" {
		return JumpLine
	}
	return JumpEnd
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Editor runs an editor command attached to the terminal.
// Nil streams default to the process's own.
type Editor struct {
	Command string
	Jump    JumpMode
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Argv returns the command line used to open path: the split command,
// the path and the jump argument if any.
func (e *Editor) Argv(path string) ([]string, error) {
	argv := strings.Fields(e.Command)
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	argv = append(argv, path)

	switch e.Jump {
	case JumpEnd:
		argv = append(argv, "+")
	case JumpLine:
		n, err := countLines(path)
		if err != nil {
			return nil, err
		}
		argv = append(argv, "+"+strconv.Itoa(n))
	}
	return argv, nil
}

// Open launches the editor on path and blocks until it exits.
// A missing executable returns ErrEditorNotFound.
func (e *Editor) Open(ctx context.Context, path string) error {
	argv, err := e.Argv(path)
	if err != nil {
		return err
	}

	bin, err := lookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEditorNotFound, argv[0])
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...) // #nosec G204 -- editor is user-configured
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if e.Stdin != nil {
		cmd.Stdin = e.Stdin
	}
	if e.Stdout != nil {
		cmd.Stdout = e.Stdout
	}
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", argv[0], err)
	}
	return nil
}

// countLines returns the number of lines in the file at path.
// A final line without a trailing newline still counts.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the note just written
	if err != nil {
		return 0, fmt.Errorf("counting lines: %w", err)
	}
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n, nil
}
