package main

import (
	"context"
	"fmt"
	"strings"

	jot "github.com/alnah/go-jot"
	"github.com/alnah/go-jot/internal/editor"
)

// abortMessage is printed when --no-edit would leave an empty note.
const abortMessage = "No edit was set and no text was provided. Aborting."

// runCreate writes a new note and opens it in the editor, or prints its
// path with --no-edit. The note is kept when the editor fails.
func runCreate(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseCreateFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	// An empty argument still counts as provided text.
	hasText := len(rest) > 0
	if f.noEdit && !f.force && !hasText {
		fmt.Fprintln(env.Stderr, abortMessage)
		return nil
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	if f.subdir != "" {
		cfg.Subdir = f.subdir
	}
	if f.common.verbose && cfg.Path != "" {
		fmt.Fprintf(env.Stderr, "Config: %s\n", cfg.Path)
	}

	w := &jot.NoteWriter{
		Base:      cfg.BaseDir(),
		Generator: "jot " + Version,
		Now:       env.Now,
	}
	note, err := w.Write(strings.Join(rest, " "))
	if err != nil {
		return err
	}

	if f.noEdit {
		fmt.Fprintln(env.Stdout, note.Path)
		return nil
	}

	jump := editor.ParseJump(cfg.Jump, cfg.JumpStyle)
	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Created %s\nOpening %s (jump: %s)\n", note.Path, cfg.Editor, jump)
	}
	return env.OpenEditor(ctx, cfg.Editor, jump, note.Path)
}
