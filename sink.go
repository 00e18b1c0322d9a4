package jot

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/alnah/go-jot/internal/fileutil"
)

// Sink receives rendered output. Renderers write to it without knowing
// whether it is standard output or a file.
type Sink interface {
	io.Writer
	// Close flushes and finishes the output.
	Close() error
	// Abort discards the output. A file sink removes its file so no partial
	// artifact is left behind.
	Abort() error
}

// Open returns a Sink for the target. The stream target writes to stdout.
// A file target is created new: an existing destination fails with
// ErrDestinationExists and is never overwritten.
func (t Target) Open(stdout io.Writer) (Sink, error) {
	if t.IsStream() {
		return &streamSink{buf: bufio.NewWriter(stdout)}, nil
	}

	f, err := fileutil.CreateNew(t.path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			err = ErrDestinationExists
		case errors.Is(err, fs.ErrNotExist):
			err = ErrParentNotFound
		}
		return nil, &PathError{Op: "open", Path: t.path, Err: err}
	}
	return &fileSink{f: f, buf: bufio.NewWriter(f)}, nil
}

type streamSink struct {
	buf *bufio.Writer
}

func (s *streamSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *streamSink) Close() error { return s.buf.Flush() }

// Abort drops unflushed output; anything already flushed stays written.
func (s *streamSink) Abort() error {
	s.buf.Reset(io.Discard)
	return nil
}

type fileSink struct {
	f      *os.File
	buf    *bufio.Writer
	closed bool
}

func (s *fileSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *fileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	flushErr := s.buf.Flush()
	closeErr := s.f.Close()
	if flushErr != nil {
		return &PathError{Op: "write", Path: s.f.Name(), Err: flushErr}
	}
	if closeErr != nil {
		return &PathError{Op: "write", Path: s.f.Name(), Err: closeErr}
	}
	return nil
}

func (s *fileSink) Abort() error {
	if !s.closed {
		s.closed = true
		_ = s.f.Close()
	}
	if err := os.Remove(s.f.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
