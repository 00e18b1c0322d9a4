package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	jot "github.com/alnah/go-jot"
)

// ErrUsage marks invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// besideInput is the value a bare -o/--output receives. It cannot be a
// real path because paths never contain NUL.
const besideInput = "\x00"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	verbose bool
}

// outputValue is the tri-state --output flag: omitted, bare or with a path.
type outputValue struct {
	hint jot.OutputHint
}

func (o *outputValue) String() string {
	if o.hint.Kind() == jot.HintExplicit {
		return o.hint.Path()
	}
	return ""
}

func (o *outputValue) Set(s string) error {
	if s == besideInput {
		o.hint = jot.ImplicitOutput()
		return nil
	}
	o.hint = jot.ExplicitOutput(s)
	return nil
}

func (o *outputValue) Type() string { return "path" }

// createFlags holds flags for note creation.
type createFlags struct {
	common commonFlags
	noEdit bool
	force  bool
	subdir string
}

// renderFlags holds flags shared by html and pdf.
type renderFlags struct {
	common commonFlags
	input  string
	output outputValue
}

// htmlFlags holds flags for the html command.
type htmlFlags struct {
	renderFlags
	raw bool
}

// pdfFlags holds flags for the pdf command.
type pdfFlags struct {
	renderFlags
	pageSize    string
	orientation string
	margin      float64
	marginSet   bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress on stderr")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "markdown file (default: stdin)")
	out := fs.VarPF(&f.output, "output", "o", "output file or directory; bare: beside the input")
	out.NoOptDefVal = besideInput
	addCommonFlags(fs, &f.common)
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w on -h/--help.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

func parseCreateFlags(args []string, w io.Writer) (*createFlags, []string, error) {
	f := &createFlags{}
	fs := newFlagSet("jot", w, printUsage)
	fs.BoolVarP(&f.noEdit, "no-edit", "n", false, "do not open the editor, print the note path")
	fs.BoolVarP(&f.force, "force", "f", false, "create an empty note with --no-edit")
	fs.StringVarP(&f.subdir, "subdir", "s", "", "note subdirectory under root")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseHTMLFlags(args []string, w io.Writer) (*htmlFlags, error) {
	f := &htmlFlags{}
	fs := newFlagSet("html", w, printHTMLUsage)
	addRenderFlags(fs, &f.renderFlags)
	fs.BoolVar(&f.raw, "raw", false, "output the HTML fragment only")

	if err := parse(fs, normalizeOutputArgs(args)); err != nil {
		return nil, err
	}
	if err := noArgs(fs); err != nil {
		return nil, err
	}
	return f, nil
}

func parsePDFFlags(args []string, w io.Writer) (*pdfFlags, error) {
	f := &pdfFlags{}
	fs := newFlagSet("pdf", w, printPDFUsage)
	addRenderFlags(fs, &f.renderFlags)
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "margin in inches (0.25-3.0)")

	if err := parse(fs, normalizeOutputArgs(args)); err != nil {
		return nil, err
	}
	if err := noArgs(fs); err != nil {
		return nil, err
	}
	f.marginSet = fs.Changed("margin")
	return f, nil
}

// parse runs fs.Parse and marks failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func noArgs(fs *flag.FlagSet) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q (use -i for the input file)", ErrUsage, fs.Arg(0))
	}
	return nil
}

// normalizeOutputArgs rewrites "-o PATH" and "--output PATH" to
// "--output=PATH". With NoOptDefVal set, pflag would otherwise treat PATH as
// a positional argument. A following argument that starts with "-" leaves
// the flag bare.
func normalizeOutputArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if (a == "-o" || a == "--output") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, "--output="+args[i+1])
			i++
			continue
		}
		out = append(out, a)
	}
	return out
}
