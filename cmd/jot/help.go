package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message, which doubles as the usage of
// note creation.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jot [flags] [text]")
	fmt.Fprintln(w, "       jot <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture a note, then open it in your editor.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  html       Render markdown to HTML")
	fmt.Fprintln(w, "  pdf        Render markdown to PDF with a headless browser")
	fmt.Fprintln(w, "  doctor     Check the browser, editor and configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --no-edit             Do not open the editor, print the note path")
	fmt.Fprintln(w, "  -f, --force               Create an empty note with --no-edit")
	fmt.Fprintln(w, "  -s, --subdir <name>       Note subdirectory under root")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: <config dir>/jot/conf.toml)")
	fmt.Fprintln(w, "  -v, --verbose             Show progress on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes are stored as <root>/<subdir>/YYYY/MM/YYYYMMDD_HHMMSS.md.")
	fmt.Fprintln(w, "Run 'jot help <command>' for details on a specific command.")
}

func printOutputFlags(w io.Writer) {
	fmt.Fprintln(w, "  -i, --input <file>        Markdown file (default: stdin)")
	fmt.Fprintln(w, "  -o, --output[=<path>]     Output file or directory")
	fmt.Fprintln(w, "                            omitted: stdout")
	fmt.Fprintln(w, "                            bare: beside the input file")
	fmt.Fprintln(w, "                            path: existing directory or new file")
}

func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jot html [-i input.md] [-o[=path]] [--raw]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to a standalone HTML document. A leading metadata block")
	fmt.Fprintln(w, "is shown as a table. jot.css is inlined when found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printOutputFlags(w)
	fmt.Fprintln(w, "      --raw                 Output the HTML fragment only")
	fmt.Fprintln(w, "  -c, --config <path>       Config file")
	fmt.Fprintln(w, "  -v, --verbose             Show progress on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Existing files are never overwritten.")
}

func printPDFUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jot pdf [-i input.md] [-o[=path]] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to PDF through a Chrome-family browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printOutputFlags(w)
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "  -c, --config <path>       Config file")
	fmt.Fprintln(w, "  -v, --verbose             Show progress on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Browser executable to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the browser sandbox (Docker/CI)")
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jot doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the browser, editor, configuration and environment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output as JSON")
	fmt.Fprintln(w, "  -c, --config <path>       Config file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "html":
		printHTMLUsage(env.Stdout)
	case "pdf":
		printPDFUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: jot version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: jot help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
