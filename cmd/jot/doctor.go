package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	jot "github.com/alnah/go-jot"
	"github.com/alnah/go-jot/internal/fileutil"
	"github.com/alnah/go-jot/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // statusReady, statusWarnings or statusErrors
	Browser  browserInfo `json:"browser"`
	Editor   editorInfo  `json:"editor"`
	Config   configInfo  `json:"config"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// browserInfo holds browser detection results.
type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type editorInfo struct {
	Command string `json:"command,omitempty"`
	Path    string `json:"path,omitempty"`
	Found   bool   `json:"found"`
}

type configInfo struct {
	Path       string `json:"path,omitempty"` // empty when built-in defaults apply
	Valid      bool   `json:"valid"`
	NotesDir   string `json:"notes_dir,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// runDoctorCmd reports whether notes can be created and exported on this
// machine. Warnings still exit 0; errors exit 1.
func runDoctorCmd(args []string, env *Environment) int {
	var asJSON bool
	var configPath string
	fs := newFlagSet("doctor", env.Stdout, printDoctorUsage)
	fs.BoolVar(&asJSON, "json", false, "output as JSON")
	fs.StringVarP(&configPath, "config", "c", "", "config file path")
	if err := parse(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "jot: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(configPath)
	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(configPath string) *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}
	for _, check := range []func(*doctorResult){
		checkEnvironment, // sandbox reporting in checkBrowser reads these
		checkBrowser,
		func(r *doctorResult) { checkConfig(r, configPath) },
		checkSystem,
	} {
		check(r)
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// checkBrowser finds the browser PDF export would launch.
func checkBrowser(r *doctorResult) {
	bin, err := jot.LocateBrowser()
	if err != nil {
		r.fail("no Chromium-family browser found; install one or set ROD_BROWSER_BIN")
		return
	}
	if _, err := os.Stat(bin); err != nil {
		r.fail("browser %s is not accessible: %v", bin, err)
		return
	}
	r.Browser.Found = true
	r.Browser.Path = bin

	out, err := exec.Command(bin, "--version").Output() // #nosec G204 -- path comes from browser discovery
	if err != nil {
		r.warn("browser version unavailable: %v", err)
	} else {
		r.Browser.Version = strings.TrimSpace(string(out))
	}

	// Same decision the exporter makes at launch.
	r.Browser.Sandbox = r.Env.NoSandbox != "1" && !r.Env.CI && !hints.IsInContainer()
}

// checkConfig loads the configuration and looks up the editor it names.
func checkConfig(r *doctorResult, configPath string) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		r.fail("config: %v", err)
		return
	}
	r.Config = configInfo{
		Path:       cfg.Path,
		Valid:      true,
		NotesDir:   cfg.BaseDir(),
		Stylesheet: cfg.CSS,
	}

	r.Editor.Command = cfg.Editor
	if fields := strings.Fields(cfg.Editor); len(fields) > 0 {
		if path, err := exec.LookPath(fields[0]); err == nil {
			r.Editor.Found = true
			r.Editor.Path = path
		}
	}
	if !r.Editor.Found {
		r.warn("editor %q not on PATH; set editor in conf.toml or JOT_EDITOR, or use --no-edit", cfg.Editor)
	}
}

func checkEnvironment(r *doctorResult) {
	r.Env.ContainerHint = hints.ContainerSignal()
	r.Env.Container = hints.IsInContainer()
	r.Env.CI = hints.InCI()
	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.warn("running in a container or CI without ROD_NO_SANDBOX=1; set it if the browser fails to start")
	}
}

// checkSystem verifies that PDF export can create its temp document.
func checkSystem(r *doctorResult) {
	tmp, err := fileutil.NewTempFile("html")
	if err != nil {
		r.fail("temp directory %s not writable: %v", os.TempDir(), err)
		return
	}
	defer tmp.Release()
	if err := tmp.Write([]byte("<html></html>")); err != nil {
		r.fail("temp directory %s not writable: %v", os.TempDir(), err)
		return
	}
	r.System.TempWritable = true
}

// printDoctorResult writes the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	item := func(level, format string, args ...any) {
		fmt.Fprintf(w, "  %-7s %s\n", "["+level+"]", fmt.Sprintf(format, args...))
	}
	section := func(title string, body func()) {
		fmt.Fprintln(w, title)
		body()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "jot doctor\n\n")

	section("Browser", func() {
		if !r.Browser.Found {
			item("ERROR", "not found")
			return
		}
		item("OK", "path: %s", r.Browser.Path)
		if r.Browser.Version != "" {
			item("OK", "version: %s", r.Browser.Version)
		}
		sandbox := "enabled"
		if !r.Browser.Sandbox {
			sandbox = "disabled"
		}
		item("OK", "sandbox: %s", sandbox)
	})

	section("Configuration", func() {
		if !r.Config.Valid {
			item("ERROR", "invalid")
			return
		}
		file := r.Config.Path
		if file == "" {
			file = "none (built-in defaults)"
		}
		item("OK", "file: %s", file)
		item("OK", "notes: %s", r.Config.NotesDir)
		if r.Config.Stylesheet != "" {
			item("OK", "stylesheet: %s", r.Config.Stylesheet)
		}
		if r.Editor.Found {
			item("OK", "editor: %s (%s)", r.Editor.Command, r.Editor.Path)
		} else {
			item("WARN", "editor: %s not found", r.Editor.Command)
		}
	})

	section("Environment", func() {
		item("OK", "platform: %s/%s", r.Env.OS, r.Env.Arch)
		if r.Env.Container {
			item("OK", "container: %s", r.Env.ContainerHint)
		}
		if r.Env.CI {
			item("OK", "ci: detected")
		}
	})

	section("System", func() {
		if r.System.TempWritable {
			item("OK", "temp directory: writable")
		} else {
			item("ERROR", "temp directory: not writable")
		}
	})

	for _, list := range []struct {
		title, level string
		msgs         []string
	}{
		{"Warnings", "WARN", r.Warnings},
		{"Errors", "ERROR", r.Errors},
	} {
		if len(list.msgs) == 0 {
			continue
		}
		section(list.title+":", func() {
			for _, msg := range list.msgs {
				item(list.level, "%s", msg)
			}
		})
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: not ready, see errors above")
	}
}
