package jot

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-jot/internal/fileutil"
	"github.com/alnah/go-jot/internal/hints"
	"github.com/alnah/go-jot/internal/process"
)

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, path string, page *PageSettings) ([]byte, error)
}

// Compile-time interface check
var _ pdfRenderer = (*rodRenderer)(nil)

// locateBrowser is swapped in tests.
var locateBrowser = func() (string, bool) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin, true
	}
	return launcher.LookPath()
}

// LocateBrowser returns the browser executable PDF export will use:
// ROD_BROWSER_BIN when set, otherwise a Chrome-family browser found on the
// system. A browser is never downloaded.
func LocateBrowser() (string, error) {
	bin, ok := locateBrowser()
	if !ok {
		return "", &ExportError{Op: "locate", Err: fmt.Errorf("%w: %s", ErrBrowserNotFound, hints.BrowserNotFound)}
	}
	return bin, nil
}

// noSandbox reports whether the browser sandbox must be disabled,
// which CI runners and containers require.
func noSandbox() bool {
	return os.Getenv("ROD_NO_SANDBOX") == "1" || hints.InCI() || hints.IsInContainer()
}

// rodRenderer prints an HTML file to PDF with a headless browser driven by go-rod.
// Each call launches and tears down its own browser.
type rodRenderer struct{}

// RenderFromFile opens a local HTML file in a headless browser and prints it.
// It blocks until the page's root element exists; there is no timeout, ctx
// cancellation stops it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, path string, page *PageSettings) ([]byte, error) {
	bin, err := LocateBrowser()
	if err != nil {
		return nil, err
	}

	l := launcher.New().Context(ctx).Bin(bin).Headless(true)
	if noSandbox() {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, &ExportError{Op: "launch", Err: fmt.Errorf("%w: %v", ErrBrowserConnect, err)}
	}
	defer func() {
		// Chrome spawns helpers in its own process group; kill them all.
		process.KillProcessGroup(l.PID())
		l.Kill()
	}()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, &ExportError{Op: "connect", Err: fmt.Errorf("%w: %v", ErrBrowserConnect, err)}
	}
	defer func() { _ = browser.Close() }()

	p, err := browser.Page(proto.TargetCreateTarget{URL: fileutil.FileURL(path).String()})
	if err != nil {
		return nil, &ExportError{Op: "open page", Err: fmt.Errorf("%w: %v", ErrPageCreate, err)}
	}

	if _, err := p.Element("html"); err != nil {
		return nil, &ExportError{Op: "load page", Err: fmt.Errorf("%w: %v", ErrPageLoad, err)}
	}

	reader, err := p.PDF(printOptions(page))
	if err != nil {
		return nil, &ExportError{Op: "print", Err: fmt.Errorf("%w: %v", ErrPDFGeneration, err)}
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &ExportError{Op: "print", Err: fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)}
	}
	return data, nil
}

// printOptions converts page settings to DevTools print parameters.
func printOptions(page *PageSettings) *proto.PagePrintToPDF {
	width, height := page.Dimensions()
	margin := page.margin()
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
