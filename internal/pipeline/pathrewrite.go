package pipeline

import (
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-jot/internal/fileutil"
)

// RewriteRelativeLinks makes relative img[src] and a[href] references in a
// full HTML document absolute file:// URLs rooted at baseDir.
//
// PDF export loads the document from the temp directory, so links relative to
// the note would otherwise resolve against the wrong place. URLs with a
// scheme or host, fragments and absolute paths are left alone. An empty
// baseDir returns doc unchanged.
func RewriteRelativeLinks(doc []byte, baseDir string) ([]byte, error) {
	if baseDir == "" {
		return doc, nil
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", baseDir, err)
	}

	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	walk(root, base)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), nil
}

func walk(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteLink(n, "src", base)
		case atom.A:
			rewriteLink(n, "href", base)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, base)
	}
}

func rewriteLink(n *html.Node, key, base string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace != "" || n.Attr[i].Key != key {
			continue
		}
		if abs, ok := resolveLocal(n.Attr[i].Val, base); ok {
			n.Attr[i].Val = abs
		}
	}
}

// resolveLocal returns the file:// URL for a relative reference, keeping
// any query or fragment. ok is false when ref is not a relative local path.
func resolveLocal(ref, base string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") || filepath.IsAbs(ref) {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	out := fileutil.FileURL(filepath.Join(base, filepath.FromSlash(u.Path)))
	out.RawQuery = u.RawQuery
	out.Fragment = u.Fragment
	return out.String(), true
}
