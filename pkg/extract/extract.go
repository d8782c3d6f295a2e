package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnsupportedTypeError reports an upload with a file extension the extractor
// cannot handle.
type UnsupportedTypeError struct {
	Ext string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.Ext)
}

// Extractor converts uploaded files into plain text. Plain-text and Markdown
// files pass through unchanged; HTML is reduced to its visible text.
type Extractor struct{}

func New() Extractor {
	return Extractor{}
}

// Supported reports whether the file extension is one the extractor handles.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

func (Extractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".markdown":
		return string(data), nil
	case ".html", ".htm":
		return fromHTML(data)
	default:
		return "", UnsupportedTypeError{Ext: ext}
	}
}

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, pre, blockquote").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	// Pages without block-level markup still have body text worth keeping.
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}

	return strings.Join(parts, "\n\n"), nil
}
