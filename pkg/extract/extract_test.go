package extract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/brief/pkg/extract"
)

func TestExtract_PlainTextPassesThrough(t *testing.T) {
	e := extract.New()

	for _, name := range []string{"notes.txt", "readme.md", "doc.markdown"} {
		text, err := e.Extract(name, []byte("plain content"))

		require.NoError(t, err)
		assert.Equal(t, "plain content", text)
	}
}

func TestExtract_HTMLKeepsVisibleText(t *testing.T) {
	html := `<html><head>
		<title>Ignored</title>
		<style>body { color: red; }</style>
	</head><body>
		<script>alert("nope")</script>
		<h1>Quarterly Report</h1>
		<p>Revenue grew 12%.</p>
		<ul><li>Hire two engineers</li></ul>
	</body></html>`

	text, err := extract.New().Extract("report.html", []byte(html))

	require.NoError(t, err)
	assert.Contains(t, text, "Quarterly Report")
	assert.Contains(t, text, "Revenue grew 12%.")
	assert.Contains(t, text, "Hire two engineers")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := extract.New().Extract("slides.pptx", []byte("binary"))

	var typeErr extract.UnsupportedTypeError
	require.Error(t, err)
	assert.True(t, errors.As(err, &typeErr))
	assert.Equal(t, ".pptx", typeErr.Ext)
}

func TestSupported(t *testing.T) {
	assert.True(t, extract.Supported("doc.txt"))
	assert.True(t, extract.Supported("doc.HTML"))
	assert.False(t, extract.Supported("doc.pdf"))
	assert.False(t, extract.Supported("no-extension"))
}
