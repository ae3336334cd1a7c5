package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-reviewer/internal/testutil"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestPDFParserService_ExtractText(t *testing.T) {
	parser := NewPDFParserService()

	t.Run("single page", func(t *testing.T) {
		path := writeFile(t, "hello.pdf", testutil.BuildPDF("Hello"))

		text, err := parser.ExtractText(path)
		require.NoError(t, err)
		assert.Equal(t, "Hello", text)
	})

	t.Run("pages keep document order", func(t *testing.T) {
		path := writeFile(t, "two.pdf", testutil.BuildPDF("First page", "Second page"))

		text, err := parser.ExtractText(path)
		require.NoError(t, err)

		first := strings.Index(text, "First page")
		second := strings.Index(text, "Second page")
		require.NotEqual(t, -1, first)
		require.NotEqual(t, -1, second)
		assert.Less(t, first, second)
		assert.Equal(t, strings.TrimSpace(text), text)
	})

	t.Run("invalid pdf", func(t *testing.T) {
		path := writeFile(t, "broken.pdf", []byte("this is not a pdf document"))

		_, err := parser.ExtractText(path)
		assert.Error(t, err)
	})

	t.Run("mismatched xref", func(t *testing.T) {
		path := writeFile(t, "xref.pdf", testutil.BuildMismatchedXrefPDF("Hello"))

		var err error
		require.NotPanics(t, func() {
			_, err = parser.ExtractText(path)
		})
		assert.ErrorContains(t, err, "malformed PDF")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
		assert.Error(t, err)
	})
}

func TestPDFParserService_ExtractTextWithMetaData(t *testing.T) {
	parser := NewPDFParserService()
	path := writeFile(t, "three.pdf", testutil.BuildPDF("One", "Two", "Three"))

	content, err := parser.ExtractTextWithMetaData(path)
	require.NoError(t, err)

	assert.Equal(t, 3, content.PageCount)
	assert.Equal(t, path, content.FilePath)
	for _, word := range []string{"One", "Two", "Three"} {
		assert.Contains(t, content.Text, word)
	}
}
