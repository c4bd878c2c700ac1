package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kocheck/MarkDown-For-What/importer"
)

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("strips a leading fence", func(t *testing.T) {
		t.Parallel()
		src := "---\ntitle: Doc\ndraft: true\n---\n\n# Hello"
		assert.Equal(t, "\n# Hello", importer.StripFrontMatter(src))
	})

	t.Run("leaves input without front matter untouched", func(t *testing.T) {
		t.Parallel()
		src := "# Hello\n\nbody"
		assert.Equal(t, src, importer.StripFrontMatter(src))
	})

	t.Run("a fence mid-document is content, not front matter", func(t *testing.T) {
		t.Parallel()
		src := "# Hello\n\n---\n\nafter the rule"
		assert.Equal(t, src, importer.StripFrontMatter(src))
	})

	t.Run("unparseable front matter degrades to the raw input", func(t *testing.T) {
		t.Parallel()
		src := "---\n: [ not yaml\n---\nbody"
		assert.Equal(t, src, importer.StripFrontMatter(src))
	})

	t.Run("empty input passes through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", importer.StripFrontMatter(""))
	})
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Usage", importer.BaseName("Usage.md"))
	assert.Equal(t, "Notes", importer.BaseName("Notes.TXT"), "suffix strip is case-insensitive")
	assert.Equal(t, "readme", importer.BaseName("readme.markdown"))
	assert.Equal(t, "archive.tar", importer.BaseName("archive.tar"), "unknown suffixes stay")
	assert.Equal(t, "Usage", importer.BaseName("Usage"))
}
