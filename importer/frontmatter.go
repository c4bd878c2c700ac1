package importer

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// StripFrontMatter removes a front-matter block delimited by `---` fences
// at the very start of the input. A `---` block anywhere else is document
// content (a separator) and is left untouched. Unparseable front matter
// degrades to returning the input unchanged.
func StripFrontMatter(source string) string {
	if !strings.HasPrefix(source, "---") {
		return source
	}
	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return source
	}
	return string(rest)
}
