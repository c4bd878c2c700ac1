package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	mdfw "github.com/kocheck/MarkDown-For-What"
	mdfwjson "github.com/kocheck/MarkDown-For-What/json"
)

// collectFiles assembles the batch: either a JSON batch request, or the
// files matched by glob patterns, read in sorted path order. File names in
// the batch are base names — element matching works on names, not paths.
func collectFiles(batchPath string, patterns []string) ([]mdfw.SourceFile, error) {
	if batchPath != "" {
		return readBatch(batchPath)
	}

	var paths []string
	seen := map[string]bool{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	files := make([]mdfw.SourceFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, mdfw.SourceFile{Name: filepath.Base(path), Content: string(data)})
	}
	return files, nil
}

func readBatch(path string) ([]mdfw.SourceFile, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open batch request: %w", err)
		}
		defer f.Close()
		r = f
	}
	return mdfwjson.ReadBatch(r)
}
