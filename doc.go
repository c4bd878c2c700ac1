// Package mdfw converts Markdown source text into styled text runs that can
// be written into the text elements of a host document, and reconciles
// batches of named source files against named target elements.
//
// The module path contains hyphens but Go package names cannot, so the
// package is named mdfw:
//
//	import mdfw "github.com/kocheck/MarkDown-For-What" // package mdfw
//
// The root package holds the domain model (Block, StyledSegment,
// StyleContext, RangeInstruction) and the narrow interfaces the engine
// consumes from its host (Document, TextElement, FontService). Behavior
// lives in subpackages: goldmark extracts blocks from Markdown, style
// resolves fonts and computes range instructions, importer matches files to
// elements and runs the conversion pipeline, memdoc is an in-memory host
// for tests and dry runs.
package mdfw
