package mdfw

// SourceFile is one named Markdown source in a batch-import request.
type SourceFile struct {
	Name    string
	Content string
}

// ImportTask pairs one source file with one destination. Either Target is a
// matched text element, or Create is set and the task materializes a new
// element at At/Index first (removing Displaced if a differently-typed
// element held the name). Tasks are consumed once and never persisted.
type ImportTask struct {
	File      SourceFile
	Target    TextElement // nil when Create is set
	Create    bool
	At        Position
	Index     int
	Displaced Element // non-text element to remove when creating, may be nil
}

// Outcome summarizes a batch run for the status message.
type Outcome string

const (
	OutcomeUpdated   Outcome = "updated"    // every task succeeded
	OutcomePartial   Outcome = "partial"    // some tasks failed
	OutcomeFailed    Outcome = "failed"     // every task failed
	OutcomeNoMatches Outcome = "no_matches" // nothing to do: zero tasks
)

// Result aggregates a batch run. Err collects per-task failures for callers
// that want more than counts; it is nil when Failed is zero.
type Result struct {
	Succeeded int
	Failed    int
	Err       error
}

// Outcome derives the aggregate outcome from the counts. A batch that found
// no targets is distinct from a batch whose tasks all failed.
func (r Result) Outcome() Outcome {
	switch {
	case r.Succeeded == 0 && r.Failed == 0:
		return OutcomeNoMatches
	case r.Succeeded == 0:
		return OutcomeFailed
	case r.Failed > 0:
		return OutcomePartial
	default:
		return OutcomeUpdated
	}
}
