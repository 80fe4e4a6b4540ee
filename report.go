package wordmode

import (
	"fmt"
	"io"
	"sync"
)

// ReportKind identifies what a Report describes.
type ReportKind int

const (
	// KindResult carries the winning word and its count.
	KindResult ReportKind = iota

	// KindEmpty means the queue drained without a single word.
	KindEmpty

	// KindFailure means the input could not be opened or read.
	KindFailure

	// KindCancelled means the consumer was cancelled before draining the queue.
	KindCancelled
)

func (k ReportKind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindEmpty:
		return "empty"
	case KindFailure:
		return "failure"
	case KindCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Report is a message for the user about the outcome of a run.
type Report struct {
	Kind  ReportKind
	RunID string

	// Set for KindResult.
	Word  string
	Count int

	// Number of words consumed and number of distinct words. Set for
	// KindResult and KindEmpty.
	Total    int
	Distinct int

	// Set for KindFailure and KindCancelled.
	Err error
}

// Reporter receives reports and renders them to the user.
type Reporter interface {
	Report(r Report)
}

// ReporterFunc adapts a function into a Reporter.
type ReporterFunc func(r Report)

func (f ReporterFunc) Report(r Report) {
	f(r)
}

// MultiReporter forwards every report to each of its reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(r Report) {
	for _, rep := range m {
		rep.Report(r)
	}
}

// TextReporter writes reports as plain text lines. It is safe for use by
// both workers at once.
type TextReporter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTextReporter creates a TextReporter writing to out.
func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{out: out}
}

func (t *TextReporter) Report(r Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch r.Kind {
	case KindResult:
		fmt.Fprintf(t.out, "\nThe most frequent word in the file is %q.\nFrequency: %d\n", r.Word, r.Count)
	case KindEmpty:
		fmt.Fprintln(t.out, "No words were processed.")
	case KindFailure:
		fmt.Fprintf(t.out, "Error: %v\n", r.Err)
	case KindCancelled:
		fmt.Fprintln(t.out, "Consumer interrupted.")
	}
}

// Collector is a Reporter that keeps every report it receives. It is mostly
// useful in tests and for callers that want to inspect a run afterwards.
type Collector struct {
	mu      sync.Mutex
	reports []Report
}

func (c *Collector) Report(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, r)
}

// Reports returns a copy of the reports received so far.
func (c *Collector) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Report(nil), c.reports...)
}
