package wordmode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextReporter(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{"result", Report{Kind: KindResult, Word: "hello", Count: 4},
			"\nThe most frequent word in the file is \"hello\".\nFrequency: 4\n"},
		{"empty", Report{Kind: KindEmpty}, "No words were processed.\n"},
		{"failure", Report{Kind: KindFailure, Err: errors.New("boom")}, "Error: boom\n"},
		{"cancelled", Report{Kind: KindCancelled, Err: ErrCancelled}, "Consumer interrupted.\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			NewTextReporter(&out).Report(tc.report)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestMultiReporterOrder(t *testing.T) {
	var seen []string
	rep := MultiReporter{
		ReporterFunc(func(r Report) { seen = append(seen, "first:"+r.Kind.String()) }),
		ReporterFunc(func(r Report) { seen = append(seen, "second:"+r.Kind.String()) }),
	}
	rep.Report(Report{Kind: KindEmpty})
	assert.Equal(t, []string{"first:empty", "second:empty"}, seen)
}

func TestReportKindString(t *testing.T) {
	assert.Equal(t, "result", KindResult.String())
	assert.Equal(t, "failure", KindFailure.String())
	assert.Equal(t, "unknown", ReportKind(9).String())
}
