//go:build linux || darwin

package wordmode

import (
	"context"
	"log"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFifo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.fifo")
	require.NoError(t, syscall.Mkfifo(path, 0o600))
	return path
}

func TestFileSourceOpenHonoursContext(t *testing.T) {
	log.Println("============== TestFileSourceOpenHonoursContext ================")
	// Opening a FIFO for reading blocks until a writer shows up
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	source := FileSource(makeFifo(t))
	done := make(chan error, 1)
	go func() {
		_, err := source.Open(ctx)
		done <- err
	}()
	assert.ErrorIs(t, withTimeout(t, done), context.DeadlineExceeded)
}

func TestPipelineCancelWhileOpeningFifo(t *testing.T) {
	log.Println("============== TestPipelineCancelWhileOpeningFifo ================")
	reports := &Collector{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	source := FileSource(makeFifo(t))
	done := make(chan error, 1)
	go func() {
		_, err := NewPipeline(source,
			WithLogger(quietLogger()), WithReporter(reports)).Run(ctx)
		done <- err
	}()

	assert.ErrorIs(t, withTimeout(t, done), ErrCancelled)
	for _, r := range reports.Reports() {
		assert.NotEqual(t, KindFailure, r.Kind, "a cancelled open is not an input failure")
	}
}
