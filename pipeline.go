package wordmode

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyRunning is returned by Pipeline.Run while another run is in progress.
var ErrAlreadyRunning = errors.New("pipeline already running")

var errStopped = errors.New("pipeline stopped")

// Pipeline wires a Source to one Producer and one Consumer over a fresh
// Queue and runs both concurrently until the consumer reports.
type Pipeline struct {
	source   Source
	reporter Reporter
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelCauseFunc
}

// PipelineOption is a functional option for configuring a Pipeline
type PipelineOption func(*Pipeline)

// WithReporter sets the reporter that receives every report of a run
func WithReporter(reporter Reporter) PipelineOption {
	return func(p *Pipeline) {
		p.reporter = reporter
	}
}

// WithLogger sets the logger the pipeline and its workers log to
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a pipeline reading from source.
func NewPipeline(source Source, opts ...PipelineOption) *Pipeline {
	out := &Pipeline{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// Run starts the producer and consumer and waits for both to finish.
//
// The returned Report is the consumer's terminal report. Input failures do
// not make Run fail: they are sent to the reporter and the consumer still
// reports whatever was queued. The only error is cancellation, through ctx
// or Stop, which wraps ErrCancelled.
//
// Once the run is cancelled Run does not wait for a producer that is still
// blocked reading its input. That producer closes its queue in the
// background when the read gives up.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return Report{}, ErrAlreadyRunning
	}
	p.running = true
	p.cancel = cancel
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.running = false
		p.cancel = nil
	}()

	runID := uuid.New().String()
	logger := p.logger.With("run", runID)
	reporter := ReporterFunc(func(r Report) {
		r.RunID = runID
		if p.reporter != nil {
			p.reporter.Report(r)
		}
	})

	queue := NewQueue[string]()
	producer := NewProducer(p.source, queue,
		WithProducerLogger(logger.With("worker", "producer")),
		WithProducerReporter(reporter))
	consumer := NewConsumer(queue,
		WithConsumerLogger(logger.With("worker", "consumer")),
		WithConsumerReporter(reporter))

	logger.Info("run started", "source", p.source.Name())

	// The producer runs outside the group: a read that closing the input
	// cannot interrupt must not keep a cancelled run from returning. Its
	// cleanup still closes the queue whenever that read gives up.
	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		if err := producer.Run(ctx); err != nil {
			logger.Debug("producer stopped early", "error", err)
		}
	}()

	// A plain group rather than WithContext: a failed producer must not
	// cancel the consumer, which still drains what was queued.
	var eg errgroup.Group
	var report Report
	eg.Go(func() error {
		select {
		case <-producerDone:
		case <-ctx.Done():
			logger.Debug("not waiting for producer after cancellation")
		}
		return nil
	})
	eg.Go(func() error {
		report = consumer.Run(ctx)
		if report.Kind == KindCancelled {
			return report.Err
		}
		return nil
	})
	err := eg.Wait()
	report.RunID = runID

	logger.Info("run finished", "outcome", report.Kind, "produced", producer.Produced())
	return report, err
}

// Stop cancels the run in progress, if any. The cancelled Run still returns
// once both workers have exited.
func (p *Pipeline) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel(errStopped)
	}
	return nil
}

// IsRunning returns true while Run is in progress.
func (p *Pipeline) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
