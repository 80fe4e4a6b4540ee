package wordmode

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
)

// ConsumerState is the lifecycle stage of a Consumer.
type ConsumerState int32

const (
	// StateRunning means the consumer is popping words or waiting for one.
	StateRunning ConsumerState = iota

	// StateDrained means the queue was found empty and closed.
	StateDrained

	// StateReporting means the final report is being built and emitted.
	StateReporting

	// StateDone means the report has been emitted. It is terminal.
	StateDone
)

func (s ConsumerState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateDrained:
		return "DRAINED"
	case StateReporting:
		return "REPORTING"
	case StateDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// Consumer drains a Queue into a Tally and reports the most frequent word
// once the queue is drained.
//
// The tally belongs to the consumer's goroutine. The only place Run blocks is
// Queue.Pop.
type Consumer struct {
	queue    *Queue[string]
	tally    *Tally
	reporter Reporter
	logger   *slog.Logger
	state    atomic.Int32
}

// ConsumerOption is a functional option for configuring a Consumer
type ConsumerOption func(*Consumer)

// WithConsumerLogger sets the logger used by the consumer
func WithConsumerLogger(logger *slog.Logger) ConsumerOption {
	return func(c *Consumer) {
		c.logger = logger
	}
}

// WithConsumerReporter sets where the final report is sent
func WithConsumerReporter(reporter Reporter) ConsumerOption {
	return func(c *Consumer) {
		c.reporter = reporter
	}
}

// NewConsumer creates a consumer for queue. Call Run to start draining.
func NewConsumer(queue *Queue[string], opts ...ConsumerOption) *Consumer {
	out := &Consumer{
		queue:  queue,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// State returns the consumer's current lifecycle stage.
func (c *Consumer) State() ConsumerState {
	return ConsumerState(c.state.Load())
}

// Run pops words until the queue is drained, then reports the mode word, or
// a notice that no words were processed. It must be called at most once.
//
// If ctx is done first, Run stops without producing a result and reports
// the cancellation. The report's Err wraps ErrCancelled and the context's
// cause.
func (c *Consumer) Run(ctx context.Context) Report {
	c.tally = NewTally()
	c.setState(StateRunning)
	c.logger.Debug("consumer started")

	for {
		word, status := c.queue.Pop(ctx)
		if status == Drained {
			break
		}
		if status == Cancelled {
			c.logger.Info("consumer cancelled", "consumed", c.tally.Total())
			report := Report{Kind: KindCancelled, Err: cancelledErr(ctx)}
			c.setState(StateReporting)
			c.emit(report)
			c.setState(StateDone)
			return report
		}
		c.tally.Add(word)
	}

	c.setState(StateDrained)
	report := c.summarize(ctx)
	c.setState(StateReporting)
	c.emit(report)
	c.setState(StateDone)
	return report
}

func (c *Consumer) summarize(ctx context.Context) Report {
	if c.logger.Enabled(ctx, slog.LevelDebug) {
		c.logger.Debug("final tally", "counts", spew.Sdump(c.tally.Counts()))
	}

	word, count, ok := c.tally.Mode()
	if !ok {
		return Report{Kind: KindEmpty}
	}
	c.logger.Debug("consumer finished", "word", word, "count", count, "consumed", c.tally.Total())
	return Report{
		Kind:     KindResult,
		Word:     word,
		Count:    count,
		Total:    c.tally.Total(),
		Distinct: c.tally.Len(),
	}
}

func (c *Consumer) emit(report Report) {
	if c.reporter != nil {
		c.reporter.Report(report)
	}
}

func (c *Consumer) setState(s ConsumerState) {
	c.state.Store(int32(s))
}
