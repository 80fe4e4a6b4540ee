package wordmode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Producer tokenizes a Source and pushes each word onto a Queue.
//
// However Run exits (end of input, read failure or cancellation) the pending
// partial word is flushed and the queue is closed exactly once, so the
// consumer on the other side never waits forever.
type Producer struct {
	source   Source
	queue    *Queue[string]
	reporter Reporter
	logger   *slog.Logger
	tok      *Tokenizer
	produced atomic.Int64
	err      error

	// OnDone is called after the queue has been closed.
	OnDone func(p *Producer)
}

// ProducerOption is a functional option for configuring a Producer
type ProducerOption func(*Producer)

// WithProducerLogger sets the logger used by the producer
func WithProducerLogger(logger *slog.Logger) ProducerOption {
	return func(p *Producer) {
		p.logger = logger
	}
}

// WithProducerReporter sets where input failures are reported
func WithProducerReporter(reporter Reporter) ProducerOption {
	return func(p *Producer) {
		p.reporter = reporter
	}
}

// WithProducerOnDone sets the callback to be called when the producer finishes
func WithProducerOnDone(fn func(*Producer)) ProducerOption {
	return func(p *Producer) {
		p.OnDone = fn
	}
}

// NewProducer creates a producer that feeds words from source into queue.
// Unlike the consumer it does not start on its own; call Run.
func NewProducer(source Source, queue *Queue[string], opts ...ProducerOption) *Producer {
	out := &Producer{
		source: source,
		queue:  queue,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// Produced returns the number of words pushed onto the queue.
func (p *Producer) Produced() int {
	return int(p.produced.Load())
}

// Err returns the error that ended the last Run, if any.
func (p *Producer) Err() error {
	return p.err
}

// Run reads the source to the end and closes the queue. It must be called
// at most once.
//
// Input failures are reported through the producer's Reporter and returned
// wrapping ErrInputUnavailable. Cancellation returns ctx.Err() and is not
// reported here since the consumer reports it.
func (p *Producer) Run(ctx context.Context) error {
	defer p.cleanup()
	p.logger.Debug("producer started", "source", p.source.Name())

	input, err := p.source.Open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			p.err = ctx.Err()
			return p.err
		}
		return p.fail(err)
	}

	closeInput := sync.OnceFunc(func() {
		if err := input.Close(); err != nil {
			p.logger.Debug("closing input", "source", p.source.Name(), "error", err)
		}
	})
	defer closeInput()
	// Closing the input unblocks a read that is stuck when ctx is cancelled.
	stop := context.AfterFunc(ctx, closeInput)
	defer stop()

	p.tok = NewTokenizer(input)
	for {
		word, err := p.tok.Next()
		if err != nil {
			if ctx.Err() != nil {
				p.err = ctx.Err()
				return p.err
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return p.fail(err)
		}
		if err := p.push(word); err != nil {
			p.err = err
			return err
		}
		if ctx.Err() != nil {
			p.err = ctx.Err()
			return p.err
		}
	}
}

func (p *Producer) push(word string) error {
	if err := p.queue.Push(word); err != nil {
		return fmt.Errorf("pushing %q: %w", word, err)
	}
	p.produced.Add(1)
	return nil
}

func (p *Producer) fail(cause error) error {
	p.err = fmt.Errorf("%w: %s: %w", ErrInputUnavailable, p.source.Name(), cause)
	p.logger.Warn("reading input failed", "source", p.source.Name(), "error", cause)
	if p.reporter != nil {
		p.reporter.Report(Report{Kind: KindFailure, Err: p.err})
	}
	return p.err
}

func (p *Producer) cleanup() {
	if p.tok != nil {
		if word, ok := p.tok.Flush(); ok {
			if err := p.push(word); err != nil {
				p.logger.Warn("dropping last word", "error", err)
			}
		}
	}
	p.queue.Close()
	p.logger.Debug("producer finished", "source", p.source.Name(), "produced", p.Produced())
	if p.OnDone != nil {
		p.OnDone(p)
	}
}
