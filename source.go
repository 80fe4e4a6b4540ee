package wordmode

import (
	"context"
	"io"
	"os"
)

// Source is the input a Producer tokenizes. Open is called exactly once per
// run and the returned reader is closed by the Producer on every exit path.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)

	// Name identifies the source in logs and error messages.
	Name() string
}

// FileSource reads the file at the given path.
type FileSource string

// Open opens the file. Opening can block, for example on a FIFO with no
// writer, so Open gives up when ctx is done and closes the file if the
// abandoned open succeeds later.
func (f FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	type opened struct {
		file *os.File
		err  error
	}
	result := make(chan opened, 1)
	go func() {
		file, err := os.Open(string(f))
		result <- opened{file, err}
	}()

	select {
	case o := <-result:
		if o.err != nil {
			return nil, o.err
		}
		return o.file, nil
	case <-ctx.Done():
		go func() {
			if o := <-result; o.err == nil {
				o.file.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

func (f FileSource) Name() string {
	return string(f)
}

// ReaderSource adapts an io.Reader into a Source.
//
// A ReaderSource created with NewReaderSource never closes its reader, so it
// is safe over os.Stdin or a reader the caller shares. One created with
// NewReadCloserSource owns its reader: the producer closes it after use and
// when the run is cancelled, which also unblocks a pending read.
type ReaderSource struct {
	name  string
	r     io.Reader
	owned bool
}

// NewReaderSource creates a Source that reads from r and leaves it open.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// NewReadCloserSource creates a Source that takes ownership of rc.
func NewReadCloserSource(name string, rc io.ReadCloser) *ReaderSource {
	return &ReaderSource{name: name, r: rc, owned: true}
}

func (s *ReaderSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if rc, ok := s.r.(io.ReadCloser); ok && s.owned {
		return rc, nil
	}
	return io.NopCloser(s.r), nil
}

func (s *ReaderSource) Name() string {
	return s.name
}
