package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Stream)(nil)

// Stream is a progrock.Writer whose updates are consumed with Read.
// WriteStatus blocks while the buffer is full until a reader catches up or the stream is closed.
type Stream struct {
	mu      sync.RWMutex
	updates chan *progrock.StatusUpdate
	done    chan struct{}
	once    sync.Once
	closed  bool
}

// NewStream creates a Stream buffering up to size updates.
func NewStream(size int) *Stream {
	return &Stream{
		updates: make(chan *progrock.StatusUpdate, size),
		done:    make(chan struct{}),
	}
}

// WriteStatus queues an update. Updates written after Close are dropped.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil
	}
	select {
	case s.updates <- update:
	case <-s.done:
	}
	return nil
}

// Read returns the next update, or io.EOF once the stream is closed and drained.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-s.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// Close ends the stream. Queued updates stay readable. It is safe to call more than once.
func (s *Stream) Close() error {
	s.once.Do(func() {
		close(s.done)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		close(s.updates)
	})
	return nil
}
