package client

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// State tracks one in-flight completion stream.
type State int

const (
	StateIdle State = iota
	StateStreaming
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrStreamActive rejects a new submission while a stream is in flight.
	ErrStreamActive = errors.New("a completion stream is already active")
	// ErrStreamStalled marks a stream that produced no chunk within the
	// stall window.
	ErrStreamStalled = errors.New("stream stalled waiting for the next chunk")
)

// DefaultStallTimeout bounds the wait for the next chunk before the stream is
// treated as failed.
const DefaultStallTimeout = 60 * time.Second

// Outcome is the terminal result of one stream. Text is only meaningful for
// StateCompleted; partial text from cancelled or failed streams is discarded.
type Outcome struct {
	State State
	Text  string
	Err   error
}

// Reassembler accumulates stream chunks into a finished message. At most one
// stream is active at a time; the accumulated text never touches the session
// transcript until the stream terminates.
type Reassembler struct {
	transport    *Transport
	stallTimeout time.Duration

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// NewReassembler creates a reassembler. A zero stallTimeout selects
// DefaultStallTimeout.
func NewReassembler(transport *Transport, stallTimeout time.Duration) *Reassembler {
	if stallTimeout <= 0 {
		stallTimeout = DefaultStallTimeout
	}
	return &Reassembler{transport: transport, stallTimeout: stallTimeout, state: StateIdle}
}

// State returns the current stream state.
func (r *Reassembler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Cancel aborts the in-flight stream, if any, closing the underlying
// transport so the server-side call is not left open.
func (r *Reassembler) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateStreaming && r.cancel != nil {
		r.cancel()
	}
}

// Run opens the stream and consumes it to a terminal state. onDelta, when
// non-nil, receives the accumulated partial text after every chunk for live
// rendering. Run returns ErrStreamActive if a stream is already in flight.
func (r *Reassembler) Run(ctx context.Context, topicID string, conversation []chat.Message, onDelta func(partial string)) (Outcome, error) {
	r.mu.Lock()
	if r.state == StateStreaming {
		r.mu.Unlock()
		return Outcome{}, ErrStreamActive
	}
	streamCtx, cancel := context.WithCancel(ctx)
	r.state = StateStreaming
	r.cancel = cancel
	r.mu.Unlock()

	outcome := r.consume(streamCtx, cancel, topicID, conversation, onDelta)

	r.mu.Lock()
	r.state = outcome.State
	r.cancel = nil
	r.mu.Unlock()
	cancel()

	return outcome, nil
}

type readResult struct {
	chunk []byte
	err   error
}

func (r *Reassembler) consume(ctx context.Context, cancel context.CancelFunc, topicID string, conversation []chat.Message, onDelta func(string)) Outcome {
	body, err := r.transport.Complete(ctx, topicID, conversation)
	if err != nil {
		if ctx.Err() != nil {
			return Outcome{State: StateCancelled}
		}
		return Outcome{State: StateFailed, Err: err}
	}
	defer body.Close()

	results := make(chan readResult)
	go func() {
		defer close(results)
		buf := make([]byte, 4096)
		for {
			n, readErr := body.Read(buf)
			var chunk []byte
			if n > 0 {
				chunk = append([]byte(nil), buf[:n]...)
			}
			select {
			case results <- readResult{chunk: chunk, err: readErr}:
			case <-ctx.Done():
				return
			}
			if readErr != nil {
				return
			}
		}
	}()

	var accumulated strings.Builder
	stall := time.NewTimer(r.stallTimeout)
	defer stall.Stop()

	for {
		select {
		case <-ctx.Done():
			return Outcome{State: StateCancelled}
		case <-stall.C:
			// Close the transport so the provider call is not left open.
			cancel()
			return Outcome{State: StateFailed, Err: ErrStreamStalled}
		case result, ok := <-results:
			if !ok {
				return Outcome{State: StateCancelled}
			}
			if len(result.chunk) > 0 {
				accumulated.Write(result.chunk)
				if onDelta != nil {
					onDelta(accumulated.String())
				}
				if !stall.Stop() {
					select {
					case <-stall.C:
					default:
					}
				}
				stall.Reset(r.stallTimeout)
			}
			if errors.Is(result.err, io.EOF) {
				return Outcome{State: StateCompleted, Text: accumulated.String()}
			}
			if result.err != nil {
				if ctx.Err() != nil {
					return Outcome{State: StateCancelled}
				}
				return Outcome{State: StateFailed, Err: result.err}
			}
		}
	}
}
