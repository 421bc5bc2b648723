package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

func chunkServer(t *testing.T, chunks ...string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		for _, chunk := range chunks {
			_, _ = w.Write([]byte(chunk))
			flusher.Flush()
			time.Sleep(5 * time.Millisecond)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// hangingServer flushes headers and then produces nothing until the client
// goes away.
func hangingServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func errorServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"failed to generate text"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func userTurn(text string) []chat.Message {
	return []chat.Message{{ID: "u1", Role: chat.RoleUser, Content: text, CreatedAt: time.Now().UTC()}}
}

func TestReassemblerAccumulatesChunks(t *testing.T) {
	srv := chunkServer(t, "SIWES ", "bridges ", "theory and practice.")
	re := NewReassembler(NewTransport(srv.URL), 0)

	var partials []string
	outcome, err := re.Run(context.Background(), "siwes", userTurn("What is SIWES?"), func(partial string) {
		partials = append(partials, partial)
	})

	require.NoError(t, err)
	require.Equal(t, StateCompleted, outcome.State)
	require.Equal(t, "SIWES bridges theory and practice.", outcome.Text)
	require.Equal(t, StateCompleted, re.State())

	require.NotEmpty(t, partials)
	require.Equal(t, outcome.Text, partials[len(partials)-1])
	for i := 1; i < len(partials); i++ {
		require.True(t, len(partials[i]) > len(partials[i-1]), "partials must grow")
	}
}

func TestReassemblerEmptyStreamCompletes(t *testing.T) {
	srv := chunkServer(t)
	re := NewReassembler(NewTransport(srv.URL), 0)

	outcome, err := re.Run(context.Background(), "siwes", userTurn("hi"), nil)

	require.NoError(t, err)
	require.Equal(t, StateCompleted, outcome.State)
	require.Empty(t, outcome.Text)
}

func TestReassemblerServerErrorFails(t *testing.T) {
	srv := errorServer(t)
	re := NewReassembler(NewTransport(srv.URL), 0)

	outcome, err := re.Run(context.Background(), "siwes", userTurn("hi"), nil)

	require.NoError(t, err)
	require.Equal(t, StateFailed, outcome.State)
	require.ErrorContains(t, outcome.Err, "failed to generate text")
}

func TestReassemblerCancelBeforeFirstChunk(t *testing.T) {
	srv := hangingServer(t)
	re := NewReassembler(NewTransport(srv.URL), 0)

	type result struct {
		outcome Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := re.Run(context.Background(), "siwes", userTurn("hi"), nil)
		done <- result{outcome, err}
	}()

	require.Eventually(t, func() bool { return re.State() == StateStreaming }, time.Second, 5*time.Millisecond)
	re.Cancel()

	select {
	case got := <-done:
		require.NoError(t, got.err)
		require.Equal(t, StateCancelled, got.outcome.State)
		require.Empty(t, got.outcome.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not terminate the stream promptly")
	}
}

func TestReassemblerStallTimeout(t *testing.T) {
	srv := hangingServer(t)
	re := NewReassembler(NewTransport(srv.URL), 30*time.Millisecond)

	outcome, err := re.Run(context.Background(), "siwes", userTurn("hi"), nil)

	require.NoError(t, err)
	require.Equal(t, StateFailed, outcome.State)
	require.ErrorIs(t, outcome.Err, ErrStreamStalled)
}

func TestReassemblerRejectsConcurrentStreams(t *testing.T) {
	srv := hangingServer(t)
	re := NewReassembler(NewTransport(srv.URL), 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = re.Run(context.Background(), "siwes", userTurn("hi"), nil)
	}()

	require.Eventually(t, func() bool { return re.State() == StateStreaming }, time.Second, 5*time.Millisecond)

	_, err := re.Run(context.Background(), "siwes", userTurn("again"), nil)
	require.ErrorIs(t, err, ErrStreamActive)

	re.Cancel()
	<-done
}
