package utils

import (
	"log"
	"net/http"
)

// SetupStreamHeaders prepares a progressive plain-text response. The body is
// delivered chunk by chunk as the provider produces it.
func SetupStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
}

// WriteStreamChunk writes one raw text chunk and flushes it to the client.
func WriteStreamChunk(w http.ResponseWriter, flusher http.Flusher, chunk string) {
	if chunk == "" {
		return
	}

	if _, err := w.Write([]byte(chunk)); err != nil {
		log.Printf("failed to write stream chunk: %v", err)
		return
	}
	flusher.Flush()
}
