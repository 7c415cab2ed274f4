package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

type stateHandler struct {
	logger *slog.Logger
	source snapshotSource
}

func newStateHandler(logger *slog.Logger, source snapshotSource) *stateHandler {
	return &stateHandler{
		logger: logger.With("component", "status"),
		source: source,
	}
}

// ServeHTTP - writes the current game as JSON.
func (that *stateHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	snapshot := that.source.Snapshot()
	if snapshot == nil {
		http.Error(w, "no game in progress", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		that.logger.Error("could not write state", "error", err)
	}
}
