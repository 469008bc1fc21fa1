// Package sync exposes the per-user snapshot document over HTTP so several
// devices can share one timer. The server arbitrates nothing beyond
// latest-timestamp-wins; clients reconcile against their own wall clock.
package sync

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/serhangurakan/life-timer/internal/core"
	"github.com/serhangurakan/life-timer/internal/store"
)

type putResponse struct {
	Stored bool `json:"stored"`
}

// NewHandler serves GET/PUT /v1/docs/{user} over the given store. A PUT
// whose lastTickTimestamp is older than the stored document is acknowledged
// but discarded, so a device that was offline for a while cannot clobber a
// more recent copy.
func NewHandler(st store.Store, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "syncserver")

	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/docs/{user}", func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("user")
		snap, err := st.Load(r.Context(), userID)
		if err != nil {
			logger.Error("load failed", "user", userID, "err", err)
			http.Error(w, "load failed", http.StatusInternalServerError)
			return
		}
		if snap == nil {
			http.Error(w, "no document", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	mux.HandleFunc("PUT /v1/docs/{user}", func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("user")

		var snap core.Snapshot
		if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
			http.Error(w, "bad document: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !snap.Mode.IsValid() {
			http.Error(w, "bad document: unknown mode", http.StatusBadRequest)
			return
		}

		current, err := st.Load(r.Context(), userID)
		if err != nil {
			logger.Error("load failed", "user", userID, "err", err)
			http.Error(w, "load failed", http.StatusInternalServerError)
			return
		}
		if current != nil && current.LastTickTimestamp > snap.LastTickTimestamp {
			logger.Debug("stale write discarded", "user", userID,
				"incoming", snap.LastTickTimestamp, "stored", current.LastTickTimestamp)
			writeJSON(w, http.StatusOK, putResponse{Stored: false})
			return
		}

		if err := st.Save(r.Context(), userID, snap); err != nil {
			logger.Error("save failed", "user", userID, "err", err)
			http.Error(w, "save failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, putResponse{Stored: true})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
