package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"homeport/internal/logging"
	"homeport/internal/urls"
	"homeport/internal/waypoints"
)

// newHandler builds the API routing table over a store and hub. token, when
// non-empty, is required as a bearer token on every route.
func newHandler(store *Store, hub *Hub, token string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/users/{uuid}/homes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Homes(r.PathValue("uuid")))
	})

	mux.HandleFunc("POST /api/v1/users/{uuid}/homes", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string             `json:"name"`
			Position waypoints.Position `json:"position"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		owner := waypoints.User{UUID: r.PathValue("uuid"), Name: r.Header.Get("X-User-Name")}
		entry, err := store.CreateHome(owner, req.Name, req.Position)
		if err != nil {
			writeError(w, http.StatusConflict, waypoints.UserMessage(err))
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	})

	mux.HandleFunc("DELETE /api/v1/users/{uuid}/homes/{name}", func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteHome(r.PathValue("uuid"), r.PathValue("name")); err != nil {
			writeError(w, http.StatusNotFound, waypoints.UserMessage(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET "+urls.PublicHomes, func(w http.ResponseWriter, r *http.Request) {
		entries := store.PublicHomes()
		if entries == nil {
			entries = []waypoints.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	})

	mux.HandleFunc("GET "+urls.Warps, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Warps())
	})

	mux.HandleFunc("DELETE /api/v1/warps/{name}", func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteWarp(r.PathValue("name")); err != nil {
			writeError(w, http.StatusNotFound, waypoints.UserMessage(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/v1/users/{uuid}/slots", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"max": store.Slots(r.PathValue("uuid"))})
	})

	mux.HandleFunc("POST "+urls.Teleports, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			User   waypoints.User     `json:"user"`
			Target waypoints.Position `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		logging.Info("teleport accepted",
			zap.String("user", req.User.Name),
			zap.String("target", req.Target.String()),
		)
		w.WriteHeader(http.StatusAccepted)
	})

	mux.Handle("GET "+urls.Events, hub)

	return requireToken(mux, token)
}

// requireToken wraps h with bearer token authentication. The event feed is
// included: the watcher sends the same Authorization header as the client.
func requireToken(h http.Handler, token string) http.Handler {
	if token == "" {
		return h
	}
	want := "Bearer " + token
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != want {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		h.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
