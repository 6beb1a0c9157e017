package stubstore

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// NewRouter wires the songs endpoints the calendar client expects from its
// development origin.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	// Tag each request with a short id for log correlation
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := uuid.NewString()[:8]
			log.Debugf("[%s] %s %s", requestID, req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/api/songs", h.ListSongs).Methods("GET")
	r.HandleFunc("/api/songs", h.CreateSong).Methods("POST")
	r.HandleFunc("/api/songs/{id}", h.GetSong).Methods("GET")

	return r
}
