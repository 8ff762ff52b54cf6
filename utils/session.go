package utils

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewSession hands a guest a session id to send back in X-Session-ID.
// Logged-in users are keyed by their token instead.
func NewSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"sessionId": GetUUID(),
	})
}
