package common

import "net/http"

type pingResponse struct {
	Message  string `json:"message"`
	DBStatus string `json:"dbStatus"`
}

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	status := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.InternalError("health.ping: database unreachable", err)
		status = "disconnected"
	}
	writeJSON(w, http.StatusOK, pingResponse{Message: "pong", DBStatus: status})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found", "")
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "")
}
