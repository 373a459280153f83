package common

import (
	"net/http"
	"time"

	userdomain "testtrack/internal/domain/user"
	"testtrack/internal/transport/httpserver/middleware"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(user *userdomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidJSON(w, err)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteDomainError(w, h.log, "auth.sign_in: authenticate failed", err, "email", req.Email)
		return
	}

	token, expiresAt, err := h.Sessions.Issue(user.ID)
	if err != nil {
		WriteDomainError(w, h.log, "auth.sign_in: issue session failed", err, "user_id", user.ID)
		return
	}
	h.Sessions.SetCookie(w, token, expiresAt)

	h.log.Info("auth: signed in", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusOK, ToUserResponse(user))
}

func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	writeJSON(w, http.StatusOK, ToUserResponse(user))
}
