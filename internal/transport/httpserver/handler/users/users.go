package users

import (
	"net/http"

	userdomain "testtrack/internal/domain/user"
	commonhandler "testtrack/internal/transport/httpserver/handler/common"
	"testtrack/internal/transport/httpserver/middleware"
)

type testerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type listTestersResponse struct {
	Testers []testerResponse `json:"testers"`
}

type listUsersResponse struct {
	Users []commonhandler.UserResponse `json:"users"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handlers) ListTesterShortInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	testers, err := h.Users.ListTesters(r.Context(), user.Role)
	if err != nil {
		commonhandler.WriteDomainError(w, h.log, "testers.short_info: list failed", err, "user_id", user.ID)
		return
	}

	result := make([]testerResponse, 0, len(testers))
	for _, tester := range testers {
		result = append(result, testerResponse{ID: tester.ID, Name: tester.Name, Email: tester.Email})
	}
	commonhandler.WriteJSON(w, http.StatusOK, listTestersResponse{Testers: result})
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	users, err := h.Users.List(r.Context(), user.Role)
	if err != nil {
		commonhandler.WriteDomainError(w, h.log, "admin.users.list: list failed", err, "user_id", user.ID)
		return
	}

	result := make([]commonhandler.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, commonhandler.ToUserResponse(&users[i]))
	}
	commonhandler.WriteJSON(w, http.StatusOK, listUsersResponse{Users: result})
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	created, err := h.Users.Create(r.Context(), user.Role, userdomain.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     userdomain.Role(req.Role),
	})
	if err != nil {
		commonhandler.WriteDomainError(w, h.log, "admin.users.create: create failed", err, "user_id", user.ID, "email", req.Email)
		return
	}

	h.log.Info("admin: user created", "user_id", created.ID, "role", created.Role, "by", user.ID)
	commonhandler.WriteJSON(w, http.StatusCreated, commonhandler.ToUserResponse(created))
}
