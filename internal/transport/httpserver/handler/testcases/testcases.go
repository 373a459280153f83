package testcases

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	testcasedomain "testtrack/internal/domain/testcase"
	commonhandler "testtrack/internal/transport/httpserver/handler/common"
)

const maxPatchBodyBytes = 1 << 20

type createTestCaseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TesterIDs   []string `json:"testerIds"`
}

func (h *Handlers) ListTestCases(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	groups, err := h.TestCases.ListGroupedByTester(r.Context(), actor)
	if err != nil {
		writeDomainError(w, h.log, "testcases.list: list grouped failed", err, "user_id", actor.ID)
		return
	}

	testers := make([]testerGroupResponse, 0, len(groups))
	for _, group := range groups {
		testers = append(testers, testerGroupResponse{
			ID:        group.ID,
			Name:      group.Name,
			Email:     group.Email,
			TestCases: toSummaryResponses(group.TestCases),
		})
	}
	writeJSON(w, http.StatusOK, listGroupedResponse{Testers: testers})
}

func (h *Handlers) ListAssignedToMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	summaries, err := h.TestCases.ListForTester(r.Context(), actor)
	if err != nil {
		writeDomainError(w, h.log, "testcases.assigned: list failed", err, "user_id", actor.ID)
		return
	}
	writeJSON(w, http.StatusOK, listAssignedResponse{TestCases: toSummaryResponses(summaries)})
}

func (h *Handlers) CreateTestCase(w http.ResponseWriter, r *http.Request) {
	var req createTestCaseRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	created, err := h.TestCases.Create(r.Context(), actor, testcasedomain.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		TesterIDs:   req.TesterIDs,
	})
	if err != nil {
		writeDomainError(w, h.log, "testcases.create: create failed", err, "user_id", actor.ID)
		return
	}

	h.log.Info("testcases: created", "test_case_id", created.ID, "user_id", actor.ID, "testers", len(created.TesterIDs))
	writeJSON(w, http.StatusCreated, toSummaryResponse(created.Summary))
}

func (h *Handlers) GetTestCase(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	detail, err := h.TestCases.GetDetail(r.Context(), actor, id)
	if err != nil {
		writeDomainError(w, h.log, "testcases.get: get detail failed", err, "user_id", actor.ID, "test_case_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

func (h *Handlers) UpdateTestCase(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPatchBodyBytes))
	if err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	action, err := parseAction(body)
	if err != nil {
		writeDomainError(w, h.log, "testcases.update: invalid body", err, "user_id", actor.ID, "test_case_id", id)
		return
	}

	detail, err := h.TestCases.Edit(r.Context(), actor, id, action)
	if err != nil {
		writeDomainError(w, h.log, "testcases.update: edit failed", err, "user_id", actor.ID, "test_case_id", id, "action", actionName(action))
		return
	}

	h.log.Info("testcases: updated", "test_case_id", id, "user_id", actor.ID, "action", actionName(action))
	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

func actionName(action testcasedomain.Action) string {
	switch action.(type) {
	case testcasedomain.EditContent:
		return actionEdit
	case testcasedomain.SupportUpdate:
		return actionSupportUpdate
	case testcasedomain.TesterUpdate:
		return actionTesterUpdate
	default:
		return "unknown"
	}
}
