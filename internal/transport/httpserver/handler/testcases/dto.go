package testcases

import (
	"time"

	testcasedomain "testtrack/internal/domain/testcase"
)

type summaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TesterUpdate  string `json:"testerUpdate"`
	SupportUpdate string `json:"supportUpdate"`
}

type personResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type timelineEntryResponse struct {
	Status       string         `json:"status"`
	TransitionAt time.Time      `json:"transitionAt"`
	TransitionBy personResponse `json:"transitionBy"`
	Comment      *string        `json:"comment,omitempty"`
}

type detailResponse struct {
	ID                 string                  `json:"id"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description"`
	TesterUpdate       string                  `json:"testerUpdate"`
	SupportUpdate      string                  `json:"supportUpdate"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
	CreatedBy          personResponse          `json:"createdBy"`
	AssignedTesters    []personResponse        `json:"assignedTesters"`
	TransitionTimeline []timelineEntryResponse `json:"transitionTimeline"`
}

type testerGroupResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	TestCases []summaryResponse `json:"testCases"`
}

type listGroupedResponse struct {
	Testers []testerGroupResponse `json:"testers"`
}

type listAssignedResponse struct {
	TestCases []summaryResponse `json:"testCases"`
}

func toSummaryResponse(summary testcasedomain.Summary) summaryResponse {
	return summaryResponse{
		ID:            summary.ID,
		Title:         summary.Title,
		TesterUpdate:  string(summary.TesterUpdate),
		SupportUpdate: string(summary.SupportUpdate),
	}
}

func toSummaryResponses(summaries []testcasedomain.Summary) []summaryResponse {
	result := make([]summaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, toSummaryResponse(summary))
	}
	return result
}

func toPersonResponse(person testcasedomain.Person) personResponse {
	return personResponse{
		ID:    person.ID,
		Name:  person.Name,
		Email: person.Email,
		Role:  string(person.Role),
	}
}

func toDetailResponse(detail *testcasedomain.Detail) detailResponse {
	testers := make([]personResponse, 0, len(detail.AssignedTesters))
	for _, tester := range detail.AssignedTesters {
		testers = append(testers, toPersonResponse(tester))
	}
	timeline := make([]timelineEntryResponse, 0, len(detail.Timeline))
	for _, entry := range detail.Timeline {
		timeline = append(timeline, timelineEntryResponse{
			Status:       string(entry.Status),
			TransitionAt: entry.At,
			TransitionBy: toPersonResponse(entry.By),
			Comment:      entry.Comment,
		})
	}

	return detailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Description:        detail.Description,
		TesterUpdate:       string(detail.TesterUpdate),
		SupportUpdate:      string(detail.SupportUpdate),
		CreatedAt:          detail.CreatedAt,
		UpdatedAt:          detail.UpdatedAt,
		CreatedBy:          toPersonResponse(detail.CreatedBy),
		AssignedTesters:    testers,
		TransitionTimeline: timeline,
	}
}
