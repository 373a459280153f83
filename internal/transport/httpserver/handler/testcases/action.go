package testcases

import (
	"bytes"
	"encoding/json"
	"fmt"

	testcasedomain "testtrack/internal/domain/testcase"
)

const (
	actionEdit          = "edit"
	actionSupportUpdate = "support-update"
	actionTesterUpdate  = "tester-update"
)

type actionTag struct {
	Action string `json:"action"`
}

type editRequest struct {
	Action        string  `json:"action"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	SupportUpdate *string `json:"supportUpdate"`
}

type supportUpdateRequest struct {
	Action        string `json:"action"`
	SupportUpdate string `json:"supportUpdate"`
	Comment       string `json:"comment"`
}

type testerUpdateRequest struct {
	Action       string `json:"action"`
	TesterUpdate string `json:"testerUpdate"`
	Comment      string `json:"comment"`
}

// parseAction decodes a PATCH body. The action field selects the variant and
// fields that do not belong to that variant are rejected.
func parseAction(body []byte) (testcasedomain.Action, error) {
	var tag actionTag
	if err := json.Unmarshal(body, &tag); err != nil {
		return nil, fmt.Errorf("%w: invalid json body: %v", testcasedomain.ErrValidation, err)
	}

	switch tag.Action {
	case actionEdit:
		var req editRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		if req.Title == nil {
			return nil, fmt.Errorf("%w: title is required", testcasedomain.ErrValidation)
		}
		if req.Description == nil {
			return nil, fmt.Errorf("%w: description is required", testcasedomain.ErrValidation)
		}
		action := testcasedomain.EditContent{Title: *req.Title, Description: *req.Description}
		if req.SupportUpdate != nil {
			status := testcasedomain.SupportStatus(*req.SupportUpdate)
			action.SupportUpdate = &status
		}
		return action, nil

	case actionSupportUpdate:
		var req supportUpdateRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		if req.SupportUpdate == "" {
			return nil, fmt.Errorf("%w: supportUpdate is required", testcasedomain.ErrValidation)
		}
		return testcasedomain.SupportUpdate{Status: testcasedomain.SupportStatus(req.SupportUpdate), Comment: req.Comment}, nil

	case actionTesterUpdate:
		var req testerUpdateRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		if req.TesterUpdate == "" {
			return nil, fmt.Errorf("%w: testerUpdate is required", testcasedomain.ErrValidation)
		}
		return testcasedomain.TesterUpdate{Status: testcasedomain.TesterStatus(req.TesterUpdate), Comment: req.Comment}, nil

	case "":
		return nil, fmt.Errorf("%w: action is required", testcasedomain.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", testcasedomain.ErrValidation, tag.Action)
	}
}

func decodeStrict(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", testcasedomain.ErrValidation, err)
	}
	return nil
}
