package testcase

import "fmt"

type TesterStatus string

const (
	TesterPending  TesterStatus = "pending"
	TesterComplete TesterStatus = "complete"
)

var TesterStatuses = []TesterStatus{TesterPending, TesterComplete}

func (s TesterStatus) Valid() bool {
	switch s {
	case TesterPending, TesterComplete:
		return true
	}
	return false
}

func ParseTesterStatus(value string) (TesterStatus, error) {
	status := TesterStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown tester status %q", ErrValidation, value)
	}
	return status, nil
}

type SupportStatus string

const (
	SupportPassed            SupportStatus = "passed"
	SupportFailed            SupportStatus = "failed"
	SupportComplete          SupportStatus = "complete"
	SupportRetest            SupportStatus = "retest"
	SupportNA                SupportStatus = "na"
	SupportPendingValidation SupportStatus = "pending_validation"
)

var SupportStatuses = []SupportStatus{
	SupportPassed,
	SupportFailed,
	SupportComplete,
	SupportRetest,
	SupportNA,
	SupportPendingValidation,
}

func (s SupportStatus) Valid() bool {
	switch s {
	case SupportPassed, SupportFailed, SupportComplete, SupportRetest, SupportNA, SupportPendingValidation:
		return true
	}
	return false
}

func ParseSupportStatus(value string) (SupportStatus, error) {
	status := SupportStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown support status %q", ErrValidation, value)
	}
	return status, nil
}

// TransitionStatus tags a transition log entry. It is the union of the
// tester and support statuses plus the initiated and edited markers.
type TransitionStatus string

const (
	TransitionInitiated TransitionStatus = "initiated"
	TransitionEdited    TransitionStatus = "edited"
)

func (s TransitionStatus) Valid() bool {
	switch s {
	case TransitionInitiated, TransitionEdited:
		return true
	}
	return TesterStatus(s).Valid() || SupportStatus(s).Valid()
}

func testerTransition(s TesterStatus) TransitionStatus {
	return TransitionStatus(s)
}

func supportTransition(s SupportStatus) TransitionStatus {
	return TransitionStatus(s)
}
