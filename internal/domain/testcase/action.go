package testcase

// Action is one of EditContent, SupportUpdate or TesterUpdate. The set is
// closed: Service.Edit switches over exactly these three.
type Action interface {
	isAction()
}

// EditContent replaces title and description and may also set the support
// status in the same step.
type EditContent struct {
	Title         string
	Description   string
	SupportUpdate *SupportStatus
}

type SupportUpdate struct {
	Status  SupportStatus
	Comment string
}

type TesterUpdate struct {
	Status  TesterStatus
	Comment string
}

func (EditContent) isAction()   {}
func (SupportUpdate) isAction() {}
func (TesterUpdate) isAction()  {}
