package builder

import (
	"github.com/communica-av/quoter-backend/pkg/enums"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
)

// Advance moves the session one step forward. Moving into review requires at
// least one billable line; gate violations leave the state unchanged.
func (s *State) Advance() error {
	switch s.Step {
	case enums.BuilderStepCollectingEventData:
		s.Step = enums.BuilderStepBuildingPackage
		return nil
	case enums.BuilderStepBuildingPackage:
		if !s.HasBillableLine() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cart must contain at least one item")
		}
		s.Step = enums.BuilderStepReviewAndSubmit
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot advance from current step")
	}
}

// Back moves the session one step backward along the explicit back edges.
func (s *State) Back() error {
	switch s.Step {
	case enums.BuilderStepBuildingPackage:
		s.Step = enums.BuilderStepCollectingEventData
		return nil
	case enums.BuilderStepReviewAndSubmit:
		s.Step = enums.BuilderStepBuildingPackage
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot go back from current step")
	}
}
