package builder

import (
	"testing"

	"github.com/google/uuid"

	"github.com/communica-av/quoter-backend/pkg/enums"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
)

func TestAdvanceBlockedOnEmptyCart(t *testing.T) {
	t.Parallel()

	state := NewState()
	if err := state.Advance(); err != nil {
		t.Fatalf("advance to package step: %v", err)
	}

	err := state.Advance()
	if err == nil {
		t.Fatal("expected gate violation for empty cart")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Step != enums.BuilderStepBuildingPackage {
		t.Fatalf("state must be unchanged on rejection, got %s", state.Step)
	}
}

func TestAdvanceWithBillableLine(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.AddItem(unitItem("CAM_1", "Cámaras", 100))

	if err := state.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := state.Advance(); err != nil {
		t.Fatalf("advance to review: %v", err)
	}
	if state.Step != enums.BuilderStepReviewAndSubmit {
		t.Fatalf("expected review step, got %s", state.Step)
	}
}

func TestBackEdges(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.AddItem(unitItem("CAM_1", "Cámaras", 100))
	_ = state.Advance()
	_ = state.Advance()

	if err := state.Back(); err != nil {
		t.Fatalf("back to package: %v", err)
	}
	if state.Step != enums.BuilderStepBuildingPackage {
		t.Fatalf("expected package step, got %s", state.Step)
	}

	if err := state.Back(); err != nil {
		t.Fatalf("back to event data: %v", err)
	}
	if state.Step != enums.BuilderStepCollectingEventData {
		t.Fatalf("expected first step, got %s", state.Step)
	}

	if err := state.Back(); err == nil {
		t.Fatal("expected back from first step to be rejected")
	}
}

func TestSubmittedIsTerminal(t *testing.T) {
	t.Parallel()

	state := NewState()
	id := uuid.New()
	state.MarkSubmitted(id)

	if state.Step != enums.BuilderStepSubmitted {
		t.Fatalf("expected submitted step, got %s", state.Step)
	}
	if state.SubmittedQuoteID == nil || *state.SubmittedQuoteID != id {
		t.Fatalf("expected recorded quote id %s", id)
	}
	if err := state.Advance(); err == nil {
		t.Fatal("expected advance from terminal state to be rejected")
	}
	if err := state.Back(); err == nil {
		t.Fatal("expected back from terminal state to be rejected")
	}
}

func TestApplyEventSetupClamps(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.ApplyEventSetup(EventSetupInput{
		City:          "Monterrey",
		VenueDefined:  true,
		Montage:       enums.MontageMode("bogus"),
		DurationHours: 99,
		AreaQty:       -3,
	})

	if state.Setup.DurationHours != 24 {
		t.Fatalf("expected duration clamped to 24, got %d", state.Setup.DurationHours)
	}
	if state.Setup.AreaQty != 0 {
		t.Fatalf("expected area clamped to 0, got %d", state.Setup.AreaQty)
	}
	if state.Setup.Montage != enums.MontageModeUndefined {
		t.Fatalf("expected unknown montage normalized to undefined, got %s", state.Setup.Montage)
	}

	state.ApplyEventSetup(EventSetupInput{DurationHours: 0, Montage: enums.MontageModeRigging})
	if state.Setup.DurationHours != 1 {
		t.Fatalf("expected duration clamped to 1, got %d", state.Setup.DurationHours)
	}
}
