package enums

import "fmt"

// BuilderStep tracks where a quote-builder session sits in the guided flow.
type BuilderStep string

const (
	BuilderStepCollectingEventData BuilderStep = "collecting_event_data"
	BuilderStepBuildingPackage     BuilderStep = "building_package"
	BuilderStepReviewAndSubmit     BuilderStep = "review_and_submit"
	BuilderStepSubmitted           BuilderStep = "submitted"
)

var validBuilderSteps = []BuilderStep{
	BuilderStepCollectingEventData,
	BuilderStepBuildingPackage,
	BuilderStepReviewAndSubmit,
	BuilderStepSubmitted,
}

// String implements fmt.Stringer.
func (b BuilderStep) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BuilderStep.
func (b BuilderStep) IsValid() bool {
	for _, candidate := range validBuilderSteps {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBuilderStep converts raw input into a BuilderStep.
func ParseBuilderStep(value string) (BuilderStep, error) {
	for _, candidate := range validBuilderSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid builder step %q", value)
}
