package wizard

// The booking flow is a fixed linear sequence of four steps.
const (
	StepVehicle = iota + 1
	StepReview
	StepPayment
	StepConfirmation
)

var StepNames = []string{"Vehicle", "Review", "Payment", "Confirmation"}

// StepCount is the number of steps in the flow.
const StepCount = 4

type StepState string

const (
	StatePending   StepState = "pending"
	StateActive    StepState = "active"
	StateCompleted StepState = "completed"
)

// Clamp forces a step value into [1, StepCount].
func Clamp(step int) int {
	if step < 1 {
		return 1
	}
	if step > StepCount {
		return StepCount
	}
	return step
}

// StateOf reports how step i (1-based) renders when currentStep is
// active: completed before it, active at it, pending after it.
func StateOf(i, currentStep int) StepState {
	currentStep = Clamp(currentStep)
	switch {
	case currentStep > i:
		return StateCompleted
	case currentStep == i:
		return StateActive
	default:
		return StatePending
	}
}

// StepStates returns the rendered state of every step for currentStep.
func StepStates(currentStep int) []StepState {
	states := make([]StepState, StepCount)
	for i := range states {
		states[i] = StateOf(i+1, currentStep)
	}
	return states
}

// FillFraction is the filled share of the progress line: 0 at the first
// step, 1 at the last.
func FillFraction(currentStep int) float64 {
	return float64(Clamp(currentStep)-1) / float64(StepCount-1)
}
