package path

import "fmt"

var knownStepTypes = map[string]bool{
	StepNews:        true,
	StepBook:        true,
	StepDefineVocab: true,
	StepReview:      true,
}

// ValidateSteps checks that a template's steps are usable: at least one
// step, orders 1-based and contiguous, every type known. Next-step lookup
// depends on contiguity, so this runs at authoring time and again before a
// run starts.
func ValidateSteps(steps []Step) error {
	if len(steps) == 0 {
		return &ValidationError{Field: "steps", Reason: "template has no steps"}
	}

	seen := make(map[int]bool, len(steps))
	for _, s := range steps {
		if !knownStepTypes[s.Type] {
			return &ValidationError{Field: "step type", Reason: fmt.Sprintf("unknown type %q at order %d", s.Type, s.Order)}
		}
		if s.Order < 1 {
			return &ValidationError{Field: "step order", Reason: fmt.Sprintf("order %d is not positive", s.Order)}
		}
		if seen[s.Order] {
			return &ValidationError{Field: "step order", Reason: fmt.Sprintf("duplicate order %d", s.Order)}
		}
		seen[s.Order] = true
	}

	for o := 1; o <= len(steps); o++ {
		if !seen[o] {
			return &ValidationError{Field: "step order", Reason: fmt.Sprintf("missing order %d", o)}
		}
	}
	return nil
}
