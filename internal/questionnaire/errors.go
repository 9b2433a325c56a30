package questionnaire

import "errors"

var (
	ErrNotFound       = errors.New("questionnaire not found")
	ErrNoNextStep     = errors.New("already on the last step")
	ErrNoPreviousStep = errors.New("already on the first step")
	ErrWrongStep      = errors.New("not allowed on the current step")
	ErrSubmitted      = errors.New("questionnaire already submitted")
	ErrStorage        = errors.New("result storage failed")
)

// IsTransitionError reports whether err rejects a state change rather than input.
func IsTransitionError(err error) bool {
	return errors.Is(err, ErrNoNextStep) ||
		errors.Is(err, ErrNoPreviousStep) ||
		errors.Is(err, ErrWrongStep) ||
		errors.Is(err, ErrSubmitted)
}
