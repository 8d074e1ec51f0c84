package carbon

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidInput is matched by every InvalidInputError via errors.Is.
const ErrInvalidInput = constError("invalid input")

// InvalidInputError reports a calculation call with a non-positive quantity
// or a missing/unknown category.
type InvalidInputError struct {
	Activity Activity
	Field    string
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Activity, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(activity Activity, field, reason string) error {
	logger.Debug().
		Str("activity", string(activity)).
		Str("field", field).
		Str("reason", reason).
		Msg("rejected calculation input")
	return &InvalidInputError{Activity: activity, Field: field, Reason: reason}
}
