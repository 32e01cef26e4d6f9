// Package forms models the lifecycle of a submitted form as a single tagged
// state instead of independent loading/error/success flags, so a rendered
// form can never show an error and a success message at the same time.
package forms

// Phase is the position of a form in its submission lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns the lowercase phase name, used in data attributes and logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a form. Construct one with Idle,
// Submitting, Succeeded, Failed or FailedFields; the constructors guarantee
// that a message only exists in a terminal phase and that field errors only
// exist in the failed phase.
type State struct {
	phase   Phase
	message string
	fields  map[string]string
}

// Idle is the clean state a form first renders in.
func Idle() State {
	return State{phase: PhaseIdle}
}

// Submitting marks a form whose request is in flight.
func Submitting() State {
	return State{phase: PhaseSubmitting}
}

// Succeeded carries the confirmation message for a completed submission.
func Succeeded(message string) State {
	return State{phase: PhaseSucceeded, message: message}
}

// Failed carries a single form-level error message.
func Failed(message string) State {
	return State{phase: PhaseFailed, message: message}
}

// FailedFields carries per-field validation errors instead of a form-level
// message.
func FailedFields(fields map[string]string) State {
	return State{phase: PhaseFailed, fields: fields}
}

// Phase reports where the form is in its lifecycle.
func (s State) Phase() Phase {
	return s.phase
}

// Message returns the form-level message, empty outside terminal phases.
func (s State) Message() string {
	return s.message
}

// FieldError returns the error for one field, empty when the field is fine.
func (s State) FieldError(name string) string {
	return s.fields[name]
}

// HasFieldErrors reports whether any field-level errors are present.
func (s State) HasFieldErrors() bool {
	return len(s.fields) > 0
}

// IsTerminal reports whether the submission has finished, successfully or
// not. A terminal form returns to idle on the next edit.
func (s State) IsTerminal() bool {
	return s.phase == PhaseSucceeded || s.phase == PhaseFailed
}
