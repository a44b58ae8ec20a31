package errors

import "fmt"

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid request body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// InvalidAmountErr wraps a rejected money input.
func InvalidAmountErr(input string, err error) error {
	return E(InvalidAmount, fmt.Sprintf("invalid amount %q", input), err)
}

// TransitionErr is returned when a session is asked to do something its
// current stage does not allow.
func TransitionErr(op, stage string) error {
	return E(InvalidState, fmt.Sprintf("cannot %s while in %s", op, stage), nil)
}

// CorruptStateErr reports session state that could not be decoded.
func CorruptStateErr(id string, err error) error {
	return E(InvalidState, fmt.Sprintf("session %s is corrupt", id), err)
}

func NotFoundErr(what, id string) error {
	return E(NotFound, fmt.Sprintf("%s %s not found", what, id), nil)
}

// DisabledOptionErr reports an option switched off in the terminal settings.
func DisabledOptionErr(option string) error {
	return E(Forbidden, fmt.Sprintf("%s option is disabled", option), nil)
}

// ProcessingTimeoutErr reports a simulated step that overran its deadline.
func ProcessingTimeoutErr(step string, err error) error {
	return E(Timeout, fmt.Sprintf("%s timed out", step), err)
}
