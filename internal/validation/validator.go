package validation

import "errors"

// Validator checks a field's text. A nil return means the text passed; a
// non-nil error carries the message shown to the user.
type Validator interface {
	Validate(text string) error
}

// Func adapts an ordinary function to the Validator interface.
type Func func(text string) error

// Validate calls f(text).
func (f Func) Validate(text string) error {
	return f(text)
}

// Run evaluates validators in order and returns the first failure.
func Run(text string, validators ...Validator) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v.Validate(text); err != nil {
			return err
		}
	}
	return nil
}

// Message returns the user-facing message for a validation failure.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message
	}
	return err.Error()
}

// Failure is the error returned by the built-in validators.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func fail(message string) error {
	return &Failure{Message: message}
}
