package service

// ValidationError marks malformed or incomplete input. Handlers map it to
// a 400; anything wrapping store.ErrNotFound maps to a 404.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(reason string) error {
	return &ValidationError{Reason: reason}
}
