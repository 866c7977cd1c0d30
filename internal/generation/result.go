package generation

// Result is the outcome of a recommendation request: topics on success, or a
// classified error with an empty topic list.
type Result struct {
	Topics []string
	Err    *Error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Success builds a successful Result.
func Success(topics []string) Result {
	if topics == nil {
		topics = []string{}
	}
	return Result{Topics: topics}
}

// Failure builds a failed Result from err.
func Failure(err error) Result {
	genErr := NewError(err)
	if genErr == nil {
		genErr = &Error{Kind: KindUnknown}
	}
	return Result{Topics: []string{}, Err: genErr}
}
