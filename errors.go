package pscheduler

// DefectError reports a programming error by the caller or a corrupted
// schema: a non-object instance, a skeleton carrying unrecognized keys,
// or a composed schema that fails the draft-4 meta-schema self-check.
// Defects abort the call; they are never folded into an Outcome.
type DefectError struct {
	Reason string // What the caller got wrong
	Err    error  // Underlying cause, when one exists
}

func (e *DefectError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *DefectError) Unwrap() error {
	return e.Err
}
