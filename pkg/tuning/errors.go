package tuning

import "fmt"

// ConfigError reports an invalid search configuration: a malformed search
// space, an empty value set, an oversized grid, a reference to an
// unregistered random distribution, or an option combination the search does
// not support.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid search configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// DataError reports training data that fails a precondition required by a
// collaborator. Collaborators return it directly; the search propagates it
// unchanged.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "invalid training data: " + e.Reason
}

// TrainerError wraps a failure raised by the trainer or the cross-validation
// runner. It aborts the whole search with no partial result.
type TrainerError struct {
	Op  string
	Err error
}

func (e *TrainerError) Error() string {
	return "trainer failed during " + e.Op + ": " + e.Err.Error()
}

func (e *TrainerError) Unwrap() error {
	return e.Err
}

// InternalError reports a violated invariant, e.g. a candidate tuple of the
// wrong arity reaching the evaluator. It indicates a bug in the engine, not
// in user input.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal search error: " + e.Reason
}

func internalErrorf(format string, args ...any) error {
	return &InternalError{Reason: fmt.Sprintf(format, args...)}
}
