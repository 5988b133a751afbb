package cdcl

import "fmt"

// FileFormatError reports a DIMACS input that violates the expected
// grammar: a bad header, a missing clause terminator, or a non-numeric
// token where one was required.
type FileFormatError struct {
	msg string
}

func (e *FileFormatError) Error() string { return e.msg }

func fileFormatErrorf(format string, args ...interface{}) error {
	return &FileFormatError{msg: fmt.Sprintf(format, args...)}
}

// ArgumentFormatError is the error type for an unknown heuristic name,
// log level, or other malformed CLI argument. The cdcl driver does not
// return it: it reports an unknown heuristic or log level with log.Fatal
// and exits non-zero.
type ArgumentFormatError struct {
	msg string
}

func (e *ArgumentFormatError) Error() string { return e.msg }

func argumentFormatErrorf(format string, args ...interface{}) error {
	return &ArgumentFormatError{msg: fmt.Sprintf(format, args...)}
}

// InvariantViolated is a fatal programming-error value: it indicates a
// precondition breach inside the core (e.g. extending an already-assigned
// variable, removing a node that isn't in the graph, resolving two
// clauses that don't share a pivot's opposite polarities). Core code
// panics with this value rather than returning it, matching the
// teacher's own style of bare panic("...") calls for "can't happen"
// conditions; InvariantViolated simply gives that panic a named, typed
// payload so tests can recover and assert on it.
type InvariantViolated string

func (e InvariantViolated) Error() string { return string(e) }
