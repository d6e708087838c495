package path

import "fmt"

// ValidationError indicates malformed or missing required input. It is
// surfaced immediately and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError indicates an absent template, run, session or text. There
// is no automatic fallback.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ConflictError indicates the open-session invariant would be violated.
// The caller must complete or abandon the existing open session first.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// ExternalResourceError indicates a backing resource (text file, suggester)
// is missing or unusable. The resource is named; content is never silently
// substituted.
type ExternalResourceError struct {
	Resource string
	Err      error
}

func (e *ExternalResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("external resource %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("external resource %s unavailable", e.Resource)
}

func (e *ExternalResourceError) Unwrap() error { return e.Err }
