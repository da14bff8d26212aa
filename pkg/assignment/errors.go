package assignment

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule rejection.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindCapacityExceeded
	KindAlreadyAssigned
	KindQuotaExceeded
	KindPrerequisiteMissing
	KindInvalidParent
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindAlreadyAssigned:
		return "AlreadyAssigned"
	case KindQuotaExceeded:
		return "QuotaExceeded"
	case KindPrerequisiteMissing:
		return "PrerequisiteMissing"
	case KindInvalidParent:
		return "InvalidParent"
	default:
		return "Unknown"
	}
}

// Rejection is a caller-facing refusal of an operation. It is an expected
// outcome, never a crash; handlers map it to an HTTP error code.
type Rejection struct {
	Kind   Kind
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// Forceable reports whether the caller may suppress this rejection with the
// force flag. Capacity, duplicate-membership and not-found rejections are
// never suppressible.
func (r *Rejection) Forceable() bool {
	return r.Kind == KindQuotaExceeded || r.Kind == KindPrerequisiteMissing
}

func reject(kind Kind, format string, args ...any) error {
	return &Rejection{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// StorageError wraps a failure of the underlying store. The operation that
// produced it aborted without partial effect.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storage(err error) error {
	if err == nil {
		return nil
	}
	var r *Rejection
	if errors.As(err, &r) {
		return err
	}
	var s *StorageError
	if errors.As(err, &s) {
		return err
	}
	return &StorageError{Err: err}
}
