package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrMissingOrgContext     = errors.New("identity has no organisation")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation failed")
	ErrConflict              = errors.New("conflict")
	ErrExpired               = errors.New("invite expired")
	ErrAlreadyAccepted       = errors.New("invite already accepted")
	ErrWrongOrg              = errors.New("invite belongs to another organisation")
	ErrEmailMismatch         = errors.New("invite was issued to a different email")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrPreconditionFailed    = errors.New("precondition failed")
	ErrRenderTimeout         = errors.New("render timed out")

	ErrNoDisclosureYet = fmt.Errorf("%w: generate a disclosure document first", ErrPreconditionFailed)
)

// ErrorKind is the stable machine readable name of a failure.
type ErrorKind string

const (
	KindUnauthenticated       ErrorKind = "unauthenticated"
	KindMissingOrgContext     ErrorKind = "missing_org_context"
	KindForbidden             ErrorKind = "forbidden"
	KindNotFound              ErrorKind = "not_found"
	KindValidation            ErrorKind = "validation_error"
	KindConflict              ErrorKind = "conflict"
	KindExpired               ErrorKind = "expired"
	KindAlreadyAccepted       ErrorKind = "already_accepted"
	KindWrongOrg              ErrorKind = "wrong_org"
	KindEmailMismatch         ErrorKind = "email_mismatch"
	KindDependencyUnavailable ErrorKind = "dependency_unavailable"
	KindPreconditionFailed    ErrorKind = "precondition_failed"
	KindRenderTimeout         ErrorKind = "render_timeout"
	KindInternal              ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrMissingOrgContext, KindMissingOrgContext},
	{ErrForbidden, KindForbidden},
	{ErrNotFound, KindNotFound},
	{ErrValidation, KindValidation},
	{ErrConflict, KindConflict},
	{ErrExpired, KindExpired},
	{ErrAlreadyAccepted, KindAlreadyAccepted},
	{ErrWrongOrg, KindWrongOrg},
	{ErrEmailMismatch, KindEmailMismatch},
	{ErrDependencyUnavailable, KindDependencyUnavailable},
	{ErrPreconditionFailed, KindPreconditionFailed},
	{ErrRenderTimeout, KindRenderTimeout},
}

// Kind classifies err. Anything not carrying one of our sentinels is
// KindInternal.
func Kind(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// Warning is a non-fatal problem from a best-effort phase.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnEmailDeliveryFailed = "email_delivery_failed"
	WarnBlobCleanupFailed   = "blob_cleanup_failed"
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// unavailable marks a failed authoritative write as a dependency outage.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
}
