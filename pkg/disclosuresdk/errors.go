package disclosuresdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned in ErrorResponse.Error.
const (
	ErrorCodeUnauthenticated       = "unauthenticated"
	ErrorCodeMissingOrgContext     = "missing_org_context"
	ErrorCodeForbidden             = "forbidden"
	ErrorCodeNotFound              = "not_found"
	ErrorCodeValidation            = "validation_error"
	ErrorCodeConflict              = "conflict"
	ErrorCodeExpired               = "expired"
	ErrorCodeAlreadyAccepted       = "already_accepted"
	ErrorCodeWrongOrg              = "wrong_org"
	ErrorCodeEmailMismatch         = "email_mismatch"
	ErrorCodeDependencyUnavailable = "dependency_unavailable"
	ErrorCodePreconditionFailed    = "precondition_failed"
	ErrorCodeRenderTimeout         = "render_timeout"
	ErrorCodeRateLimited           = "rate_limited"
	ErrorCodeInternal              = "internal"
)

// APIError is a failed request as seen by the client.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.StatusCode, e.Description)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: proxies and the mux answer in plain text
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeInternal,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
