package disclosuresdk

import (
	"context"
	"net/http"
)

// Session performs requests on behalf of one identity.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token the session presents.
func (s *Session) Token() string { return s.token }

// Me returns the caller's user record, creating it on first use.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var u User
	if err := decodeJSON(resp, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// DashboardSummary returns checklist progress across visible properties.
func (s *Session) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/dashboard/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	var sum DashboardSummary
	if err := decodeJSON(resp, &sum, http.StatusOK); err != nil {
		return nil, err
	}
	return &sum, nil
}
