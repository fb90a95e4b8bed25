package disclosuresdk

import (
	"context"
	"net/http"
	"net/url"
)

// IssueInvite invites someone to a property.
func (s *Session) IssueInvite(ctx context.Context, propertyID string, req IssueInviteRequest) (*IssueInviteResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, propertyPath(propertyID, "/invites"), req)
	if err != nil {
		return nil, err
	}

	var out IssueInviteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite redeems an invite token for the session's identity.
func (s *Session) AcceptInvite(ctx context.Context, token string) (*AcceptInviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/"+url.PathEscape(token)+"/accept", nil, nil)
	if err != nil {
		return nil, err
	}

	var out AcceptInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
