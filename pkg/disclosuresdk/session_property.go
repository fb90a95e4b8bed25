package disclosuresdk

import (
	"context"
	"net/http"
	"net/url"
)

func propertyPath(id, suffix string) string {
	return "/v1/properties/" + url.PathEscape(id) + suffix
}

// ListProperties returns the properties visible to the session, newest
// first.
func (s *Session) ListProperties(ctx context.Context) ([]Property, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/properties", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Property
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/properties", req)
	if err != nil {
		return nil, err
	}

	var p Property
	if err := decodeJSON(resp, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProperty returns a property with its checklist.
func (s *Session) GetProperty(ctx context.Context, id string) (*PropertyDetail, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(id, ""), nil, nil)
	if err != nil {
		return nil, err
	}

	var p PropertyDetail
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Session) UpdateProperty(ctx context.Context, id string, req UpdatePropertyRequest) (*Property, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, propertyPath(id, ""), req)
	if err != nil {
		return nil, err
	}

	var p Property
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes a property and everything attached to it.
func (s *Session) DeleteProperty(ctx context.Context, id string) (*DeletePropertyResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, propertyPath(id, ""), nil, nil)
	if err != nil {
		return nil, err
	}

	var out DeletePropertyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) AssignAgent(ctx context.Context, id string, req AssignAgentRequest) (*Property, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, propertyPath(id, "/assign-agent"), req)
	if err != nil {
		return nil, err
	}

	var p Property
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Session) GetChecklist(ctx context.Context, id string) (*Checklist, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(id, "/checklist"), nil, nil)
	if err != nil {
		return nil, err
	}

	var c Checklist
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}
