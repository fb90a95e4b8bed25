package disclosuresdk

import (
	"context"
	"net/http"
)

// GenerateForm2 renders the next Form 2 version.
func (s *Session) GenerateForm2(ctx context.Context, propertyID string) (*Form2Version, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, propertyPath(propertyID, "/form2"), nil, nil)
	if err != nil {
		return nil, err
	}

	var v Form2Version
	if err := decodeJSON(resp, &v, http.StatusCreated); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Session) LatestForm2(ctx context.Context, propertyID string) (*Form2Version, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(propertyID, "/form2/latest"), nil, nil)
	if err != nil {
		return nil, err
	}

	var v Form2Version
	if err := decodeJSON(resp, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

// DownloadForm2 streams the latest Form 2. The caller must close the body.
func (s *Session) DownloadForm2(ctx context.Context, propertyID string) (*Download, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(propertyID, "/form2/latest/download"), nil, nil)
	if err != nil {
		return nil, err
	}
	return download(resp)
}

// GenerateServePack bundles the latest Form 2 with the required documents.
// It fails with ErrorCodePreconditionFailed until a Form 2 exists.
func (s *Session) GenerateServePack(ctx context.Context, propertyID string) (*ServePack, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, propertyPath(propertyID, "/serve-pack"), nil, nil)
	if err != nil {
		return nil, err
	}

	var sp ServePack
	if err := decodeJSON(resp, &sp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *Session) LatestServePack(ctx context.Context, propertyID string) (*ServePack, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(propertyID, "/serve-pack/latest"), nil, nil)
	if err != nil {
		return nil, err
	}

	var sp ServePack
	if err := decodeJSON(resp, &sp, http.StatusOK); err != nil {
		return nil, err
	}
	return &sp, nil
}

// DownloadServePack streams the latest serve pack zip. The caller must close
// the body.
func (s *Session) DownloadServePack(ctx context.Context, propertyID string) (*Download, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(propertyID, "/serve-pack/latest/download"), nil, nil)
	if err != nil {
		return nil, err
	}
	return download(resp)
}
