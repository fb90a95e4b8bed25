package disclosuresdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// UploadDocument sends a file as multipart form data. An empty kind is
// stored as "supporting".
func (s *Session) UploadDocument(
	ctx context.Context,
	propertyID, kind, filename, contentType string,
	r io.Reader,
) (*Document, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if kind != "" {
		if err := mw.WriteField("kind", kind); err != nil {
			return nil, fmt.Errorf("failed to encode kind: %w", err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to encode file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, propertyPath(propertyID, "/documents"), &body, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	var d Document
	if err := decodeJSON(resp, &d, http.StatusCreated); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDocuments returns a property's documents, newest first.
func (s *Session) ListDocuments(ctx context.Context, propertyID string) ([]Document, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, propertyPath(propertyID, "/documents"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Document
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadDocument streams a document. The caller must close the body.
func (s *Session) DownloadDocument(ctx context.Context, documentID string) (*Download, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/documents/"+url.PathEscape(documentID)+"/download", nil, nil)
	if err != nil {
		return nil, err
	}
	return download(resp)
}

func (s *Session) DeleteDocument(ctx context.Context, documentID string) (*DeleteDocumentResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/documents/"+url.PathEscape(documentID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out DeleteDocumentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
