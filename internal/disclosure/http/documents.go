package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// Room for multipart boundaries and the kind field on top of the file.
const multipartOverhead = 1 << 20

type DocumentsHandler struct {
	DocumentService *service.DocumentService
}

// HandleUpload godoc
//
//	@Summary		Upload Document
//	@Description	Multipart upload of a supporting document. PDF, JPEG and PNG are accepted.
//	@Tags			Documents
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Property ID"
//	@Param			file	formData	file	true	"Document"
//	@Param			kind	formData	string	false	"Checklist item the document satisfies"	default(supporting)
//	@Success		201		{object}	disclosuresdk.Document
//	@Failure		400		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		503		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/documents [post].
func (h *DocumentsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit := h.DocumentService.MaxBytes
	if limit <= 0 {
		limit = service.DefaultUploadMaxBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeBadRequest(w, fmt.Sprintf("upload exceeds %d bytes", limit))
			return
		}
		writeBadRequest(w, "expected a multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	doc, err := h.DocumentService.Upload(r.Context(), id, r.PathValue("id"), service.UploadInput{
		Kind:        r.FormValue("kind"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDocument(doc))
}

// HandleList godoc
//
//	@Summary		List Documents
//	@Tags			Documents
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{array}		disclosuresdk.Document
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/documents [get].
func (h *DocumentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	docs, err := h.DocumentService.List(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]disclosuresdk.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocument(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDownload godoc
//
//	@Summary		Download Document
//	@Tags			Documents
//	@Produce		application/pdf,image/jpeg,image/png
//	@Param			id	path		string	true	"Document ID"
//	@Success		200	{file}		binary
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		503	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/documents/{id}/download [get].
func (h *DocumentsHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, obj, err := h.DocumentService.Download(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer obj.Body.Close()

	httpx.Attachment(w, doc.Filename, doc.ContentType, obj.Size)
	stream(w, r, obj.Body)
}

// HandleDelete godoc
//
//	@Summary		Delete Document
//	@Tags			Documents
//	@Produce		json
//	@Param			id	path		string	true	"Document ID"
//	@Success		200	{object}	disclosuresdk.DeleteDocumentResponse
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/documents/{id} [delete].
func (h *DocumentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	warnings, err := h.DocumentService.Delete(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, disclosuresdk.DeleteDocumentResponse{
		Deleted:  true,
		Warnings: toWarnings(warnings),
	})
}

// stream copies a blob to the client once headers are written. A failure
// here can only be logged.
func stream(w http.ResponseWriter, r *http.Request, body io.Reader) {
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		slogx.FromContext(r.Context()).Warn("download interrupted", slog.Any("error", err))
	}
}
