package http

import (
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type ArtifactsHandler struct {
	ArtifactService *service.ArtifactService
}

// HandleBuildForm2 godoc
//
//	@Summary		Generate Form 2
//	@Description	Renders the disclosure statement from the current checklist and stores it as the next version.
//	@Tags			Artifacts
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		201	{object}	disclosuresdk.Form2Version
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		503	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		504	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/form2 [post].
func (h *ArtifactsHandler) HandleBuildForm2(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	v, err := h.ArtifactService.BuildForm2(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toForm2(v))
}

// HandleLatestForm2 godoc
//
//	@Summary		Latest Form 2
//	@Tags			Artifacts
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	disclosuresdk.Form2Version
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/form2/latest [get].
func (h *ArtifactsHandler) HandleLatestForm2(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	v, err := h.ArtifactService.LatestForm2(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toForm2(v))
}

// HandleDownloadForm2 godoc
//
//	@Summary		Download Latest Form 2
//	@Description	Served inline so browsers display it.
//	@Tags			Artifacts
//	@Produce		application/pdf,text/html
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{file}		binary
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		503	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/form2/latest/download [get].
func (h *ArtifactsHandler) HandleDownloadForm2(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	v, obj, err := h.ArtifactService.DownloadForm2(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer obj.Body.Close()

	httpx.Inline(w, service.Form2Filename(v), v.ContentType, obj.Size)
	stream(w, r, obj.Body)
}

// HandleBuildServePack godoc
//
//	@Summary		Generate Serve Pack
//	@Description	Bundles the latest Form 2 with the newest document for each required checklist item.
//	@Tags			Artifacts
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		201	{object}	disclosuresdk.ServePack
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		412	{object}	disclosuresdk.ErrorResponse	"no Form 2 has been generated"
//	@Failure		503	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/serve-pack [post].
func (h *ArtifactsHandler) HandleBuildServePack(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sp, err := h.ArtifactService.BuildServePack(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toServePack(sp))
}

// HandleLatestServePack godoc
//
//	@Summary		Latest Serve Pack
//	@Tags			Artifacts
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	disclosuresdk.ServePack
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/serve-pack/latest [get].
func (h *ArtifactsHandler) HandleLatestServePack(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sp, err := h.ArtifactService.LatestServePack(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toServePack(sp))
}

// HandleDownloadServePack godoc
//
//	@Summary		Download Latest Serve Pack
//	@Tags			Artifacts
//	@Produce		application/zip
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{file}		binary
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		503	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/serve-pack/latest/download [get].
func (h *ArtifactsHandler) HandleDownloadServePack(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sp, obj, err := h.ArtifactService.DownloadServePack(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer obj.Body.Close()

	httpx.Attachment(w, service.ServePackFilename(sp), "application/zip", obj.Size)
	stream(w, r, obj.Body)
}
