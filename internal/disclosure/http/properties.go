package http

import (
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type PropertiesHandler struct {
	PropertyService *service.PropertyService
	DeletionService *service.DeletionService
}

// HandleList godoc
//
//	@Summary		List Properties
//	@Description	Properties visible to the caller, newest first. Admins see the whole org, agents their own listings, sellers the properties they sell.
//	@Tags			Properties
//	@Produce		json
//	@Success		200	{array}		disclosuresdk.Property
//	@Failure		401	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties [get].
func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	props, err := h.PropertyService.List(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]disclosuresdk.Property, 0, len(props))
	for _, p := range props {
		out = append(out, toProperty(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Property
//	@Description	Agents and admins create listings. Only admins may name another agent.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		disclosuresdk.CreatePropertyRequest	true	"Property"
//	@Success		201		{object}	disclosuresdk.Property
//	@Failure		400		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties [post].
func (h *PropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req disclosuresdk.CreatePropertyRequest
	if err := httpx.DecodeJSON(w, r, &req, maxJSONBody); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p, err := h.PropertyService.Create(r.Context(), id, service.CreatePropertyInput{
		Title:       req.Title,
		Address:     req.Address,
		Type:        req.Type,
		SellerEmail: req.SellerEmail,
		AgentEmail:  req.AgentEmail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProperty(p))
}

// HandleGet godoc
//
//	@Summary		Get Property
//	@Description	A property with its derived checklist and progress.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	disclosuresdk.PropertyDetail
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [get].
func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d, err := h.PropertyService.Get(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, disclosuresdk.PropertyDetail{
		Property:  toProperty(d.Property),
		Checklist: toChecklist(d.Checklist),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Property
//	@Description	Changes title, address or type. Omitted fields are left alone.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Property ID"
//	@Param			request	body		disclosuresdk.UpdatePropertyRequest	true	"Fields to change"
//	@Success		200		{object}	disclosuresdk.Property
//	@Failure		400		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [patch].
func (h *PropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req disclosuresdk.UpdatePropertyRequest
	if err := httpx.DecodeJSON(w, r, &req, maxJSONBody); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p, err := h.PropertyService.Update(r.Context(), id, r.PathValue("id"), service.UpdatePropertyInput{
		Title:   req.Title,
		Address: req.Address,
		Type:    req.Type,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(p))
}

// HandleDelete godoc
//
//	@Summary		Delete Property
//	@Description	Removes the property with its documents, artifacts and invites. Stored files that could not be removed are reported as warnings and retried later.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	disclosuresdk.DeletePropertyResponse
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [delete].
func (h *PropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.DeletionService.DeleteProperty(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, disclosuresdk.DeletePropertyResponse{
		Deleted:  res.Deleted,
		Warnings: toWarnings(res.Warnings),
	})
}

// HandleAssignAgent godoc
//
//	@Summary		Assign Agent
//	@Description	Hands a property to another agent in the same org. Admin only.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Property ID"
//	@Param			request	body		disclosuresdk.AssignAgentRequest	true	"Agent"
//	@Success		200		{object}	disclosuresdk.Property
//	@Failure		400		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/assign-agent [post].
func (h *PropertiesHandler) HandleAssignAgent(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req disclosuresdk.AssignAgentRequest
	if err := httpx.DecodeJSON(w, r, &req, maxJSONBody); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p, err := h.PropertyService.AssignAgent(r.Context(), id, r.PathValue("id"), req.AgentEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProperty(p))
}

// HandleChecklist godoc
//
//	@Summary		Property Checklist
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property ID"
//	@Success		200	{object}	disclosuresdk.Checklist
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/checklist [get].
func (h *PropertiesHandler) HandleChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.PropertyService.Checklist(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toChecklist(c))
}
