package http

import (
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleIssue godoc
//
//	@Summary		Invite To Property
//	@Description	Issues a single-use invite link and emails it. A failed email is reported as a warning; the link in the response still works.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Property ID"
//	@Param			request	body		disclosuresdk.IssueInviteRequest	true	"Invitee"
//	@Success		201		{object}	disclosuresdk.IssueInviteResponse
//	@Failure		400		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/invites [post].
func (h *InvitesHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req disclosuresdk.IssueInviteRequest
	if err := httpx.DecodeJSON(w, r, &req, maxJSONBody); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	res, err := h.InviteService.Issue(r.Context(), id, r.PathValue("id"), service.IssueInviteInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, disclosuresdk.IssueInviteResponse{
		ID:         res.Invite.ID,
		PropertyID: res.Invite.PropertyID,
		Email:      res.Invite.Email,
		Role:       res.Invite.Role.String(),
		ExpiresAt:  res.Invite.ExpiresAt,
		Token:      res.Token,
		Link:       res.Link,
		EmailSent:  res.EmailSent,
		Warnings:   toWarnings(res.Warnings),
	})
}

// HandleInspect godoc
//
//	@Summary		Inspect Invite
//	@Description	Public. Describes a pending invite so the landing page can show who it is for.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	disclosuresdk.InviteInfo
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	disclosuresdk.ErrorResponse	"already accepted"
//	@Failure		410		{object}	disclosuresdk.ErrorResponse	"expired"
//	@Router			/v1/invites/{token} [get].
func (h *InvitesHandler) HandleInspect(w http.ResponseWriter, r *http.Request) {
	info, err := h.InviteService.Inspect(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, disclosuresdk.InviteInfo{
		Email:      info.Email,
		Role:       info.Role.String(),
		PropertyID: info.PropertyID,
		OrgID:      info.OrgID,
		ExpiresAt:  info.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept Invite
//	@Description	Redeems an invite for the caller. The caller's email and org must match the invite. Seller invites make the caller the property's seller.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	disclosuresdk.AcceptInviteResponse
//	@Failure		401		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	disclosuresdk.ErrorResponse	"wrong org or email mismatch"
//	@Failure		404		{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	disclosuresdk.ErrorResponse	"already accepted"
//	@Failure		410		{object}	disclosuresdk.ErrorResponse	"expired"
//	@Security		BearerAuth
//	@Router			/v1/invites/{token}/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.InviteService.Accept(r.Context(), id, r.PathValue("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := disclosuresdk.AcceptInviteResponse{
		PropertyID: res.Invite.PropertyID,
		Role:       res.Invite.Role.String(),
		User:       toUser(res.User),
	}
	if res.Invite.AcceptedAt != nil {
		out.AcceptedAt = *res.Invite.AcceptedAt
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
