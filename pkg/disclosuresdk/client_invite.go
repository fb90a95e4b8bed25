package disclosuresdk

import (
	"context"
	"net/http"
	"net/url"
)

// InspectInvite describes a pending invite. This is a public endpoint.
func (c *SDKClient) InspectInvite(ctx context.Context, token string) (*InviteInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var info InviteInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}
