package gateway

import (
	"context"
	"net/http"

	"jessster/models"
)

type profileUpdate struct {
	Username string `json:"username" validate:"required"`
}

// FetchProfile returns the stored account's profile.
func (c *Client) FetchProfile(ctx context.Context) (models.Account, error) {
	var acc models.Account
	err := c.do(ctx, call{
		op:     "FetchProfile",
		method: http.MethodGet,
		path:   "/api/profile/",
		auth:   authRequired,
	}, &acc)
	if err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

// UpdateProfile renames the stored account. The reply body is ignored.
func (c *Client) UpdateProfile(ctx context.Context, username string) error {
	body := profileUpdate{Username: username}
	if err := c.validate.StructCtx(ctx, body); err != nil {
		return newError("UpdateProfile", ErrInvalidRequest, err)
	}
	return c.do(ctx, call{
		op:     "UpdateProfile",
		method: http.MethodPut,
		path:   "/api/profile_update/",
		body:   body,
		auth:   authRequired,
	}, nil)
}

// DeleteAccount deletes the stored account. The session is left in place;
// call Logout afterwards.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, call{
		op:     "DeleteAccount",
		method: http.MethodDelete,
		path:   "/api/profile/",
		auth:   authRequired,
	}, nil)
}
