package gateway

import (
	"context"
	"net/http"

	"jessster/models"
)

type commentRequest struct {
	Content string `json:"content" validate:"required"`
	Post    string `json:"post" validate:"required"`
}

// ListComments returns a post's comments. Anonymous callers are allowed; the
// token is sent when one is stored.
func (c *Client) ListComments(ctx context.Context, slug string) ([]models.Comment, error) {
	if err := checkSlug("ListComments", slug); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := c.do(ctx, call{
		op:     "ListComments",
		method: http.MethodGet,
		path:   slugPath(slug, "comments"),
		auth:   authOptional,
		ok:     only(http.StatusOK),
	}, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a comment as the stored account. Only 201 Created counts as success.
func (c *Client) AddComment(ctx context.Context, slug, content string) error {
	if err := checkSlug("AddComment", slug); err != nil {
		return err
	}
	body := commentRequest{Content: content, Post: slug}
	if err := c.validate.StructCtx(ctx, body); err != nil {
		return newError("AddComment", ErrInvalidRequest, err)
	}

	return c.do(ctx, call{
		op:     "AddComment",
		method: http.MethodPost,
		path:   slugPath(slug, "comments"),
		body:   body,
		auth:   authRequired,
		ok:     only(http.StatusCreated),
	}, nil)
}
