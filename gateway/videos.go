package gateway

import (
	"context"
	"net/http"

	"jessster/models"
)

// ListVideos returns the videos of one language. The endpoint names its
// language parameter "lang", unlike the post endpoints.
func (c *Client) ListVideos(ctx context.Context, lang models.Language) ([]models.Video, error) {
	var videos []models.Video
	err := c.do(ctx, call{
		op:     "ListVideos",
		method: http.MethodGet,
		path:   "/api/videos/",
		query:  langQuery("lang", lang),
	}, &videos)
	if err != nil {
		return nil, err
	}
	return videos, nil
}
