package dto

import "jessster/models"

// PostDTO is a backend post plus resolved media and plain-text renderings.
type PostDTO struct {
	models.Post
	ImageURL    string `json:"featured_image_url"`
	ExcerptText string `json:"excerpt_text"`
	// ContentText is filled only when the caller asks for reader mode.
	ContentText string `json:"content_text,omitempty"`
}

type VideoDTO struct {
	models.Video
	// SourceURL is the CDN asset, or the embed found in the description.
	SourceURL string `json:"source_url,omitempty"`
}

type CommentDTO struct {
	models.Comment
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// HomeDTO is the landing screen: posts, categories and videos of one language.
type HomeDTO struct {
	Language   models.Language   `json:"language" example:"en"`
	Posts      []PostDTO         `json:"posts"`
	Categories []models.Category `json:"categories"`
	Videos     []VideoDTO        `json:"videos"`
}

type CommentRequestDTO struct {
	Content string `json:"content" binding:"required" example:"ha!"`
}

type LikeResponseDTO struct {
	Slug  string `json:"slug" example:"tech-giant-introduces-new-feature"`
	Liked bool   `json:"liked" example:"true"`
}
