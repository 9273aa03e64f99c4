package models

import "encoding/json"

// SearchResult is a post as returned by /api/search/, which omits is_liked.
type SearchResult struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featured_image"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Status        int      `json:"status"`
	Category      Category `json:"category"`
	Language      Language `json:"language"`
	NumberOfViews int      `json:"number_of_views"`
	LikesCount    int      `json:"likes_count"`
	CommentCount  int      `json:"comment_count"`
	CreatedOn     string   `json:"created_on"`
	UpdatedOn     string   `json:"updated_on"`
}

var searchResultFields = []string{
	"id", "title", "slug", "author", "featured_image", "excerpt", "content", "status",
	"category", "language", "number_of_views", "likes_count", "comment_count",
	"created_on", "updated_on",
}

// SearchResponse is the envelope of /api/search/.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	if err := requireFields("SearchResult", data, searchResultFields...); err != nil {
		return err
	}
	type alias SearchResult
	return json.Unmarshal(data, (*alias)(r))
}

func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	if err := requireFields("SearchResponse", data, "results"); err != nil {
		return err
	}
	type alias SearchResponse
	return json.Unmarshal(data, (*alias)(r))
}

// ToPost converts a search hit into a Post. The search endpoint does not report
// like state, so IsLiked is false.
func (r SearchResult) ToPost() Post {
	return Post{
		ID:            r.ID,
		Title:         r.Title,
		Slug:          r.Slug,
		Author:        r.Author,
		FeaturedImage: r.FeaturedImage,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		Status:        r.Status,
		Category:      r.Category,
		Language:      r.Language,
		NumberOfViews: r.NumberOfViews,
		LikesCount:    r.LikesCount,
		CommentCount:  r.CommentCount,
		IsLiked:       false,
		CreatedOn:     r.CreatedOn,
		UpdatedOn:     r.UpdatedOn,
	}
}
