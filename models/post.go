package models

import "encoding/json"

// Post is a news/humor article as served by /api/posts/.
// FeaturedImage is a path relative to the CDN base; see FeaturedImageURL.
type Post struct {
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
	IsLiked       bool     `json:"is_liked"`
	CreatedOn     string   `json:"created_on"`
	UpdatedOn     string   `json:"updated_on"`
}

var postFields = []string{
	"id", "title", "slug", "author", "featured_image", "excerpt", "content", "status",
	"category", "language", "number_of_views", "likes_count", "comment_count", "is_liked",
	"created_on", "updated_on",
}

func (p *Post) UnmarshalJSON(data []byte) error {
	if err := requireFields("Post", data, postFields...); err != nil {
		return err
	}
	type alias Post
	return json.Unmarshal(data, (*alias)(p))
}

func (p Post) FeaturedImageURL(cdnBase string) string {
	return MediaURL(cdnBase, p.FeaturedImage)
}

// FilterByLanguage keeps posts whose language equals lang, preserving order.
func FilterByLanguage(posts []Post, lang Language) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Language == lang {
			out = append(out, p)
		}
	}
	return out
}
