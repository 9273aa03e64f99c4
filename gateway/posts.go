package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"jessster/models"
)

// SortKey selects a server-side ordering for post listings.
type SortKey string

const (
	SortViews    SortKey = "views"
	SortLikes    SortKey = "likes"
	SortComments SortKey = "comments"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortViews, SortLikes, SortComments:
		return true
	}
	return false
}

// ParseSortKey accepts views, likes or comments.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidRequest, s)
	}
	return k, nil
}

// PostQuery parameterizes GET /api/posts/. Zero fields are omitted.
type PostQuery struct {
	Language models.Language
	Category string
	SortBy   SortKey
}

func (q PostQuery) values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sort_by", string(q.SortBy))
		v.Set("order", "desc")
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Language != "" {
		v.Set("language", string(q.Language))
	}
	return v
}

// QueryPosts lists posts in server order.
func (c *Client) QueryPosts(ctx context.Context, q PostQuery) ([]models.Post, error) {
	return c.queryPosts(ctx, "QueryPosts", q)
}

func (c *Client) queryPosts(ctx context.Context, op string, q PostQuery) ([]models.Post, error) {
	if q.SortBy != "" && !q.SortBy.Valid() {
		return nil, newError(op, ErrInvalidRequest, fmt.Errorf("unknown sort key %q", q.SortBy))
	}

	var posts []models.Post
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/api/posts/",
		query:  q.values(),
	}, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPosts returns the posts of one language. Posts the server returns in
// another language are dropped.
func (c *Client) ListPosts(ctx context.Context, lang models.Language) ([]models.Post, error) {
	if !lang.Valid() {
		return nil, newError("ListPosts", ErrInvalidRequest, fmt.Errorf("unsupported language %q", lang))
	}
	posts, err := c.queryPosts(ctx, "ListPosts", PostQuery{Language: lang})
	if err != nil {
		return nil, err
	}
	return models.FilterByLanguage(posts, lang), nil
}

func (c *Client) ListPostsByCategory(ctx context.Context, categorySlug string, lang models.Language) ([]models.Post, error) {
	if strings.TrimSpace(categorySlug) == "" {
		return nil, newError("ListPostsByCategory", ErrInvalidRequest, fmt.Errorf("empty category"))
	}
	return c.queryPosts(ctx, "ListPostsByCategory", PostQuery{Language: lang, Category: categorySlug})
}

// ListMost returns posts sorted descending by key: most viewed, liked or commented.
func (c *Client) ListMost(ctx context.Context, key SortKey, lang models.Language) ([]models.Post, error) {
	if !key.Valid() {
		return nil, newError("ListMost", ErrInvalidRequest, fmt.Errorf("unknown sort key %q", key))
	}
	return c.queryPosts(ctx, "ListMost", PostQuery{Language: lang, SortBy: key})
}

func (c *Client) ListCategories(ctx context.Context, lang models.Language) ([]models.Category, error) {
	var cats []models.Category
	err := c.do(ctx, call{
		op:     "ListCategories",
		method: http.MethodGet,
		path:   "/api/categories/",
		query:  langQuery("language", lang),
	}, &cats)
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// Search runs a full-text query. A blank query or one that is not valid
// UTF-8 fails with ErrInvalidRequest without contacting the server.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, newError("Search", ErrInvalidRequest, fmt.Errorf("empty query"))
	}
	if !utf8.ValidString(query) {
		return nil, newError("Search", ErrInvalidRequest, fmt.Errorf("query is not valid UTF-8"))
	}

	var resp models.SearchResponse
	err := c.do(ctx, call{
		op:     "Search",
		method: http.MethodGet,
		path:   "/api/search/",
		query:  url.Values{"q": {query}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ListLikedPosts returns the posts liked by the stored account.
func (c *Client) ListLikedPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, call{
		op:     "ListLikedPosts",
		method: http.MethodGet,
		path:   "/api/user/liked-articles/",
		auth:   authOptional,
	}, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips the like state of a post and returns the new state.
func (c *Client) ToggleLike(ctx context.Context, slug string) (bool, error) {
	if err := checkSlug("ToggleLike", slug); err != nil {
		return false, err
	}

	var res models.LikeResult
	err := c.do(ctx, call{
		op:     "ToggleLike",
		method: http.MethodPost,
		path:   slugPath(slug, "like"),
		auth:   authOptional,
	}, &res)
	if err != nil {
		return false, err
	}
	return res.Liked, nil
}

// langQuery returns {key: lang}, or nil for an empty language.
func langQuery(key string, lang models.Language) url.Values {
	if lang == "" {
		return nil
	}
	return url.Values{key: {string(lang)}}
}
