package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postJSON = `{
	"id": 7,
	"title": "Tech Giant Introduces New Feature",
	"slug": "tech-giant-introduces-new-feature",
	"author": "jess",
	"featured_image": "image/upload/v1/posts/cool.jpg",
	"excerpt": "<p>Short</p>",
	"content": "<p>Long <b>body</b></p>",
	"status": 1,
	"category": {"id": 2, "name": "Tech", "language": "en", "slug": "tech"},
	"language": "en",
	"number_of_views": 120,
	"likes_count": 4,
	"comment_count": 2,
	"is_liked": true,
	"created_on": "2025-01-10T10:00:00Z",
	"updated_on": "2025-01-11T10:00:00Z"
}`

func TestPostDecode(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(postJSON), &p))

	assert.Equal(t, 7, p.ID)
	assert.Equal(t, English, p.Language)
	assert.Equal(t, Category{ID: 2, Name: "Tech", Language: "en", Slug: "tech"}, p.Category)
	assert.True(t, p.IsLiked)
	assert.Equal(t, 120, p.NumberOfViews)
	assert.Equal(t, "https://res.cloudinary.com/dbm8xbouw/image/upload/v1/posts/cool.jpg",
		p.FeaturedImageURL("https://res.cloudinary.com/dbm8xbouw/"))
}

func TestPostDecodeMissingFieldFails(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(postJSON), &raw))
	delete(raw, "likes_count")
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var p Post
	err = json.Unmarshal(data, &p)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "likes_count", missing.Field)
	assert.Equal(t, "Post", missing.Type)
}

func TestPostDecodeNullCategoryFails(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(postJSON), &raw))
	raw["category"] = nil
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var p Post
	var missing *MissingFieldError
	assert.True(t, errors.As(json.Unmarshal(data, &p), &missing))
}

func TestPostDecodeNestedCategoryMissingSlug(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(postJSON), &raw))
	raw["category"] = map[string]any{"id": 2, "name": "Tech", "language": "en"}
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var p Post
	var missing *MissingFieldError
	require.True(t, errors.As(json.Unmarshal(data, &p), &missing))
	assert.Equal(t, "Category", missing.Type)
	assert.Equal(t, "slug", missing.Field)
}

func TestPostDecodeUnknownLanguageIsKept(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(postJSON), &raw))
	raw["language"] = "fr"
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var p Post
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, Language("fr"), p.Language)
	assert.False(t, p.Language.Valid())
}

func TestFilterByLanguagePreservesOrder(t *testing.T) {
	posts := []Post{
		{ID: 3, Language: English},
		{ID: 1, Language: Russian},
		{ID: 2, Language: English},
	}
	got := FilterByLanguage(posts, English)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Empty(t, FilterByLanguage(posts, Arabic))
}

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(" " + string(l) + " ")
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	got, err := ParseLanguage("ES")
	require.NoError(t, err)
	assert.Equal(t, Spanish, got)

	_, err = ParseLanguage("de")
	assert.Error(t, err)
}

func TestMediaURL(t *testing.T) {
	testCases := []struct {
		name  string
		base  string
		asset string
		want  string
	}{
		{"relative", "https://cdn.test/", "a/b.jpg", "https://cdn.test/a/b.jpg"},
		{"base without slash", "https://cdn.test", "a/b.jpg", "https://cdn.test/a/b.jpg"},
		{"leading slash", "https://cdn.test/", "/a/b.jpg", "https://cdn.test/a/b.jpg"},
		{"absolute", "https://cdn.test/", "https://other.test/x.mp4", "https://other.test/x.mp4"},
		{"empty", "https://cdn.test/", "  ", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MediaURL(tc.base, tc.asset))
		})
	}
}

func TestSearchResultToPost(t *testing.T) {
	body := `{"results": [` + postJSON + `]}`
	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Results, 1)

	post := resp.Results[0].ToPost()
	assert.Equal(t, 7, post.ID)
	assert.Equal(t, "tech", post.Category.Slug)
	assert.False(t, post.IsLiked)
}

func TestSearchResponseRequiresResults(t *testing.T) {
	var resp SearchResponse
	var missing *MissingFieldError
	assert.True(t, errors.As(json.Unmarshal([]byte(`{}`), &resp), &missing))
}

func TestCommentDecodeOptionalFields(t *testing.T) {
	body := `[
		{"id":1,"post":7,"user":3,"content":"first","created_on":"x","updated_on":"x","parent_comment":null,"username":"ann","profile_image":null},
		{"id":2,"post":7,"user":4,"content":"reply","created_on":"y","updated_on":"y","parent_comment":1,"username":"bob","profile_image":"p/bob.png"}
	]`
	var comments []Comment
	require.NoError(t, json.Unmarshal([]byte(body), &comments))
	require.Len(t, comments, 2)

	assert.False(t, comments[0].IsReply())
	assert.Nil(t, comments[0].ProfileImage)
	assert.True(t, comments[1].IsReply())
	assert.Equal(t, 1, *comments[1].ParentComment)
	assert.Equal(t, "p/bob.png", *comments[1].ProfileImage)
}

func TestVideoAssetURL(t *testing.T) {
	body := `[
		{"id":1,"title":"a","video":"video/upload/a.mp4","description":"","language":"en","status":1,"created_at":"t"},
		{"id":2,"title":"b","description":"<iframe src=\"https://www.youtube.com/embed/x\"></iframe>","language":"ru","status":1,"created_at":"t"}
	]`
	var videos []Video
	require.NoError(t, json.Unmarshal([]byte(body), &videos))
	require.Len(t, videos, 2)

	u, ok := videos[0].AssetURL("https://cdn.test/")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.test/video/upload/a.mp4", u)

	_, ok = videos[1].AssetURL("https://cdn.test/")
	assert.False(t, ok)
}

func TestLikeResultRequiresLikesCount(t *testing.T) {
	var r LikeResult
	var missing *MissingFieldError
	require.True(t, errors.As(json.Unmarshal([]byte(`{"liked": true}`), &r), &missing))
	assert.Equal(t, "likes_count", missing.Field)

	require.NoError(t, json.Unmarshal([]byte(`{"liked": false, "likes_count": 0}`), &r))
	assert.False(t, r.Liked)
}

func TestAccountDecode(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "username": "jess", "bio": null}`), &a))
	assert.Equal(t, "jess", a.Username)
	assert.Nil(t, a.Bio)
	assert.Equal(t, "", a.ProfilePictureURL("https://cdn.test/"))

	var missing *MissingFieldError
	assert.True(t, errors.As(json.Unmarshal([]byte(`{"id": 5}`), &a), &missing))
}
