package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentFixture(id int, parent any) gin.H {
	return gin.H{
		"id": id, "post": 7, "user": 3, "content": "lol",
		"created_on": "t", "updated_on": "t",
		"parent_comment": parent, "username": "ann", "profile_image": nil,
	}
}

func TestListCommentsAnonymous(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/posts/:slug/comments/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{commentFixture(1, nil), commentFixture(2, 1)})
	})

	comments, err := fb.client.ListComments(context.Background(), "post-slug")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.True(t, comments[1].IsReply())
	assert.Empty(t, fb.lastRequest().Header.Get("Authorization"))

	fb.login("tok")
	_, err = fb.client.ListComments(context.Background(), "post-slug")
	require.NoError(t, err)
	assert.Equal(t, "Token tok", fb.lastRequest().Header.Get("Authorization"))
}

func TestListCommentsRequiresExactly200(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/posts/:slug/comments/", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, []gin.H{})
	})

	_, err := fb.client.ListComments(context.Background(), "post-slug")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusAccepted, StatusCode(err))
}

func TestAddCommentWithoutTokenSendsNothing(t *testing.T) {
	fb := newFakeBackend(t, Config{})

	err := fb.client.AddComment(context.Background(), "post-slug", "hello")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, fb.hits())
}

func TestAddComment(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.login("tok")

	var body map[string]string
	status := http.StatusCreated
	fb.engine.POST("/api/posts/:slug/comments/", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(status, commentFixture(5, nil))
	})

	require.NoError(t, fb.client.AddComment(context.Background(), "post-slug", "hello"))
	assert.Equal(t, map[string]string{"content": "hello", "post": "post-slug"}, body)
	assert.Equal(t, "Token tok", fb.lastRequest().Header.Get("Authorization"))

	status = http.StatusOK
	err := fb.client.AddComment(context.Background(), "post-slug", "hello")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestAddCommentEmptyContent(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.login("tok")

	err := fb.client.AddComment(context.Background(), "post-slug", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, fb.hits())
}
