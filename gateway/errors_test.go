package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jessster/models"
)

func TestErrorKindsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&Error{Op: "ListPosts", Kind: ErrTransport, Err: cause})

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "ListPosts")

	unauth := error(&Error{Op: "FetchProfile", Kind: ErrUnauthenticated})
	assert.ErrorIs(t, unauth, ErrUnauthenticated)
	assert.ErrorIs(t, unauth, ErrInvalidRequest)
	assert.Zero(t, StatusCode(unauth))
	assert.Zero(t, StatusCode(cause))
}

func TestEmptyBodyIsNoResponseBody(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/categories/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	_, err := fb.client.ListCategories(context.Background(), models.English)
	assert.ErrorIs(t, err, ErrNoResponseBody)
}

func TestMalformedJSONIsDecodeFailure(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/categories/", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"oops":`))
	})

	_, err := fb.client.ListCategories(context.Background(), models.English)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestServerErrorIsUnexpectedStatus(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/videos/", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "Server Error (500)")
	})

	_, err := fb.client.ListVideos(context.Background(), models.English)
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "ListVideos", ge.Op)
	assert.Equal(t, http.StatusInternalServerError, ge.StatusCode)
	assert.Equal(t, "Server Error (500)", ge.Body)
}

func TestConnectionRefusedIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url})
	_, err := c.ListPosts(context.Background(), models.English)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCancelledContextIsTransportFailure(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.GET("/api/posts/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fb.client.ListPosts(ctx, models.English)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMalformedBaseURLIsInvalidRequest(t *testing.T) {
	c := New(Config{BaseURL: "not a url"})

	_, err := c.ListCategories(context.Background(), models.English)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	body := []byte(strings.Repeat("a", maxErrorBody-1) + "é" + "tail")

	got := truncate(body)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxErrorBody-1, len(got))

	short := "ошибка"
	assert.Equal(t, short, truncate([]byte(short)))
}
