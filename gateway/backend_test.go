package gateway

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"jessster/tokenstore"
)

// fakeBackend is an in-process stand-in for the Jessster REST server.
type fakeBackend struct {
	t      *testing.T
	engine *gin.Engine
	server *httptest.Server
	store  *tokenstore.Memory
	client *Client

	mu       sync.Mutex
	requests []*http.Request
}

func newFakeBackend(t *testing.T, cfg Config) *fakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := &fakeBackend{t: t, engine: gin.New(), store: tokenstore.NewMemory()}
	fb.engine.Use(func(c *gin.Context) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, c.Request.Clone(c.Request.Context()))
		fb.mu.Unlock()
		c.Next()
	})
	fb.server = httptest.NewServer(fb.engine)
	t.Cleanup(fb.server.Close)

	cfg.BaseURL = fb.server.URL
	fb.client = New(cfg, WithHTTPClient(fb.server.Client()), WithTokenStore(fb.store))
	return fb
}

func (fb *fakeBackend) hits() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

func (fb *fakeBackend) lastRequest() *http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requests) == 0 {
		fb.t.Fatal("no request reached the backend")
	}
	return fb.requests[len(fb.requests)-1]
}

func (fb *fakeBackend) login(token string) {
	_ = fb.store.Save(fb.t.Context(), tokenstore.Session{Token: token, Authenticated: true})
}

func postFixture(id int, lang string) gin.H {
	return gin.H{
		"id":              id,
		"title":           "Post",
		"slug":            "post-slug",
		"author":          "jess",
		"featured_image":  "image/upload/p.jpg",
		"excerpt":         "<p>e</p>",
		"content":         "<p>c</p>",
		"status":          1,
		"category":        gin.H{"id": 1, "name": "News", "language": lang, "slug": "news"},
		"language":        lang,
		"number_of_views": 10,
		"likes_count":     2,
		"comment_count":   0,
		"is_liked":        false,
		"created_on":      "2025-01-01T00:00:00Z",
		"updated_on":      "2025-01-01T00:00:00Z",
	}
}

func searchFixture(id int) gin.H {
	p := postFixture(id, "en")
	delete(p, "is_liked")
	return p
}
