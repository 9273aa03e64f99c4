package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jessster/cmd/api/dto"
	"jessster/cmd/api/services"
	"jessster/gateway"
	"jessster/models"
)

const defaultLanguage = models.English

// languageParam reads ?language=, defaulting to English.
func languageParam(c *gin.Context) (models.Language, bool) {
	raw := c.Query("language")
	if strings.TrimSpace(raw) == "" {
		return defaultLanguage, true
	}
	lang, err := models.ParseLanguage(raw)
	if err != nil {
		badRequest(c, err.Error())
		return "", false
	}
	return lang, true
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  Posts of one language, optionally filtered by category or sorted by views, likes or comments
// @Tags         posts
// @Param        language  query  string  false  "en, ru, ar or es"  default(en)
// @Param        category  query  string  false  "Category slug"
// @Param        sort_by   query  string  false  "views, likes or comments"
// @Param        reader    query  bool    false  "Include reader-mode content_text"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := languageParam(c)
		if !ok {
			return
		}
		in := services.ListPostsInput{Language: lang, Category: c.Query("category")}
		if raw := c.Query("sort_by"); raw != "" {
			key, err := gateway.ParseSortKey(raw)
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			in.SortBy = key
		}
		in.Reader, _ = strconv.ParseBool(c.DefaultQuery("reader", "false"))

		posts, err := svc.ListPosts(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Param        language  query  string  false  "en, ru, ar or es"  default(en)
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := languageParam(c)
		if !ok {
			return
		}
		cats, err := svc.ListCategories(c.Request.Context(), lang)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// ListVideosHandler godoc
// @Summary      List videos
// @Tags         videos
// @Param        language  query  string  false  "en, ru, ar or es"  default(en)
// @Produce      json
// @Success      200  {array}   dto.VideoDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /videos [get]
func ListVideosHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := languageParam(c)
		if !ok {
			return
		}
		videos, err := svc.ListVideos(c.Request.Context(), lang)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, videos)
	}
}

// SearchHandler godoc
// @Summary      Search posts
// @Tags         posts
// @Param        q  query  string  true  "Search text"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /search [get]
func SearchHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// HomeHandler godoc
// @Summary      Home screen
// @Description  Posts, categories and videos of one language, fetched concurrently
// @Tags         posts
// @Param        language  query  string  false  "en, ru, ar or es"  default(en)
// @Produce      json
// @Success      200  {object}  dto.HomeDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /home [get]
func HomeHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := languageParam(c)
		if !ok {
			return
		}
		home, err := svc.Home(c.Request.Context(), lang)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, home)
	}
}

// ListCommentsHandler godoc
// @Summary      List comments of a post
// @Tags         comments
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {array}   dto.CommentDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/comments [get]
func ListCommentsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := svc.ListComments(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// AddCommentHandler godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Param        slug  path  string                 true  "Post slug"
// @Param        body  body  dto.CommentRequestDTO  true  "Comment"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/comments [post]
func AddCommentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CommentRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.AddComment(c.Request.Context(), c.Param("slug"), in.Content); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "comment added"})
	}
}

// ToggleLikeHandler godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.LikeResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/like [post]
func ToggleLikeHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ToggleLike(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ListLikedPostsHandler godoc
// @Summary      Posts liked by the signed-in account
// @Tags         posts
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /liked [get]
func ListLikedPostsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.ListLikedPosts(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}
