package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jessster/cmd/api/dto"
	"jessster/gateway"
	"jessster/logger"
	"jessster/models"
	"jessster/parser"
)

const publicSiteURL = "https://www.jessster.com/posts/"

// ContentService maps gateway results onto the facade's DTOs.
type ContentService struct {
	gw *gateway.Client
}

func NewContentService(gw *gateway.Client) *ContentService {
	return &ContentService{gw: gw}
}

type ListPostsInput struct {
	Language models.Language
	Category string
	SortBy   gateway.SortKey
	Reader   bool
}

// ListPosts picks the narrowest gateway operation for in.
func (s *ContentService) ListPosts(ctx context.Context, in ListPostsInput) ([]dto.PostDTO, error) {
	var (
		posts []models.Post
		err   error
	)
	switch {
	case in.SortBy != "":
		posts, err = s.gw.QueryPosts(ctx, gateway.PostQuery{Language: in.Language, Category: in.Category, SortBy: in.SortBy})
	case in.Category != "":
		posts, err = s.gw.ListPostsByCategory(ctx, in.Category, in.Language)
	case in.Language != "":
		posts, err = s.gw.ListPosts(ctx, in.Language)
	default:
		posts, err = s.gw.QueryPosts(ctx, gateway.PostQuery{})
	}
	if err != nil {
		return nil, err
	}
	return s.mapPosts(posts, in.Reader), nil
}

func (s *ContentService) ListCategories(ctx context.Context, lang models.Language) ([]models.Category, error) {
	cats, err := s.gw.ListCategories(ctx, lang)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

func (s *ContentService) ListVideos(ctx context.Context, lang models.Language) ([]dto.VideoDTO, error) {
	videos, err := s.gw.ListVideos(ctx, lang)
	if err != nil {
		return nil, err
	}
	return s.mapVideos(videos), nil
}

func (s *ContentService) Search(ctx context.Context, q string) ([]dto.PostDTO, error) {
	results, err := s.gw.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(results))
	for _, r := range results {
		posts = append(posts, r.ToPost())
	}
	return s.mapPosts(posts, false), nil
}

// Home loads posts, categories and videos of one language concurrently.
// The first failure cancels the other calls.
func (s *ContentService) Home(ctx context.Context, lang models.Language) (dto.HomeDTO, error) {
	out := dto.HomeDTO{Language: lang}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.gw.ListPosts(ctx, lang)
		if err != nil {
			return err
		}
		out.Posts = s.mapPosts(posts, false)
		return nil
	})
	g.Go(func() error {
		cats, err := s.ListCategories(ctx, lang)
		if err != nil {
			return err
		}
		out.Categories = cats
		return nil
	})
	g.Go(func() error {
		videos, err := s.gw.ListVideos(ctx, lang)
		if err != nil {
			return err
		}
		out.Videos = s.mapVideos(videos)
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.HomeDTO{}, err
	}
	return out, nil
}

func (s *ContentService) ListComments(ctx context.Context, slug string) ([]dto.CommentDTO, error) {
	comments, err := s.gw.ListComments(ctx, slug)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		d := dto.CommentDTO{Comment: c}
		if c.ProfileImage != nil {
			d.ProfileImageURL = models.MediaURL(s.gw.CDNBaseURL(), *c.ProfileImage)
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *ContentService) AddComment(ctx context.Context, slug, content string) error {
	return s.gw.AddComment(ctx, slug, content)
}

func (s *ContentService) ToggleLike(ctx context.Context, slug string) (dto.LikeResponseDTO, error) {
	liked, err := s.gw.ToggleLike(ctx, slug)
	if err != nil {
		return dto.LikeResponseDTO{}, err
	}
	return dto.LikeResponseDTO{Slug: slug, Liked: liked}, nil
}

func (s *ContentService) ListLikedPosts(ctx context.Context) ([]dto.PostDTO, error) {
	posts, err := s.gw.ListLikedPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapPosts(posts, false), nil
}

func (s *ContentService) mapPosts(posts []models.Post, reader bool) []dto.PostDTO {
	cdn := s.gw.CDNBaseURL()
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		d := dto.PostDTO{
			Post:        p,
			ImageURL:    p.FeaturedImageURL(cdn),
			ExcerptText: parser.PlainText(p.Excerpt),
		}
		if d.ImageURL == "" {
			d.ImageURL = parser.LeadImage(p.Content)
		}
		if reader {
			d.ContentText = readerText(p)
		}
		out = append(out, d)
	}
	return out
}

// readerText falls back to plain text when readability finds nothing.
func readerText(p models.Post) string {
	text, err := parser.ReaderText(p.Content, publicSiteURL+p.Slug)
	if err != nil {
		logger.DebugWithFields("reader mode fallback", logger.Fields{"slug": p.Slug, "error": err.Error()})
		return parser.PlainText(p.Content)
	}
	return text
}

func (s *ContentService) mapVideos(videos []models.Video) []dto.VideoDTO {
	cdn := s.gw.CDNBaseURL()
	out := make([]dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		d := dto.VideoDTO{Video: v}
		if src, ok := parser.VideoSource(v, cdn); ok {
			d.SourceURL = src
		}
		out = append(out, d)
	}
	return out
}
