package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"authors-api/internal/domain/models"
	"authors-api/internal/lib/excerpt"
	"authors-api/internal/lib/logger/sl"
	"authors-api/internal/storage"
)

const (
	descriptionLimit = 200
	slugAttempts     = 5
)

// reservedSlugs are path segments routed before /articles/{slug}.
var reservedSlugs = map[string]struct{}{
	"search": {},
}

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrForbidden       = errors.New("only the author can change this article")
)

type Storage interface {
	SaveArticle(ctx context.Context, art models.Article) (models.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	UpdateArticle(ctx context.Context, art models.Article) (models.Article, error)
	SearchArticles(ctx context.Context, f models.SearchFilter) ([]models.Article, error)

	SaveComment(ctx context.Context, articleID, authorID int64, body string) (models.Comment, error)
	Comments(ctx context.Context, articleID int64) ([]models.Comment, error)

	UpsertRating(ctx context.Context, articleID, userID int64, score int) error
	SetReaction(ctx context.Context, articleID, userID int64, kind models.Reaction) error
	ClearReaction(ctx context.Context, articleID, userID int64, kind models.Reaction) error
	ToggleFavorite(ctx context.Context, articleID, userID int64) (bool, error)
	RemoveFavorite(ctx context.Context, articleID, userID int64) error

	ArticleStats(ctx context.Context, articleID int64) (models.ArticleStats, error)
	ViewerState(ctx context.Context, articleID, userID int64) (models.ViewerState, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log,
		storage: storage,
	}
}

// Create stores a new article by authorID. The slug is derived from the
// title; an empty description is derived from the body.
func (s *Service) Create(ctx context.Context, authorID int64, title, description, body string, tags []string) (models.ArticleView, error) {
	const op = "service.article.Create"

	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(description) == "" {
		description = excerpt.Make(body, descriptionLimit)
	}

	base := slug.Make(title)
	if base == "" {
		base = "article"
	}

	art := models.Article{
		Title:       title,
		Description: description,
		Body:        body,
		Tags:        normalizeTags(tags),
		AuthorID:    authorID,
	}

	var err error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		art.Slug = base
		if _, reserved := reservedSlugs[base]; reserved || attempt > 0 {
			art.Slug = base + "-" + uuid.NewString()[:8]
		}

		var saved models.Article
		saved, err = s.storage.SaveArticle(ctx, art)
		if err == nil {
			log.Info("article created", slog.String("slug", saved.Slug))
			return s.view(ctx, saved, authorID)
		}
		if !errors.Is(err, storage.ErrArticleExists) {
			break
		}
	}

	log.Error("failed to save article", sl.Error(err))
	return models.ArticleView{}, fmt.Errorf("%s: %w", op, err)
}

// Get returns the article with engagement as seen by viewerID (0 for anonymous).
func (s *Service) Get(ctx context.Context, slug string, viewerID int64) (models.ArticleView, error) {
	const op = "service.article.Get"

	art, err := s.bySlug(ctx, op, slug)
	if err != nil {
		return models.ArticleView{}, err
	}

	return s.view(ctx, art, viewerID)
}

// Update applies patch to the article. Only its author may do so; the slug
// does not change with the title.
func (s *Service) Update(ctx context.Context, slug string, userID int64, patch models.ArticlePatch) (models.ArticleView, error) {
	const op = "service.article.Update"

	log := s.log.With(slog.String("op", op))

	art, err := s.bySlug(ctx, op, slug)
	if err != nil {
		return models.ArticleView{}, err
	}

	if art.AuthorID != userID {
		log.Info("update by non-author rejected", slog.String("slug", slug), slog.Int64("user_id", userID))
		return models.ArticleView{}, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if patch.Title != nil {
		art.Title = *patch.Title
	}
	if patch.Body != nil {
		art.Body = *patch.Body
	}
	if patch.Description != nil {
		art.Description = *patch.Description
		if strings.TrimSpace(art.Description) == "" {
			art.Description = excerpt.Make(art.Body, descriptionLimit)
		}
	}
	art.Tags = nil
	if patch.Tags != nil {
		art.Tags = normalizeTags(patch.Tags)
	}

	updated, err := s.storage.UpdateArticle(ctx, art)
	if err != nil {
		log.Error("failed to update article", sl.Error(err))
		return models.ArticleView{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.view(ctx, updated, userID)
}

// Search returns the matching articles oldest first, each with engagement
// as seen by viewerID.
func (s *Service) Search(ctx context.Context, f models.SearchFilter, viewerID int64) ([]models.ArticleView, error) {
	const op = "service.article.Search"

	log := s.log.With(slog.String("op", op))

	arts, err := s.storage.SearchArticles(ctx, f)
	if err != nil {
		log.Error("failed to search articles", sl.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]models.ArticleView, 0, len(arts))
	for _, art := range arts {
		v, err := s.view(ctx, art, viewerID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		views = append(views, v)
	}

	return views, nil
}

func (s *Service) Comment(ctx context.Context, slug string, authorID int64, body string) (models.Comment, error) {
	const op = "service.article.Comment"

	art, err := s.bySlug(ctx, op, slug)
	if err != nil {
		return models.Comment{}, err
	}

	c, err := s.storage.SaveComment(ctx, art.ID, authorID, body)
	if err != nil {
		s.log.Error("failed to save comment", slog.String("op", op), sl.Error(err))
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) Comments(ctx context.Context, slug string) ([]models.Comment, error) {
	const op = "service.article.Comments"

	art, err := s.bySlug(ctx, op, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.storage.Comments(ctx, art.ID)
	if err != nil {
		s.log.Error("failed to list comments", slog.String("op", op), sl.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

func (s *Service) bySlug(ctx context.Context, op, slug string) (models.Article, error) {
	art, err := s.storage.ArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			return models.Article{}, fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		s.log.Error("failed to get article", slog.String("op", op), sl.Error(err))
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return art, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
