package article

import (
	"context"
	"fmt"
	"log/slog"

	"authors-api/internal/domain/models"
	"authors-api/internal/lib/logger/sl"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrInvalidScore = fmt.Errorf("score must be an integer between %d and %d", MinScore, MaxScore)

// Rate records score as the user's rating, overwriting an earlier one.
func (s *Service) Rate(ctx context.Context, slug string, userID int64, score int) (models.ArticleView, error) {
	const op = "service.article.Rate"

	if score < MinScore || score > MaxScore {
		return models.ArticleView{}, fmt.Errorf("%s: %w", op, ErrInvalidScore)
	}

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.UpsertRating(ctx, articleID, userID, score)
	})
}

// Like is idempotent and replaces a dislike by the same user.
func (s *Service) Like(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Like"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.SetReaction(ctx, articleID, userID, models.ReactionLike)
	})
}

func (s *Service) Unlike(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Unlike"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.ClearReaction(ctx, articleID, userID, models.ReactionLike)
	})
}

// Dislike is idempotent and replaces a like by the same user.
func (s *Service) Dislike(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Dislike"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.SetReaction(ctx, articleID, userID, models.ReactionDislike)
	})
}

func (s *Service) Undislike(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Undislike"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.ClearReaction(ctx, articleID, userID, models.ReactionDislike)
	})
}

// Favorite toggles: a second call removes the favorite again.
func (s *Service) Favorite(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Favorite"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		_, err := s.storage.ToggleFavorite(ctx, articleID, userID)
		return err
	})
}

func (s *Service) Unfavorite(ctx context.Context, slug string, userID int64) (models.ArticleView, error) {
	const op = "service.article.Unfavorite"

	return s.engage(ctx, op, slug, userID, func(articleID int64) error {
		return s.storage.RemoveFavorite(ctx, articleID, userID)
	})
}

func (s *Service) engage(ctx context.Context, op, slug string, userID int64, apply func(articleID int64) error) (models.ArticleView, error) {
	art, err := s.bySlug(ctx, op, slug)
	if err != nil {
		return models.ArticleView{}, err
	}

	if err := apply(art.ID); err != nil {
		s.log.Error("failed to apply engagement", slog.String("op", op), slog.String("slug", slug), sl.Error(err))
		return models.ArticleView{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.view(ctx, art, userID)
}

// view attaches the engagement figures of art as seen by viewerID.
func (s *Service) view(ctx context.Context, art models.Article, viewerID int64) (models.ArticleView, error) {
	const op = "service.article.view"

	stats, err := s.storage.ArticleStats(ctx, art.ID)
	if err != nil {
		s.log.Error("failed to aggregate engagement", slog.String("op", op), sl.Error(err))
		return models.ArticleView{}, fmt.Errorf("%s: %w", op, err)
	}

	var state models.ViewerState
	if viewerID != 0 {
		state, err = s.storage.ViewerState(ctx, art.ID, viewerID)
		if err != nil {
			s.log.Error("failed to get viewer state", slog.String("op", op), sl.Error(err))
			return models.ArticleView{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return models.ArticleView{Article: art, Engagement: aggregate(stats, state)}, nil
}

func aggregate(stats models.ArticleStats, state models.ViewerState) models.Engagement {
	e := models.Engagement{
		AverageRating:  stats.AverageRating,
		RatingsCount:   stats.RatingsCount,
		LikesCount:     stats.LikesCount,
		DislikesCount:  stats.DislikesCount,
		FavoritesCount: stats.FavoritesCount,
		Favorited:      state.Favorited,
		Liked:          state.Reaction == models.ReactionLike,
		Disliked:       state.Reaction == models.ReactionDislike,
		Rated:          state.Rating != nil,
		UserRating:     state.Rating,
	}

	if stats.RatingsCount == 0 {
		e.AverageRating = 0
	}

	return e
}
