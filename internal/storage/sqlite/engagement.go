package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"authors-api/internal/domain/models"
)

// UpsertRating stores score as the user's only rating of the article.
func (s *Storage) UpsertRating(ctx context.Context, articleID, userID int64, score int) error {
	const op = "storage.sqlite.UpsertRating"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ratings (article_id, user_id, score, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (article_id, user_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		articleID, userID, score, now(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetReaction records kind as the user's reaction, replacing the opposite one.
func (s *Storage) SetReaction(ctx context.Context, articleID, userID int64, kind models.Reaction) error {
	const op = "storage.sqlite.SetReaction"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reactions (article_id, user_id, kind, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (article_id, user_id) DO UPDATE SET kind = excluded.kind, created_at = excluded.created_at
		WHERE reactions.kind <> excluded.kind`,
		articleID, userID, string(kind), now(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ClearReaction removes the user's reaction only if it is of the given kind.
func (s *Storage) ClearReaction(ctx context.Context, articleID, userID int64, kind models.Reaction) error {
	const op = "storage.sqlite.ClearReaction"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM reactions WHERE article_id = ? AND user_id = ? AND kind = ?`,
		articleID, userID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ToggleFavorite flips the favorite flag and reports the new state.
func (s *Storage) ToggleFavorite(ctx context.Context, articleID, userID int64) (bool, error) {
	const op = "storage.sqlite.ToggleFavorite"

	var favorited bool
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM favorites WHERE article_id = ? AND user_id = ?`, articleID, userID)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO favorites (article_id, user_id, created_at) VALUES (?, ?, ?)`, articleID, userID, now())
		if err != nil {
			return err
		}
		favorited = true

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return favorited, nil
}

func (s *Storage) RemoveFavorite(ctx context.Context, articleID, userID int64) error {
	const op = "storage.sqlite.RemoveFavorite"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE article_id = ? AND user_id = ?`, articleID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveComment(ctx context.Context, articleID, authorID int64, body string) (models.Comment, error) {
	const op = "storage.sqlite.SaveComment"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (article_id, author_id, body, created_at) VALUES (?, ?, ?, ?)`,
		articleID, authorID, body, now(),
	)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	comments, err := s.comments(ctx, sq.Eq{"c.id": id})
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(comments) == 0 {
		return models.Comment{}, fmt.Errorf("%s: comment %d vanished after insert", op, id)
	}

	return comments[0], nil
}

// Comments lists the comments of an article in the order they were added.
func (s *Storage) Comments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	const op = "storage.sqlite.Comments"

	comments, err := s.comments(ctx, sq.Eq{"c.article_id": articleID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

func (s *Storage) comments(ctx context.Context, pred sq.Sqlizer) ([]models.Comment, error) {
	query, args, err := sq.Select(
		"c.id", "c.article_id", "c.author_id", "u.username AS author_username", "c.body", "c.created_at",
	).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(pred).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err := s.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}

	return comments, nil
}

// ArticleStats aggregates ratings, reactions and favorites of an article.
func (s *Storage) ArticleStats(ctx context.Context, articleID int64) (models.ArticleStats, error) {
	const op = "storage.sqlite.ArticleStats"

	var stats models.ArticleStats

	err := s.db.GetContext(ctx, &stats, `
		SELECT
			COALESCE((SELECT AVG(score) FROM ratings WHERE article_id = ?1), 0) AS average_rating,
			(SELECT COUNT(*) FROM ratings WHERE article_id = ?1) AS ratings_count,
			(SELECT COUNT(*) FROM reactions WHERE article_id = ?1 AND kind = 'like') AS likes_count,
			(SELECT COUNT(*) FROM reactions WHERE article_id = ?1 AND kind = 'dislike') AS dislikes_count,
			(SELECT COUNT(*) FROM favorites WHERE article_id = ?1) AS favorites_count`,
		articleID,
	)
	if err != nil {
		return models.ArticleStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// ViewerState reports what userID has contributed to the article.
func (s *Storage) ViewerState(ctx context.Context, articleID, userID int64) (models.ViewerState, error) {
	const op = "storage.sqlite.ViewerState"

	var state models.ViewerState

	err := s.db.GetContext(ctx, &state, `
		SELECT
			EXISTS (SELECT 1 FROM favorites WHERE article_id = ?1 AND user_id = ?2) AS favorited,
			COALESCE((SELECT kind FROM reactions WHERE article_id = ?1 AND user_id = ?2), '') AS reaction,
			(SELECT score FROM ratings WHERE article_id = ?1 AND user_id = ?2) AS rating`,
		articleID, userID,
	)
	if err != nil {
		return models.ViewerState{}, fmt.Errorf("%s: %w", op, err)
	}

	return state, nil
}
