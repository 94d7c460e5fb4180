package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"authors-api/internal/domain/models"
	"authors-api/internal/storage"
)

func articles() sq.SelectBuilder {
	return sq.Select(
		"a.id", "a.slug", "a.title", "a.description", "a.body", "a.author_id",
		"u.username AS author_username", "a.created_at", "a.updated_at",
	).
		From("articles a").
		Join("users u ON u.id = a.author_id")
}

// SaveArticle inserts art with its tags and returns the stored row.
func (s *Storage) SaveArticle(ctx context.Context, art models.Article) (models.Article, error) {
	const op = "storage.sqlite.SaveArticle"

	ts := now()

	var id int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO articles (slug, title, description, body, author_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			art.Slug, art.Title, art.Description, art.Body, art.AuthorID, ts, ts,
		)
		if err != nil {
			if _, ok := uniqueViolation(err); ok {
				return storage.ErrArticleExists
			}
			return err
		}

		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		return replaceTags(ctx, tx, id, art.Tags)
	})
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.articleWhere(ctx, op, sq.Eq{"a.id": id})
}

func (s *Storage) ArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	const op = "storage.sqlite.ArticleBySlug"

	return s.articleWhere(ctx, op, sq.Eq{"a.slug": slug})
}

// UpdateArticle stores title, description and body of art. Tags are
// replaced only when art.Tags is non-nil.
func (s *Storage) UpdateArticle(ctx context.Context, art models.Article) (models.Article, error) {
	const op = "storage.sqlite.UpdateArticle"

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE articles SET title = ?, description = ?, body = ?, updated_at = ? WHERE id = ?`,
			art.Title, art.Description, art.Body, now(), art.ID,
		)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return storage.ErrArticleNotFound
		}

		if art.Tags == nil {
			return nil
		}

		return replaceTags(ctx, tx, art.ID, art.Tags)
	})
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.articleWhere(ctx, op, sq.Eq{"a.id": art.ID})
}

// SearchArticles returns the articles matching every non-empty field of f,
// oldest first.
func (s *Storage) SearchArticles(ctx context.Context, f models.SearchFilter) ([]models.Article, error) {
	const op = "storage.sqlite.SearchArticles"

	q := articles().OrderBy("a.id ASC")

	if f.Query != "" {
		q = q.Where(sq.Or{
			containsFold("a.title", f.Query),
			containsFold("a.body", f.Query),
			containsFold("u.username", f.Query),
		})
	}
	if f.Author != "" {
		q = q.Where(containsFold("u.username", f.Author))
	}
	if f.Title != "" {
		q = q.Where(containsFold("a.title", f.Title))
	}
	if f.Tag != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM article_tags t WHERE t.article_id = a.id AND casefold(t.tag) = ?)`, casefold(f.Tag))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var arts []models.Article
	if err := s.db.SelectContext(ctx, &arts, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachTags(ctx, arts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return arts, nil
}

func (s *Storage) articleWhere(ctx context.Context, op string, pred sq.Sqlizer) (models.Article, error) {
	query, args, err := articles().Where(pred).ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	var art models.Article
	if err := s.db.GetContext(ctx, &art, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
		}
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	arts := []models.Article{art}
	if err := s.attachTags(ctx, arts); err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return arts[0], nil
}

func (s *Storage) attachTags(ctx context.Context, arts []models.Article) error {
	if len(arts) == 0 {
		return nil
	}

	ids := make([]int64, len(arts))
	byID := make(map[int64]int, len(arts))
	for i, a := range arts {
		ids[i] = a.ID
		byID[a.ID] = i
		arts[i].Tags = []string{}
	}

	query, args, err := sq.Select("article_id", "tag").
		From("article_tags").
		Where(sq.Eq{"article_id": ids}).
		OrderBy("article_id", "tag").
		ToSql()
	if err != nil {
		return err
	}

	var rows []struct {
		ArticleID int64  `db:"article_id"`
		Tag       string `db:"tag"`
	}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}

	for _, r := range rows {
		i := byID[r.ArticleID]
		arts[i].Tags = append(arts[i].Tags, r.Tag)
	}

	return nil
}

func replaceTags(ctx context.Context, tx *sqlx.Tx, articleID int64, tags []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM article_tags WHERE article_id = ?`, articleID); err != nil {
		return err
	}

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO article_tags (article_id, tag) VALUES (?, ?) ON CONFLICT DO NOTHING`, articleID, tag)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
