package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"authors-api/internal/domain/models"
	"authors-api/internal/storage"
)

const userColumns = `id, username, email, pass_hash, bio, image, is_verified, created_at, updated_at`

func (s *Storage) SaveUser(ctx context.Context, username, email string, passHash []byte) (int64, error) {
	const op = "storage.sqlite.SaveUser"

	ts := now()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, pass_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		username, email, passHash, ts, ts,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapUserConflict(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "storage.sqlite.UserByID"

	return s.userWhere(ctx, op, `id = ?`, id)
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.sqlite.UserByEmail"

	return s.userWhere(ctx, op, `email = ? COLLATE NOCASE`, email)
}

func (s *Storage) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "storage.sqlite.UserByUsername"

	return s.userWhere(ctx, op, `username = ? COLLATE NOCASE`, username)
}

func (s *Storage) userWhere(ctx context.Context, op, cond string, arg any) (models.User, error) {
	var user models.User

	err := s.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE `+cond, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// MarkVerified sets the verification flag. It never clears it.
func (s *Storage) MarkVerified(ctx context.Context, id int64) error {
	const op = "storage.sqlite.MarkVerified"

	res, err := s.db.ExecContext(ctx, `UPDATE users SET is_verified = 1, updated_at = ? WHERE id = ?`, now(), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectRow(res, op, storage.ErrUserNotFound)
}

// UpdateUser stores username, email, bio and image of u.
func (s *Storage) UpdateUser(ctx context.Context, u models.User) error {
	const op = "storage.sqlite.UpdateUser"

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, bio = ?, image = ?, updated_at = ? WHERE id = ?`,
		u.Username, u.Email, u.Bio, u.Image, now(), u.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapUserConflict(err))
	}

	return expectRow(res, op, storage.ErrUserNotFound)
}

func (s *Storage) UpdatePassword(ctx context.Context, id int64, passHash []byte) error {
	const op = "storage.sqlite.UpdatePassword"

	res, err := s.db.ExecContext(ctx, `UPDATE users SET pass_hash = ?, updated_at = ? WHERE id = ?`, passHash, now(), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectRow(res, op, storage.ErrUserNotFound)
}

// Follow is a no-op when the connection already exists.
func (s *Storage) Follow(ctx context.Context, followerID, followedID int64) error {
	const op = "storage.sqlite.Follow"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (follower_id, followed_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		followerID, followedID, now(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Unfollow(ctx context.Context, followerID, followedID int64) error {
	const op = "storage.sqlite.Unfollow"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM connections WHERE follower_id = ? AND followed_id = ?`, followerID, followedID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	const op = "storage.sqlite.IsFollowing"

	var following bool

	err := s.db.GetContext(ctx, &following,
		`SELECT EXISTS (SELECT 1 FROM connections WHERE follower_id = ? AND followed_id = ?)`,
		followerID, followedID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return following, nil
}

func expectRow(res sql.Result, op string, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, notFound)
	}

	return nil
}
