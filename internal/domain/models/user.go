package models

import "time"

type User struct {
	ID         int64     `db:"id" json:"-"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	PassHash   []byte    `db:"pass_hash" json:"-"`
	Bio        string    `db:"bio" json:"bio"`
	Image      string    `db:"image" json:"image"`
	IsVerified bool      `db:"is_verified" json:"is_verified"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Profile is the public view of a user as seen by another (possibly anonymous) user.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// UserPatch carries the optional fields of a profile update. Nil means unchanged.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}
