package models

import "time"

type Article struct {
	ID             int64     `db:"id" json:"-"`
	Slug           string    `db:"slug" json:"slug"`
	Title          string    `db:"title" json:"title"`
	Description    string    `db:"description" json:"description"`
	Body           string    `db:"body" json:"body"`
	Tags           []string  `db:"-" json:"tag_list"`
	AuthorID       int64     `db:"author_id" json:"-"`
	AuthorUsername string    `db:"author_username" json:"author"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	Tags        []string
}

type Comment struct {
	ID             int64     `db:"id" json:"id"`
	ArticleID      int64     `db:"article_id" json:"-"`
	AuthorID       int64     `db:"author_id" json:"-"`
	AuthorUsername string    `db:"author_username" json:"author"`
	Body           string    `db:"body" json:"body"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// SearchFilter narrows an article search. Empty fields are ignored.
type SearchFilter struct {
	Query  string
	Author string
	Title  string
	Tag    string
}
