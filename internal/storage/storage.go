package storage

import "errors"

var (
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")

	ErrArticleExists   = errors.New("article already exists")
	ErrArticleNotFound = errors.New("article not found")
)
