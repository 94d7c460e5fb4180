package article

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"authors-api/internal/domain/models"
	"authors-api/internal/http-server/middleware/auth"
	req "authors-api/internal/lib/api/request"
	resp "authors-api/internal/lib/api/response"
	"authors-api/internal/lib/logger/sl"
	"authors-api/internal/service/article"
)

const (
	msgArticleNotFound = "Article not found."
	msgForbidden       = "You do not have permission to perform this action."
	msgInvalidScore    = "Score must be an integer between 1 and 5."
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Create(ctx context.Context, authorID int64, title, description, body string, tags []string) (models.ArticleView, error)
	Get(ctx context.Context, slug string, viewerID int64) (models.ArticleView, error)
	Update(ctx context.Context, slug string, userID int64, patch models.ArticlePatch) (models.ArticleView, error)
	Search(ctx context.Context, f models.SearchFilter, viewerID int64) ([]models.ArticleView, error)

	Comment(ctx context.Context, slug string, authorID int64, body string) (models.Comment, error)
	Comments(ctx context.Context, slug string) ([]models.Comment, error)

	Rate(ctx context.Context, slug string, userID int64, score int) (models.ArticleView, error)
	Like(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
	Unlike(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
	Dislike(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
	Undislike(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
	Favorite(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
	Unfavorite(ctx context.Context, slug string, userID int64) (models.ArticleView, error)
}

type engageFunc func(ctx context.Context, slug string, userID int64) (models.ArticleView, error)

type Article struct {
	log     *slog.Logger
	service Service
	secret  string
}

func New(log *slog.Logger, service Service, secret string) *Article {
	return &Article{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (a *Article) Register() func(r chi.Router) {
	return func(r chi.Router) {
		au := auth.New(a.log, a.secret)

		// Public routes
		r.Get("/{slug}/comments", a.comments)
		r.Group(func(r chi.Router) {
			r.Use(au.Optional)

			r.Get("/search", a.search)
			r.Get("/{slug}", a.get)
		})

		// Require auth
		r.Group(func(r chi.Router) {
			r.Use(au.Required)

			r.Post("/", a.create)
			r.Put("/{slug}/update/", a.update)
			r.Post("/{slug}/rate/", a.rate)
			r.Post("/{slug}/comment", a.comment)

			r.Post("/{slug}/like", a.engage("like", a.service.Like))
			r.Delete("/{slug}/like", a.engage("unlike", a.service.Unlike))
			r.Post("/{slug}/dislike", a.engage("dislike", a.service.Dislike))
			r.Delete("/{slug}/dislike", a.engage("undislike", a.service.Undislike))
			r.Post("/{slug}/favorite", a.engage("favorite", a.service.Favorite))
			r.Delete("/{slug}/favorite", a.engage("unfavorite", a.service.Unfavorite))
		})
	}
}

func (a *Article) create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"

	log := a.logger(r, op)

	var payload req.CreateArticle
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}
	in := payload.Article

	var description string
	if in.Description != nil {
		description = *in.Description
	}

	view, err := a.service.Create(r.Context(), auth.UserID(r.Context()), *in.Title, description, *in.Body, in.Tags)
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusCreated, resp.ArticleResponse{Article: view})
}

func (a *Article) get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.get"

	log := a.logger(r, op)

	view, err := a.service.Get(r.Context(), chi.URLParam(r, "slug"), auth.UserID(r.Context()))
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ArticleResponse{Article: view})
}

func (a *Article) update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.update"

	log := a.logger(r, op)

	var payload req.UpdateArticle
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}
	in := payload.Article

	view, err := a.service.Update(r.Context(), chi.URLParam(r, "slug"), auth.UserID(r.Context()), models.ArticlePatch{
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Tags:        in.Tags,
	})
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ArticleResponse{Article: view})
}

func (a *Article) search(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.search"

	log := a.logger(r, op)

	q := r.URL.Query()
	views, err := a.service.Search(r.Context(), models.SearchFilter{
		Query:  q.Get("q"),
		Author: q.Get("author"),
		Title:  q.Get("title"),
		Tag:    q.Get("tag"),
	}, auth.UserID(r.Context()))
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ArticlesResponse{Articles: views, ArticlesCount: len(views)})
}

func (a *Article) rate(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.rate"

	log := a.logger(r, op)

	var payload req.Rate
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	view, err := a.service.Rate(r.Context(), chi.URLParam(r, "slug"), auth.UserID(r.Context()), *payload.Rating.Score)
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ArticleResponse{Article: view})
}

func (a *Article) comment(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.comment"

	log := a.logger(r, op)

	var payload req.Comment
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	c, err := a.service.Comment(r.Context(), chi.URLParam(r, "slug"), auth.UserID(r.Context()), *payload.Comment.Body)
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusCreated, resp.CommentResponse{Comment: c})
}

func (a *Article) comments(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.comments"

	log := a.logger(r, op)

	list, err := a.service.Comments(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.CommentsResponse{Comments: list})
}

// engage serves the like, dislike and favorite endpoints, which differ only
// in the service call.
func (a *Article) engage(action string, fn engageFunc) http.HandlerFunc {
	op := "handlers.article." + action

	return func(w http.ResponseWriter, r *http.Request) {
		log := a.logger(r, op)

		view, err := fn(r.Context(), chi.URLParam(r, "slug"), auth.UserID(r.Context()))
		if err != nil {
			a.fail(w, r, log, err)
			return
		}

		resp.OK(w, r, http.StatusOK, resp.ArticleResponse{Article: view})
	}
}

func (a *Article) fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, article.ErrArticleNotFound):
		resp.Error(w, r, http.StatusNotFound, resp.Err(msgArticleNotFound))
	case errors.Is(err, article.ErrForbidden):
		resp.Error(w, r, http.StatusForbidden, resp.Err(msgForbidden))
	case errors.Is(err, article.ErrInvalidScore):
		resp.Error(w, r, http.StatusBadRequest, resp.FieldErr("score", msgInvalidScore))
	default:
		log.Error("request failed", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
	}
}

func (a *Article) logger(r *http.Request, op string) *slog.Logger {
	return a.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
