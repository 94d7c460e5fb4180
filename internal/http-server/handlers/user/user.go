package user

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
	"authors-api/internal/service/user"
)

const (
	msgEmailTaken    = "A user with that email already exists."
	msgUsernameTaken = "A user with that username already exists."
	msgUserNotFound  = "User not found."
	msgSelfFollow    = "You cannot follow yourself."
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	User(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	Profile(ctx context.Context, username string, viewerID int64) (models.Profile, error)
	Follow(ctx context.Context, followerID int64, username string) (models.Profile, error)
	Unfollow(ctx context.Context, followerID int64, username string) (models.Profile, error)
}

// User serves the authenticated user's own account and public profiles.
type User struct {
	log     *slog.Logger
	service Service
	secret  string
}

func New(log *slog.Logger, service Service, secret string) *User {
	return &User{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (u *User) Register() func(r chi.Router) {
	return func(r chi.Router) {
		a := auth.New(u.log, u.secret)

		// Public routes
		r.With(a.Optional).Get("/profiles/{username}", u.profile)

		// Require auth
		r.Group(func(r chi.Router) {
			r.Use(a.Required)

			r.Get("/user/", u.current)
			r.Put("/user/", u.update)
			r.Post("/profiles/{username}/follow", u.follow)
			r.Delete("/profiles/{username}/follow", u.unfollow)
		})
	}
}

func (u *User) current(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.current"

	log := u.logger(r, op)

	usr, err := u.service.User(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		u.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.NewUser(usr, ""))
}

func (u *User) update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := u.logger(r, op)

	var payload req.UpdateUser
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}
	in := payload.User

	usr, err := u.service.Update(r.Context(), auth.UserID(r.Context()), models.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Bio:      in.Bio,
		Image:    in.Image,
	})
	if err != nil {
		u.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.NewUser(usr, ""))
}

func (u *User) profile(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := u.logger(r, op)

	p, err := u.service.Profile(r.Context(), chi.URLParam(r, "username"), auth.UserID(r.Context()))
	if err != nil {
		u.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ProfileResponse{Profile: p})
}

func (u *User) follow(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.follow"

	log := u.logger(r, op)

	p, err := u.service.Follow(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "username"))
	if err != nil {
		u.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ProfileResponse{Profile: p})
}

func (u *User) unfollow(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.unfollow"

	log := u.logger(r, op)

	p, err := u.service.Unfollow(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "username"))
	if err != nil {
		u.fail(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.ProfileResponse{Profile: p})
}

func (u *User) fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, user.ErrEmailExists) || errors.Is(err, user.ErrUsernameExists) {
		errs := map[string][]string{}
		if errors.Is(err, user.ErrEmailExists) {
			errs["email"] = []string{msgEmailTaken}
		}
		if errors.Is(err, user.ErrUsernameExists) {
			errs["username"] = []string{msgUsernameTaken}
		}
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		resp.Error(w, r, http.StatusNotFound, resp.Err(msgUserNotFound))
	case errors.Is(err, user.ErrSelfFollow):
		resp.Error(w, r, http.StatusBadRequest, resp.Err(msgSelfFollow))
	default:
		log.Error("request failed", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
	}
}

func (u *User) logger(r *http.Request, op string) *slog.Logger {
	return u.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
