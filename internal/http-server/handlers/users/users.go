package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"authors-api/internal/domain/models"
	req "authors-api/internal/lib/api/request"
	resp "authors-api/internal/lib/api/response"
	"authors-api/internal/lib/logger/sl"
	"authors-api/internal/service/user"
)

const (
	msgEmailTaken    = "We cannot register you because there's a user with that email already."
	msgUsernameTaken = "We cannot register you because there's a user with that username already."
	msgBadLogin      = "A user with this email and password was not found."
	msgBadToken      = "Invalid or expired token."
	msgVerifySent    = "If the address belongs to an unverified account, a verification email has been sent."
	msgResetSent     = "If the address belongs to an account, a password reset email has been sent."
	msgPasswordReset = "Your password has been reset."
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Register(ctx context.Context, username, email, password string) (models.User, string, error)
	Verify(ctx context.Context, token string) (models.User, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (models.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// Users serves the account flows that do not need an auth token.
type Users struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Users {
	return &Users{
		log:     log,
		service: service,
	}
}

func (u *Users) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/", u.register)
		r.Put("/verify/{token}", u.verify)
		r.Post("/verify/resend/", u.resendVerification)
		r.Post("/login/", u.login)
		r.Post("/password/forgot/", u.forgotPassword)
		r.Put("/password/reset/{token}", u.resetPassword)
	}
}

func (u *Users) register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.register"

	log := u.logger(r, op)

	var payload req.Register
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}
	in := payload.User

	usr, token, err := u.service.Register(r.Context(), *in.Username, *in.Email, *in.Password)
	if err != nil {
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

		log.Error("failed to register user", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
		return
	}

	resp.OK(w, r, http.StatusCreated, resp.NewUser(usr, token))
}

func (u *Users) verify(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.verify"

	log := u.logger(r, op)

	usr, err := u.service.Verify(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		u.tokenFailure(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.NewUser(usr, ""))
}

func (u *Users) resendVerification(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.resendVerification"

	log := u.logger(r, op)

	var payload req.Email
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	if err := u.service.ResendVerification(r.Context(), *payload.User.Email); err != nil {
		log.Error("failed to resend verification", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
		return
	}

	resp.OK(w, r, http.StatusOK, resp.MessageResponse{Message: msgVerifySent})
}

func (u *Users) login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.login"

	log := u.logger(r, op)

	var payload req.Login
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	usr, token, err := u.service.Login(r.Context(), *payload.User.Email, *payload.User.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			resp.Error(w, r, http.StatusBadRequest, resp.Err(msgBadLogin))
			return
		}

		log.Error("failed to login", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
		return
	}

	resp.OK(w, r, http.StatusOK, resp.NewUser(usr, token))
}

func (u *Users) forgotPassword(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.forgotPassword"

	log := u.logger(r, op)

	var payload req.Email
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	if err := u.service.ForgotPassword(r.Context(), *payload.User.Email); err != nil {
		log.Error("failed to start password reset", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
		return
	}

	resp.OK(w, r, http.StatusOK, resp.MessageResponse{Message: msgResetSent})
}

func (u *Users) resetPassword(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.resetPassword"

	log := u.logger(r, op)

	var payload req.ResetPassword
	if errs := req.Bind(r, &payload); errs != nil {
		resp.Error(w, r, http.StatusBadRequest, resp.ValidationErr(errs))
		return
	}

	err := u.service.ResetPassword(r.Context(), chi.URLParam(r, "token"), *payload.User.Password)
	if err != nil {
		u.tokenFailure(w, r, log, err)
		return
	}

	resp.OK(w, r, http.StatusOK, resp.MessageResponse{Message: msgPasswordReset})
}

func (u *Users) tokenFailure(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidToken):
		resp.Error(w, r, http.StatusBadRequest, resp.Err(msgBadToken))
	case errors.Is(err, user.ErrUserNotFound):
		resp.Error(w, r, http.StatusNotFound, resp.Err("User not found."))
	default:
		log.Error("token flow failed", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, resp.Err("internal error"))
	}
}

func (u *Users) logger(r *http.Request, op string) *slog.Logger {
	return u.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
