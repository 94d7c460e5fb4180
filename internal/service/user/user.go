package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"authors-api/internal/domain/models"
	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger/sl"
	"authors-api/internal/storage"
)

var (
	ErrEmailExists        = errors.New("email already taken")
	ErrUsernameExists     = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSelfFollow         = errors.New("cannot follow yourself")
)

type Storage interface {
	SaveUser(ctx context.Context, username, email string, passHash []byte) (int64, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	MarkVerified(ctx context.Context, id int64) error
	UpdateUser(ctx context.Context, u models.User) error
	UpdatePassword(ctx context.Context, id int64, passHash []byte) error
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
}

type Tokens interface {
	Issue(userID int64, purpose jwt.Purpose) (string, error)
	Validate(token string, purpose jwt.Purpose) (int64, error)
}

// Notifier delivers account emails.
type Notifier interface {
	SendVerification(ctx context.Context, to models.User, link string) error
	SendPasswordReset(ctx context.Context, to models.User, link string) error
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	tokens   Tokens
	notifier Notifier
	baseURL  string
}

func New(log *slog.Logger, storage Storage, tokens Tokens, notifier Notifier, baseURL string) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Register creates an unverified user, mails a verification link and
// returns the user with an auth token. Both ErrEmailExists and
// ErrUsernameExists may be reported at once.
func (s *Service) Register(ctx context.Context, username, email, password string) (models.User, string, error) {
	const op = "service.user.Register"

	log := s.log.With(slog.String("op", op))

	if err := s.checkAvailable(ctx, 0, username, email); err != nil {
		log.Info("registration rejected", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	// Hashing password
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate hash from password", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.storage.SaveUser(ctx, username, email, passHash)
	if err != nil {
		if err := conflict(err); err != nil {
			log.Info("registration lost a uniqueness race", sl.Error(err))
			return models.User{}, "", fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to save user", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		log.Error("failed to read back user", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	// The account stays even when the email cannot be sent; the user can
	// ask for another link.
	s.sendVerification(ctx, log, user)

	token, err := s.tokens.Issue(user.ID, jwt.PurposeAuth)
	if err != nil {
		log.Error("failed to create auth token", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))

	return user, token, nil
}

// Verify marks the user the token was issued to as verified. Verifying an
// already verified user succeeds without changes.
func (s *Service) Verify(ctx context.Context, token string) (models.User, error) {
	const op = "service.user.Verify"

	log := s.log.With(slog.String("op", op))

	uid, err := s.tokens.Validate(token, jwt.PurposeVerify)
	if err != nil {
		log.Info("verification token rejected", sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user, err := s.storage.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
		log.Error("failed to get user", sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	changed, err := transition(ctx, accountState(user), EventVerify)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if !changed {
		return user, nil
	}

	if err := s.storage.MarkVerified(ctx, user.ID); err != nil {
		log.Error("failed to mark user verified", sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	user.IsVerified = true

	log.Info("user verified", slog.Int64("user_id", user.ID))

	return user, nil
}

// ResendVerification mails a fresh link to an unverified account. Unknown
// and already verified emails succeed silently.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	const op = "service.user.ResendVerification"

	log := s.log.With(slog.String("op", op))

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil
		}
		log.Error("failed to get user", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !accountState(user).Can(EventVerify) {
		return nil
	}

	s.sendVerification(ctx, log, user)

	return nil
}

// Login does not require a verified email.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	const op = "service.user.Login"

	log := s.log.With(slog.String("op", op))

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("unknown email")
			return models.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user by email", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	// Checking if password correct
	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("incorrect password", slog.Int64("user_id", user.ID))
		return models.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID, jwt.PurposeAuth)
	if err != nil {
		log.Error("failed to create new token", sl.Error(err))
		return models.User{}, "", fmt.Errorf("%s: failed to create new token: %w", op, err)
	}

	return user, token, nil
}

// ForgotPassword mails a reset link. Unknown emails succeed silently so the
// endpoint does not reveal which addresses are registered.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	const op = "service.user.ForgotPassword"

	log := s.log.With(slog.String("op", op))

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("reset requested for unknown email")
			return nil
		}
		log.Error("failed to get user by email", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.Issue(user.ID, jwt.PurposeReset)
	if err != nil {
		log.Error("failed to create reset token", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.notifier.SendPasswordReset(ctx, user, s.baseURL+"/users/password/reset/"+token); err != nil {
		log.Error("failed to send reset email", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	const op = "service.user.ResetPassword"

	log := s.log.With(slog.String("op", op))

	uid, err := s.tokens.Validate(token, jwt.PurposeReset)
	if err != nil {
		log.Info("reset token rejected", sl.Error(err))
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate hash from password", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePassword(ctx, uid, passHash); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
		log.Error("failed to update password", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) User(ctx context.Context, id int64) (models.User, error) {
	const op = "service.user.User"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		s.log.Error("failed to get user", slog.String("op", op), sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// Update applies the non-nil fields of patch to the user.
func (s *Service) Update(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	const op = "service.user.Update"

	log := s.log.With(slog.String("op", op))

	user, err := s.User(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	var username, email string
	if patch.Username != nil && !strings.EqualFold(*patch.Username, user.Username) {
		username = *patch.Username
	}
	if patch.Email != nil && !strings.EqualFold(*patch.Email, user.Email) {
		email = *patch.Email
	}
	if err := s.checkAvailable(ctx, id, username, email); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Image != nil {
		user.Image = *patch.Image
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		if err := conflict(err); err != nil {
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to update user", sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to generate hash from password", sl.Error(err))
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.storage.UpdatePassword(ctx, id, passHash); err != nil {
			log.Error("failed to update password", sl.Error(err))
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.User(ctx, id)
}

// Profile returns the public profile of username as seen by viewerID
// (0 for anonymous).
func (s *Service) Profile(ctx context.Context, username string, viewerID int64) (models.Profile, error) {
	const op = "service.user.Profile"

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Profile{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		s.log.Error("failed to get user", slog.String("op", op), sl.Error(err))
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	profile := models.Profile{Username: user.Username, Bio: user.Bio, Image: user.Image}

	if viewerID != 0 && viewerID != user.ID {
		profile.Following, err = s.storage.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			s.log.Error("failed to check following", slog.String("op", op), sl.Error(err))
			return models.Profile{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return profile, nil
}

func (s *Service) Follow(ctx context.Context, followerID int64, username string) (models.Profile, error) {
	const op = "service.user.Follow"

	return s.connect(ctx, op, followerID, username, s.storage.Follow)
}

func (s *Service) Unfollow(ctx context.Context, followerID int64, username string) (models.Profile, error) {
	const op = "service.user.Unfollow"

	return s.connect(ctx, op, followerID, username, s.storage.Unfollow)
}

func (s *Service) connect(
	ctx context.Context,
	op string,
	followerID int64,
	username string,
	apply func(ctx context.Context, followerID, followedID int64) error,
) (models.Profile, error) {
	target, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Profile{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	if target.ID == followerID {
		return models.Profile{}, fmt.Errorf("%s: %w", op, ErrSelfFollow)
	}

	if err := apply(ctx, followerID, target.ID); err != nil {
		s.log.Error("failed to update connection", slog.String("op", op), sl.Error(err))
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Profile(ctx, target.Username, followerID)
}

// checkAvailable reports which of username and email (when non-empty) are
// taken by a user other than selfID.
func (s *Service) checkAvailable(ctx context.Context, selfID int64, username, email string) error {
	var errs []error

	if email != "" {
		u, err := s.storage.UserByEmail(ctx, email)
		switch {
		case err == nil && u.ID != selfID:
			errs = append(errs, ErrEmailExists)
		case err != nil && !errors.Is(err, storage.ErrUserNotFound):
			return err
		}
	}

	if username != "" {
		u, err := s.storage.UserByUsername(ctx, username)
		switch {
		case err == nil && u.ID != selfID:
			errs = append(errs, ErrUsernameExists)
		case err != nil && !errors.Is(err, storage.ErrUserNotFound):
			return err
		}
	}

	return errors.Join(errs...)
}

func (s *Service) sendVerification(ctx context.Context, log *slog.Logger, user models.User) {
	token, err := s.tokens.Issue(user.ID, jwt.PurposeVerify)
	if err != nil {
		log.Error("failed to create verification token", sl.Error(err))
		return
	}

	if err := s.notifier.SendVerification(ctx, user, s.baseURL+"/users/verify/"+token); err != nil {
		log.Error("failed to send verification email", slog.Int64("user_id", user.ID), sl.Error(err))
	}
}

// conflict translates a storage uniqueness error, or returns nil.
func conflict(err error) error {
	switch {
	case errors.Is(err, storage.ErrEmailExists):
		return ErrEmailExists
	case errors.Is(err, storage.ErrUsernameExists):
		return ErrUsernameExists
	}
	return nil
}
