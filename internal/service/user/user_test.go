package user

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authors-api/internal/domain/models"
	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger/handlers/slogdiscard"
	"authors-api/internal/storage/sqlite"
)

type sentMail struct {
	to   models.User
	link string
}

type fakeNotifier struct {
	verifications []sentMail
	resets        []sentMail
	err           error
}

func (f *fakeNotifier) SendVerification(_ context.Context, to models.User, link string) error {
	if f.err != nil {
		return f.err
	}
	f.verifications = append(f.verifications, sentMail{to: to, link: link})
	return nil
}

func (f *fakeNotifier) SendPasswordReset(_ context.Context, to models.User, link string) error {
	if f.err != nil {
		return f.err
	}
	f.resets = append(f.resets, sentMail{to: to, link: link})
	return nil
}

func (f *fakeNotifier) lastVerifyToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.verifications)

	link := f.verifications[len(f.verifications)-1].link
	i := strings.LastIndex(link, "/users/verify/")
	require.GreaterOrEqual(t, i, 0)

	return link[i+len("/users/verify/"):]
}

type suite struct {
	svc      *Service
	store    *sqlite.Storage
	tokens   *jwt.Manager
	notifier *fakeNotifier
	now      time.Time
}

func newSuite(t *testing.T) *suite {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := &suite{store: store, notifier: &fakeNotifier{}, now: time.Now()}
	s.tokens = jwt.New("secret", map[jwt.Purpose]time.Duration{
		jwt.PurposeAuth:   time.Hour,
		jwt.PurposeVerify: 24 * time.Hour,
		jwt.PurposeReset:  time.Hour,
	}).WithClock(func() time.Time { return s.now })
	s.svc = New(slogdiscard.NewDiscardLogger(), store, s.tokens, s.notifier, "http://localhost:8080/")

	return s
}

func TestRegister(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	u, token, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	assert.Equal(t, "a", u.Username)
	assert.False(t, u.IsVerified)
	assert.NotEqual(t, "Aa1!aaaa", string(u.PassHash))

	uid, err := s.tokens.Validate(token, jwt.PurposeAuth)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	require.Len(t, s.notifier.verifications, 1)
	assert.Equal(t, "a@x.com", s.notifier.verifications[0].to.Email)
	assert.True(t, strings.HasPrefix(s.notifier.verifications[0].link, "http://localhost:8080/users/verify/"))
}

func TestRegister_Duplicates(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	_, _, err = s.svc.Register(ctx, "b", "A@X.com", "whatever1")
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NotErrorIs(t, err, ErrUsernameExists)

	_, _, err = s.svc.Register(ctx, "a", "b@x.com", "whatever1")
	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.NotErrorIs(t, err, ErrEmailExists)

	_, _, err = s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_EmailFailureKeepsUser(t *testing.T) {
	s := newSuite(t)
	s.notifier.err = errors.New("smtp down")
	ctx := context.Background()

	u, token, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := s.store.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestVerify(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)
	token := s.notifier.lastVerifyToken(t)

	u, err := s.svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)

	u, err = s.svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)

	stored, err := s.store.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
}

func TestVerify_InvalidTokens(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	u, authToken, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)
	verifyToken := s.notifier.lastVerifyToken(t)

	_, err = s.svc.Verify(ctx, authToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.svc.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	s.now = s.now.Add(25 * time.Hour)
	_, err = s.svc.Verify(ctx, verifyToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	stored, err := s.store.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
}

func TestResendVerification(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	require.NoError(t, s.svc.ResendVerification(ctx, "a@x.com"))
	assert.Len(t, s.notifier.verifications, 2)

	require.NoError(t, s.svc.ResendVerification(ctx, "nobody@x.com"))
	assert.Len(t, s.notifier.verifications, 2)

	_, err = s.svc.Verify(ctx, s.notifier.lastVerifyToken(t))
	require.NoError(t, err)

	require.NoError(t, s.svc.ResendVerification(ctx, "a@x.com"))
	assert.Len(t, s.notifier.verifications, 2)
}

func TestLogin(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "rutale", "rutale@gmail.com", "rutale1234*")
	require.NoError(t, err)

	u, token, err := s.svc.Login(ctx, "rutale@gmail.com", "rutale1234*")
	require.NoError(t, err)
	assert.Equal(t, "rutale", u.Username)
	assert.NotEmpty(t, token)

	_, _, err = s.svc.Login(ctx, "rutale@gmail.com", "rutale123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.svc.Login(ctx, "rut@gmail.com", "rutale1234*")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordReset(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	require.NoError(t, s.svc.ForgotPassword(ctx, "nobody@x.com"))
	assert.Empty(t, s.notifier.resets)

	require.NoError(t, s.svc.ForgotPassword(ctx, "a@x.com"))
	require.Len(t, s.notifier.resets, 1)

	link := s.notifier.resets[0].link
	token := link[strings.LastIndex(link, "/")+1:]

	assert.ErrorIs(t, s.svc.ResetPassword(ctx, s.notifier.lastVerifyToken(t), "newpassword"), ErrInvalidToken)
	require.NoError(t, s.svc.ResetPassword(ctx, token, "newpassword"))

	_, _, err = s.svc.Login(ctx, "a@x.com", "Aa1!aaaa")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.svc.Login(ctx, "a@x.com", "newpassword")
	require.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)
	b, _, err := s.svc.Register(ctx, "b", "b@x.com", "Bb1!bbbb")
	require.NoError(t, err)

	taken := "a"
	_, err = s.svc.Update(ctx, b.ID, models.UserPatch{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameExists)

	same, bio := "B", "writer"
	u, err := s.svc.Update(ctx, b.ID, models.UserPatch{Username: &same, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "B", u.Username)
	assert.Equal(t, "writer", u.Bio)

	pass := "changed123"
	_, err = s.svc.Update(ctx, b.ID, models.UserPatch{Password: &pass})
	require.NoError(t, err)
	_, _, err = s.svc.Login(ctx, "b@x.com", "changed123")
	require.NoError(t, err)

	_, err = s.svc.Update(ctx, 999, models.UserPatch{Bio: &bio})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollow(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	a, _, err := s.svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)
	_, _, err = s.svc.Register(ctx, "b", "b@x.com", "Bb1!bbbb")
	require.NoError(t, err)

	p, err := s.svc.Follow(ctx, a.ID, "b")
	require.NoError(t, err)
	assert.True(t, p.Following)

	p, err = s.svc.Profile(ctx, "b", 0)
	require.NoError(t, err)
	assert.False(t, p.Following)

	p, err = s.svc.Unfollow(ctx, a.ID, "b")
	require.NoError(t, err)
	assert.False(t, p.Following)

	_, err = s.svc.Follow(ctx, a.ID, "a")
	assert.ErrorIs(t, err, ErrSelfFollow)

	_, err = s.svc.Follow(ctx, a.ID, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountState(t *testing.T) {
	ctx := context.Background()

	u, _, err := newSuite(t).svc.Register(ctx, "a", "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	sm := accountState(u)
	assert.Equal(t, StateUnverified, sm.Current())
	assert.True(t, sm.Can(EventVerify))

	changed, err := transition(ctx, sm, EventVerify)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StateVerified, sm.Current())

	changed, err = transition(ctx, sm, EventVerify)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, StateVerified, sm.Current())
}
