package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authors-api/internal/domain/models"
	"authors-api/internal/http-server/handlers/user"
	"authors-api/internal/http-server/handlers/user/mocks"
	resp "authors-api/internal/lib/api/response"
	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger/handlers/slogdiscard"
	usersvc "authors-api/internal/service/user"
)

const secret = "test-secret"

func newRouter(svc user.Service) http.Handler {
	r := chi.NewRouter()
	r.Group(user.New(slogdiscard.NewDiscardLogger(), svc, secret).Register())
	return r
}

func authHeader(t *testing.T, uid int64) string {
	t.Helper()

	token, err := jwt.New(secret, map[jwt.Purpose]time.Duration{jwt.PurposeAuth: time.Hour}).Issue(uid, jwt.PurposeAuth)
	require.NoError(t, err)

	return "Token " + token
}

func do(h http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		r.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestCurrent(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("User", mock.Anything, int64(5)).Return(models.User{ID: 5, Username: "a", Email: "a@x.com"}, nil).Once()
	h := newRouter(svc)

	rr := do(h, http.MethodGet, "/user/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(h, http.MethodGet, "/user/", authHeader(t, 5), "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got resp.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "a", got.User.Username)
	assert.Empty(t, got.User.Token)
}

func TestUpdate(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p models.UserPatch) bool {
		return p.Bio != nil && *p.Bio == "hello" && p.Username == nil
	})).Return(models.User{ID: 5, Username: "a", Bio: "hello"}, nil).Once()
	svc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p models.UserPatch) bool {
		return p.Username != nil
	})).Return(models.User{}, usersvc.ErrUsernameExists).Once()
	h := newRouter(svc)

	rr := do(h, http.MethodPut, "/user/", authHeader(t, 5), `{"user":{"bio":"hello"}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"bio":"hello"`)

	rr = do(h, http.MethodPut, "/user/", authHeader(t, 5), `{"user":{"username":"taken"}}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username"`)

	rr = do(h, http.MethodPut, "/user/", authHeader(t, 5), `{"user":{"email":"bad"}}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Enter a valid email address.")
}

func TestProfile(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Profile", mock.Anything, "b", int64(0)).Return(models.Profile{Username: "b"}, nil).Once()
	svc.On("Profile", mock.Anything, "b", int64(5)).Return(models.Profile{Username: "b", Following: true}, nil).Once()
	svc.On("Profile", mock.Anything, "ghost", int64(0)).Return(models.Profile{}, usersvc.ErrUserNotFound).Once()
	h := newRouter(svc)

	rr := do(h, http.MethodGet, "/profiles/b", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"following":false`)

	rr = do(h, http.MethodGet, "/profiles/b", authHeader(t, 5), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"following":true`)

	rr = do(h, http.MethodGet, "/profiles/ghost", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFollow(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Follow", mock.Anything, int64(5), "b").Return(models.Profile{Username: "b", Following: true}, nil).Once()
	svc.On("Follow", mock.Anything, int64(5), "a").Return(models.Profile{}, usersvc.ErrSelfFollow).Once()
	svc.On("Unfollow", mock.Anything, int64(5), "b").Return(models.Profile{Username: "b"}, nil).Once()
	h := newRouter(svc)

	rr := do(h, http.MethodPost, "/profiles/b/follow", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(h, http.MethodPost, "/profiles/b/follow", authHeader(t, 5), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"following":true`)

	rr = do(h, http.MethodPost, "/profiles/a/follow", authHeader(t, 5), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(h, http.MethodDelete, "/profiles/b/follow", authHeader(t, 5), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"following":false`)
}
