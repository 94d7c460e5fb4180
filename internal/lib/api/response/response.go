package response

import (
	"net/http"

	"github.com/go-chi/render"

	"authors-api/internal/domain/models"
)

// NonField is the key used for errors that are not tied to a payload field.
const NonField = "error"

type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Errors: map[string][]string{NonField: {msg}}}
}

func FieldErr(field, msg string) ErrorResponse {
	return ErrorResponse{Errors: map[string][]string{field: {msg}}}
}

func ValidationErr(errs map[string][]string) ErrorResponse {
	return ErrorResponse{Errors: errs}
}

// Error renders body with the given 4xx/5xx status.
func Error(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

func OK(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

type User struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Image      string `json:"image"`
	IsVerified bool   `json:"is_verified"`
	Token      string `json:"token,omitempty"`
}

type UserResponse struct {
	User User `json:"user"`
}

func NewUser(u models.User, token string) UserResponse {
	return UserResponse{User: User{
		Username:   u.Username,
		Email:      u.Email,
		Bio:        u.Bio,
		Image:      u.Image,
		IsVerified: u.IsVerified,
		Token:      token,
	}}
}

type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ArticleResponse struct {
	Article models.ArticleView `json:"article"`
}

type ArticlesResponse struct {
	Articles      []models.ArticleView `json:"articles"`
	ArticlesCount int                  `json:"articles_count"`
}

type CommentResponse struct {
	Comment models.Comment `json:"comment"`
}

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}
