package request

// Request payloads are wrapped by resource name, {"user": {...}}.
// Pointer fields tell a missing key ("required") from an empty one ("notblank").

type Register struct {
	User struct {
		Username *string `json:"username" validate:"required,notblank,max=64,username"`
		Email    *string `json:"email" validate:"required,notblank,email,max=254"`
		Password *string `json:"password" validate:"required,notblank,min=8,max=128"`
	} `json:"user"`
}

type Login struct {
	User struct {
		Email    *string `json:"email" validate:"required,notblank,email"`
		Password *string `json:"password" validate:"required,notblank"`
	} `json:"user"`
}

type Email struct {
	User struct {
		Email *string `json:"email" validate:"required,notblank,email"`
	} `json:"user"`
}

type ResetPassword struct {
	User struct {
		Password *string `json:"password" validate:"required,notblank,min=8,max=128"`
	} `json:"user"`
}

type UpdateUser struct {
	User struct {
		Username *string `json:"username" validate:"omitnil,notblank,max=64,username"`
		Email    *string `json:"email" validate:"omitnil,notblank,email,max=254"`
		Password *string `json:"password" validate:"omitnil,notblank,min=8,max=128"`
		Bio      *string `json:"bio" validate:"omitnil,max=1024"`
		Image    *string `json:"image" validate:"omitnil,max=2048"`
	} `json:"user"`
}

type CreateArticle struct {
	Article struct {
		Title       *string  `json:"title" validate:"required,notblank,max=255"`
		Description *string  `json:"description" validate:"omitnil,max=512"`
		Body        *string  `json:"body" validate:"required,notblank"`
		Tags        []string `json:"tag_list" validate:"omitempty,max=20,dive,notblank,max=64"`
	} `json:"article"`
}

type UpdateArticle struct {
	Article struct {
		Title       *string  `json:"title" validate:"omitnil,notblank,max=255"`
		Description *string  `json:"description" validate:"omitnil,max=512"`
		Body        *string  `json:"body" validate:"omitnil,notblank"`
		Tags        []string `json:"tag_list" validate:"omitempty,max=20,dive,notblank,max=64"`
	} `json:"article"`
}

type Rate struct {
	Rating struct {
		Score *int `json:"score" validate:"required"`
	} `json:"rating"`
}

type Comment struct {
	Comment struct {
		Body *string `json:"body" validate:"required,notblank,max=5000"`
	} `json:"comment"`
}
