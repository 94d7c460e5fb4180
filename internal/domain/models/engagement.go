package models

type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// ArticleStats holds the counters aggregated over all users.
type ArticleStats struct {
	AverageRating  float64 `db:"average_rating"`
	RatingsCount   int     `db:"ratings_count"`
	LikesCount     int     `db:"likes_count"`
	DislikesCount  int     `db:"dislikes_count"`
	FavoritesCount int     `db:"favorites_count"`
}

// ViewerState is what a single user has contributed to an article.
type ViewerState struct {
	Favorited bool     `db:"favorited"`
	Reaction  Reaction `db:"reaction"`
	Rating    *int     `db:"rating"`
}

type Engagement struct {
	AverageRating  float64 `json:"average_rating"`
	RatingsCount   int     `json:"ratings_count"`
	LikesCount     int     `json:"likes_count"`
	DislikesCount  int     `json:"dislikes_count"`
	FavoritesCount int     `json:"favorites_count"`
	Favorited      bool    `json:"favorited"`
	Liked          bool    `json:"liked"`
	Disliked       bool    `json:"disliked"`
	Rated          bool    `json:"rated"`
	UserRating     *int    `json:"user_rating"`
}

// ArticleView is an article together with its engagement figures.
type ArticleView struct {
	Article
	Engagement
}
