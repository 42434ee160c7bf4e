package model

type User struct {
	ID           string `json:"id"`
	Account      string `json:"account"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name"`
	Introduction string `json:"introduction"`
	Avatar       string `json:"avatar"`
	Cover        string `json:"cover"`
	Role         string `json:"role,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Profile is the User projection extended with the engagement aggregates the
// profile page shows.
type Profile struct {
	User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

// FollowUser is a listed user annotated with a viewer-relative flag.
type FollowUser struct {
	User
	IsFollowed bool `json:"is_followed"`
}

type GetUserRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetUserResponse struct {
	Profile
}

type UpdateUserRequest struct {
	// Avatar and cover image data are included in form-data under the
	// "avatar" and "cover" keys.
	UserID       string `json:"user_id" form:"user_id"`
	Account      string `json:"account" form:"account"`
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Introduction string `json:"introduction" form:"introduction"`
	Password     string `json:"password" form:"password"`
}

type UpdateUserResponse struct {
	User User `json:"user"`
}
