package models

// CreateUserRequest represents the request body for creating a user.
// The original consumer submits an urlencoded form, so JSON clients are
// accepted too via the json tag.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}
