package models

// UserResponse represents a user reduced to the public API shape.
// The id field is named _id for compatibility with existing consumers.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}
