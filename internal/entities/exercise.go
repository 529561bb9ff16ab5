package entities

import "time"

// Exercise represents a single logged exercise in the database
type Exercise struct {
	ID          string    `json:"id"`      // UUID, generated by the database
	UserID      string    `json:"user_id"` // references users.id, checked by the handler before insert
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"date"`     // calendar date, no time-of-day component
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
