package models

import "time"

// DateLayout is the response format for exercise dates, matching
// JavaScript's Date.prototype.toDateString (e.g. "Mon Jan 02 2023").
const DateLayout = "Mon Jan 02 2006"

// FormatDate renders a calendar date in the response format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ExerciseResponse represents the response after logging an exercise.
// The _id field carries the USER's id, not the exercise's id. Existing
// consumers depend on this shape, so it must not be "fixed".
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogEntry is a single exercise in a log response. The exercise's own
// id is dropped from log entries.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents the filtered exercise log for a user.
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
