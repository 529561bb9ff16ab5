package models

// CreateExerciseRequest represents the request body for logging an exercise.
// Duration arrives as text and is parsed base-10 by the service, preserving
// the form-submission contract of the original API.
type CreateExerciseRequest struct {
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"` // optional, YYYY-MM-DD
}

// LogQuery represents the optional query parameters of the log endpoint.
type LogQuery struct {
	From  string `form:"from"`  // optional, YYYY-MM-DD, inclusive lower bound
	To    string `form:"to"`    // optional, YYYY-MM-DD, inclusive upper bound
	Limit string `form:"limit"` // optional, maximum number of entries
}
