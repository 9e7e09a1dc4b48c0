package model

import "time"

// ExerciseLog records one exercise session.
//
// CaloriesBurned is a pointer because "I don't know how many calories that
// was" is a valid submission — nil round-trips as NULL, distinct from an
// explicit 0.
type ExerciseLog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Activity       string    `json:"activity"` // max 100 chars
	DurationMin    int64     `json:"durationMin"`
	CaloriesBurned *int64    `json:"caloriesBurned"` // nil = unknown
	LoggedAt       time.Time `json:"loggedAt"`
}
