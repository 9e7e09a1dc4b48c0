package model

import "time"

// MealLog records one meal.
//
// Calories and Note are optional; both survive the database as NULL when not
// provided. EatenAt comes from the form (the source app made it an explicit
// field so meals can be logged after the fact) and falls back to "now" when
// the field is left blank.
type MealLog struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	MealType string    `json:"mealType"` // e.g. "아침", "lunch" — max 100 chars
	Calories *int64    `json:"calories"` // nil = not recorded
	Note     *string   `json:"note"`     // max 200 chars, nil = no note
	EatenAt  time.Time `json:"eatenAt"`
}
