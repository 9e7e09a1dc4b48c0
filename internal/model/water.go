package model

import "time"

// WaterLog records one water intake event.
//
// LoggedAt defaults to the moment of creation; the edit form can overwrite it
// with an explicit timestamp. AmountML is intentionally unvalidated beyond
// integer coercion — the app records whatever the user typed.
type WaterLog struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	AmountML int64     `json:"amountMl"`
	LoggedAt time.Time `json:"loggedAt"`
}

// Date returns the calendar day the intake belongs to, in ISO form.
// The water report groups and labels its bars by this value.
func (w WaterLog) Date() string {
	return w.LoggedAt.Format("2006-01-02")
}
