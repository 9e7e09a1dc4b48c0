// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain data carriers with no
// behaviour attached beyond the occasional convenience method.
package model

import "time"

// User is the identity anchor every log row hangs off.
//
// There is no login in this app: a single placeholder user is provisioned
// lazily on the first request and reused for the life of the process. The
// struct still models ownership explicitly so the CRUD layer never has to
// assume "whose row is this" — a future multi-user upgrade only needs a real
// way to resolve the current user.
//
// WHY POINTER FIELDS FOR HeightCM / WeightKG?
// Both are optional measurements. A nil pointer means "not recorded", which
// is a different fact from a recorded zero. The sqlite layer stores nil as
// SQL NULL and scans NULL back into nil, so the distinction survives a
// round trip through the database.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`     // display name, max 50 chars
	HeightCM  *int64    `json:"heightCm"` // nil = not recorded
	WeightKG  *float64  `json:"weightKg"` // nil = not recorded
	CreatedAt time.Time `json:"createdAt"`
}
