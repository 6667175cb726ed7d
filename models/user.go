package models

// User represents a single registry entry. The zero value is not a valid
// user; instances are produced either by decoding a request body or by the
// store itself.
type User struct {
	// ID is the unique identifier of the user. It is assigned by the store
	// at creation time as max(existing ids)+1 (or 1 for an empty store) and
	// is immutable afterwards. Ignored on input for create requests.
	ID int64 `json:"id"`

	// Name is the display name of the user. Required, non-empty.
	Name string `json:"name"`

	// Email is the user's contact address. Required, non-empty, and must
	// match a simple local@domain.tld pattern (see validators.UserValidator).
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
