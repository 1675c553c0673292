package pagewatch

import (
	"context"
	"time"
)

// User represents a page owner. Authentication and sessions are handled
// elsewhere; the monitoring pipeline only needs the owner's identity and
// notification preference.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`

	// EmailAlerts controls whether change notifications are delivered.
	EmailAlerts bool `json:"emailAlerts"`
}

// Validate returns an error if the user contains invalid fields.
func (u *User) Validate() error {
	if u.Email == "" {
		return Errorf(EINVALID, "user email required")
	}
	return nil
}

// UserService resolves page owners and their notification preferences.
type UserService interface {
	// CreateUser creates a new user.
	// Returns ECONFLICT if the email is already registered.
	CreateUser(ctx context.Context, user *User) error

	// FindUserByID retrieves a user by ID.
	// Returns ENOTFOUND if the user does not exist.
	FindUserByID(ctx context.Context, id string) (*User, error)

	// FindUserByEmail retrieves a user by email.
	// Returns ENOTFOUND if the user does not exist.
	FindUserByEmail(ctx context.Context, email string) (*User, error)
}
