package domain

import (
	"errors"
	"strings"
)

// Common user validation errors
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyAuthorities    = errors.New("authorities cannot be empty")
)

// AuthoritiesDelimiter separates authority names in the stored string.
const AuthoritiesDelimiter = "::"

// DefaultAuthority is the role marker assigned to every user on
// registration.
const DefaultAuthority = "student"

// User represents a registered user of the task manager.
// The password field always holds a bcrypt hash; plaintext passwords
// exist only transiently inside the registration flow and are never
// stored or serialized.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Authorities    string `json:"-"`
	Enabled        bool   `json:"enabled"`
}

// NewUser creates an unpersisted User with the default authority and
// enabled flag set. hashedPassword must already be a bcrypt hash.
// Returns an error if validation fails.
func NewUser(name, username, hashedPassword string) (*User, error) {
	user := &User{
		Name:           name,
		Username:       username,
		HashedPassword: hashedPassword,
		Authorities:    DefaultAuthority,
		Enabled:        true,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if u.Authorities == "" {
		return ErrEmptyAuthorities
	}
	return nil
}

// AuthorityList splits the stored authorities string into the set of
// granted authority names.
func (u *User) AuthorityList() []string {
	return strings.Split(u.Authorities, AuthoritiesDelimiter)
}
