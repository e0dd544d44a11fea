package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User represents a registered account that can authenticate against the API.
// The plaintext password only exists transiently during signup; storage and
// responses carry the bcrypt hash or nothing at all.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
}

// NewUser creates a new User with the given name, email, and already-hashed
// password. It generates a new UUID for the user ID.
// Returns an error if validation fails.
func NewUser(name, email, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}

// validEmailFormat performs basic structural validation of an email address.
// The API layer runs the stricter validator tag; this is a last line of
// defense for users constructed outside the request path.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
