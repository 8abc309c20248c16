package domain

import "context"

type User struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
	Address   string
	BirthDate string
	Phone     string
}

type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	BirthDate string
	Phone     string
}

type UserUpdate struct {
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
}

// AccountService is the remote account API. Credential checks, password
// hashing and reset mail all happen upstream; this side only forwards.
type AccountService interface {
	Register(ctx context.Context, reg Registration) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, id int, upd UserUpdate) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
}
