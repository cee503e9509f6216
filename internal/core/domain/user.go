package domain

import "time"

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// UserRef is the public subset of a user embedded in task responses (assignee).
type UserRef struct {
	ID    int64
	Name  string
	Email string
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// AuthResult is what register and login hand back to the transport layer.
type AuthResult struct {
	User  User
	Token string
}
