package account

import (
	"errors"
	"sync"

	"github.com/mauv0809/hoopstats/internal/storage"
)

var (
	// ErrEmptyField is returned when a username or password is blank after trimming.
	ErrEmptyField = errors.New("username and password cannot be empty")
	// ErrAlreadyExists is returned when registering a username that is taken.
	ErrAlreadyExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Account is a registered local user. Passwords are kept as entered.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session identifies the logged-in user.
type Session struct {
	Username string `json:"username"`
}

// store keeps accounts in memory and rewrites the persisted list on every change.
type store struct {
	storage storage.Storage
	users   []Account
	current string
	mu      sync.RWMutex
}
