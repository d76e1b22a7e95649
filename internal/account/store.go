package account

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hoopstats/internal/storage"
)

// New loads the registered accounts and the active session from s.
func New(s storage.Storage) (AccountStore, error) {
	st := &store{storage: s}

	users, _, err := storage.LoadJSON[[]Account](s, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	st.users = users

	current, ok, err := s.Get(storage.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	if ok {
		st.current = current
	}

	log.Debug("Loaded accounts", "count", len(st.users), "logged_in", st.current != "")
	return st, nil
}

// Register adds a new account. The username must not be taken (exact,
// case-sensitive match) and neither field may be blank.
func (s *store) Register(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return ErrAlreadyExists
		}
	}

	users := append(append([]Account{}, s.users...), Account{Username: username, Password: password})
	if err := storage.SaveJSON(s.storage, storage.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	s.users = users
	log.Info("Registered account", "username", username)
	return nil
}

// Authenticate opens a session when both fields exactly match a stored account.
func (s *store) Authenticate(username, password string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			if err := s.storage.Set(storage.KeyCurrentUser, username); err != nil {
				return Session{}, fmt.Errorf("failed to save session: %w", err)
			}
			s.current = username
			log.Info("User logged in", "username", username)
			return Session{Username: username}, nil
		}
	}
	log.Debug("Rejected login", "username", username)
	return Session{}, ErrInvalidCredentials
}

// Logout clears the active session marker.
func (s *store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if s.current != "" {
		log.Info("User logged out", "username", s.current)
	}
	s.current = ""
	return nil
}

func (s *store) CurrentUser() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != ""
}

// usernames lists registered usernames in registration order.
func (s *store) usernames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.users))
	for _, u := range s.users {
		names = append(names, u.Username)
	}
	return names
}
