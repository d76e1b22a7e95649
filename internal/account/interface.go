package account

// AccountStore defines the operations on registered accounts and the active session.
type AccountStore interface {
	Register(username, password string) error
	Authenticate(username, password string) (Session, error)
	Logout() error
	CurrentUser() (string, bool)
}
