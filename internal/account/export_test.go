package account

// Usernames lists the registered usernames of an AccountStore built by New.
func Usernames(s AccountStore) []string {
	return s.(*store).usernames()
}
