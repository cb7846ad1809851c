package domain

// User is the authenticated caller as reported by the identity provider.
// The marketplace never stores users; it only references them by ID.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
