package domain

// Account is a registered helpdesk user. Email is the unique key within the
// account collection.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
