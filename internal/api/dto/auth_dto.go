package dto

// LoginForm is the POST /auth/login payload. Missing fields are empty.
type LoginForm struct {
	Email    string
	Password string
}

// SignupForm is the POST /auth/signup payload. Missing fields are empty.
type SignupForm struct {
	Name     string
	Email    string
	Password string
}

// AuthFlash carries the query indicators shown on the auth forms.
type AuthFlash struct {
	Error   string
	Success string
}
