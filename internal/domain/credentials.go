package domain

// Profile holds the optional profile fields collected on the registration form.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Credentials is the identifier/secret pair submitted for registration or sign-in.
// It is built fresh for each submission and never stored by the application.
type Credentials struct {
	Identifier string
	Secret     string
	Profile    Profile
}

// Token is the opaque session handle returned by the identity service on success.
// The application does not inspect it.
type Token string
