package handlers

// Form field names. They are the element IDs of the page inputs as well.
const (
	fieldFullName      = "full-name"
	fieldPhoneNumber   = "phone-number"
	fieldEmail         = "email"
	fieldPassword      = "password"
	fieldLoginEmail    = "login-email"
	fieldLoginPassword = "login-password"
)

// registerFields are read from a registration submission. All are required.
var registerFields = []string{fieldFullName, fieldPhoneNumber, fieldEmail, fieldPassword}

// loginFields are read from a sign-in submission. All are required.
var loginFields = []string{fieldLoginEmail, fieldLoginPassword}

const (
	loginViewPath    = "/"
	registerViewPath = "/?view=register"
)
