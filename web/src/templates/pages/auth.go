package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// AuthData is the view model of the combined sign-in/registration page.
type AuthData struct {
	// RegisterView checks the reg-log toggle so the registration card is shown.
	RegisterView bool
	// LoginEmail pre-fills the sign-in email after a failed attempt.
	LoginEmail string
}

// Auth renders both forms. The reg-log checkbox flips between them with CSS; the
// server sets its initial state.
func Auth(data AuthData) g.Node {
	return h.Main(
		h.Class("section"),
		hx.Boost("true"),
		h.Input(
			h.Type("checkbox"),
			h.Class("checkbox"),
			h.ID("reg-log"),
			h.Name("reg-log"),
			g.If(data.RegisterView, h.Checked()),
		),
		h.Label(h.For("reg-log"), h.Span(g.Text("Log In")), h.Span(g.Text("Sign Up"))),
		h.Div(
			h.Class("card-3d-wrap"),
			h.Div(
				h.Class("card-front"),
				loginForm(data.LoginEmail),
			),
			h.Div(
				h.Class("card-back"),
				registerForm(),
			),
		),
	)
}

func loginForm(email string) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action("/login"),
		h.H4(g.Text("Log In")),
		field("email", "login-email", "Your Email", email),
		field("password", "login-password", "Your Password", ""),
		h.Button(h.Type("submit"), h.Class("btn mt-4"), g.Text("Login")),
	)
}

func registerForm() g.Node {
	return h.Form(
		h.Method("post"),
		h.Action("/register"),
		h.H4(g.Text("Sign Up")),
		field("text", "full-name", "Your Full Name", ""),
		field("tel", "phone-number", "Your Phone Number", ""),
		field("email", "email", "Your Email", ""),
		field("password", "password", "Your Password", ""),
		h.Button(h.Type("submit"), h.ID("register"), h.Class("btn mt-3"), g.Text("Register")),
	)
}

func field(kind, id, placeholder, value string) g.Node {
	return h.Div(
		h.Class("form-group"),
		h.Input(
			h.Type(kind),
			h.ID(id),
			h.Name(id),
			h.Class("form-style"),
			h.Placeholder(placeholder),
			h.AutoComplete("off"),
			g.If(value != "", h.Value(value)),
		),
	)
}
