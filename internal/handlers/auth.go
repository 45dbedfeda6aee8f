package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signon/internal/audit"
	"github.com/nfrund/signon/internal/domain"
	"github.com/nfrund/signon/internal/form"
	"github.com/nfrund/signon/internal/middleware"
	"github.com/nfrund/signon/internal/rendering"
	"github.com/nfrund/signon/internal/submit"
	"github.com/nfrund/signon/internal/view"
	"github.com/nfrund/signon/web/src/templates/layouts"
	"github.com/nfrund/signon/web/src/templates/pages"
)

// Messages shown to the user.
const (
	msgAccountCreated = "Account created successfully"
	msgLoginSuccess   = "Login successful"
)

// Router is the part of *echo.Echo and *echo.Group the handler mounts on.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// AuthHandler serves the sign-in/registration page and handles its two forms.
type AuthHandler struct {
	identity    domain.IdentityService
	controller  *submit.Controller
	recorder    *audit.Recorder
	renderer    rendering.Renderer
	redirectURL string
}

// AuthDependencies holds the services the handler requires. Recorder may be nil.
type AuthDependencies struct {
	Identity    domain.IdentityService
	Controller  *submit.Controller
	Recorder    *audit.Recorder
	Renderer    rendering.Renderer
	RedirectURL string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(deps AuthDependencies) *AuthHandler {
	return &AuthHandler{
		identity:    deps.Identity,
		controller:  deps.Controller,
		recorder:    deps.Recorder,
		renderer:    deps.Renderer,
		redirectURL: deps.RedirectURL,
	}
}

// Mount registers the page and the form endpoints on r. It is called once while
// the server is built. submitMW wraps only the POST routes.
func (h *AuthHandler) Mount(r Router, submitMW ...echo.MiddlewareFunc) {
	r.GET("/", h.PageGet)
	r.POST("/register", h.RegisterPost, submitMW...)
	r.POST("/login", h.LoginPost, submitMW...)
}

// PageGet renders the combined page (GET /). ?view=register opens the
// registration card.
func (h *AuthHandler) PageGet(c echo.Context) error {
	data := pages.AuthData{
		RegisterView: c.QueryParam("view") == "register",
		LoginEmail:   view.TakeFormValue(c, fieldLoginEmail),
	}
	flashes := view.GetFlashData(c)

	page := layouts.Base("Sign in", flashes, pages.Auth(data))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// RegisterPost handles the registration form.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	fields := form.Read(c, registerFields...)

	out := h.controller.Run(c.Request().Context(), fields, registerFields,
		func(ctx context.Context, f form.Fields) (domain.Token, error) {
			return h.identity.CreateAccount(ctx, domain.Credentials{
				Identifier: f[fieldEmail],
				Secret:     f[fieldPassword],
				Profile: domain.Profile{
					Name:  f[fieldFullName],
					Phone: f[fieldPhoneNumber],
				},
			})
		})
	h.record(c, audit.FlowRegister, fields[fieldEmail], out)

	switch out.Kind {
	case submit.Invalid:
		view.SetFlashError(c, out.Message)
		return c.Redirect(http.StatusSeeOther, registerViewPath)
	case submit.Failure:
		middleware.FromContext(c.Request().Context()).Warn("Account creation failed", "email", fields[fieldEmail], "error", out.Err)
		view.SetFlashError(c, "Error: "+out.Message)
		return c.Redirect(http.StatusSeeOther, registerViewPath)
	}

	// Switch back to the login view with empty login fields.
	view.TakeFormValue(c, fieldLoginEmail)
	view.SetFlashSuccess(c, msgAccountCreated)
	return c.Redirect(http.StatusSeeOther, loginViewPath)
}

// LoginPost handles the sign-in form.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	fields := form.Read(c, loginFields...)

	out := h.controller.Run(c.Request().Context(), fields, loginFields,
		func(ctx context.Context, f form.Fields) (domain.Token, error) {
			return h.identity.SignIn(ctx, domain.Credentials{
				Identifier: f[fieldLoginEmail],
				Secret:     f[fieldLoginPassword],
			})
		})
	h.record(c, audit.FlowSignIn, fields[fieldLoginEmail], out)

	switch out.Kind {
	case submit.Invalid:
		view.SetFlashError(c, out.Message)
		return c.Redirect(http.StatusSeeOther, loginViewPath)
	case submit.Failure:
		middleware.FromContext(c.Request().Context()).Warn("Failed login attempt", "email", fields[fieldLoginEmail], "error", out.Err)
		view.SetFlashError(c, "Error: "+out.Message)
		// Preserve the submitted email address for the next render of the login form.
		view.SetFormValue(c, fieldLoginEmail, fields[fieldLoginEmail])
		return c.Redirect(http.StatusSeeOther, loginViewPath)
	}

	// The target may be another origin. The confirmation is still kept so it
	// shows when the user comes back to this page.
	view.SetFlashSuccess(c, msgLoginSuccess)
	return h.navigate(c, h.redirectURL)
}

// navigate sends the browser to target. Boosted htmx requests follow an
// HX-Redirect header instead of a 3xx, which they would fetch over XHR.
func (h *AuthHandler) navigate(c echo.Context, target string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *AuthHandler) record(c echo.Context, flow audit.Flow, identifier string, out submit.Outcome) {
	if h.recorder == nil {
		return
	}
	ctx := c.Request().Context()
	reqID := c.Response().Header().Get(echo.HeaderXRequestID)
	if err := h.recorder.Record(ctx, flow, identifier, reqID, out); err != nil {
		middleware.FromContext(ctx).Error("Failed to record auth outcome", "flow", flow, "error", err)
	}
}
