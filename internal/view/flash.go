package view

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	formKeyPrefix    = "form_"
)

// FlashData holds the one-shot messages to show on the next render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Error("failed to get flash session: ", err)
		return
	}
	sess.AddFlash(message, key)
	saveFlash(c, sess)
}

func saveFlash(c echo.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Error("failed to save flash session: ", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFormValue keeps a submitted value for the next render of a form.
func SetFormValue(c echo.Context, field, value string) {
	setFlash(c, formKeyPrefix+field, value)
}

// TakeFormValue returns and clears a value kept by SetFormValue.
func TakeFormValue(c echo.Context, field string) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	flashes := sess.Flashes(formKeyPrefix + field)
	if len(flashes) == 0 {
		return ""
	}
	// The consumed flash must be saved to be cleared.
	saveFlash(c, sess)
	val, _ := flashes[0].(string)
	return val
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() returns and clears the values for a key.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)

	for _, f := range successFlashes {
		if s, ok := f.(string); ok {
			data.Success = append(data.Success, s)
		}
	}
	for _, f := range errorFlashes {
		if s, ok := f.(string); ok {
			data.Error = append(data.Error, s)
		}
	}

	if len(successFlashes) > 0 || len(errorFlashes) > 0 {
		saveFlash(c, sess)
	}
	return data
}
