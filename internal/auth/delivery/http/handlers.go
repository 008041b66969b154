package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/auth"
	"autoexport-srv/pkg/session"
)

const (
	loginRedirect  = "/admin"
	loginErrorPage = "/admin/login?error=1"
	logoutRedirect = "/admin/login"

	// sessionCookieTTL is the session cookie lifetime in seconds.
	sessionCookieTTL = int(session.TokenMaxAge / time.Second)
)

// Login authenticates an admin password and starts a session.
// @Summary Admin login
// @Description Validates the submitted password, sets the session cookie and redirects back into the admin area.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param password formData string true "Admin password"
// @Success 303 {string} string "Redirect to /admin"
// @Failure 500 {string} string "Admin passwords not configured"
// @Router /admin/login [POST]
func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")

	out, err := h.uc.Login(c.Request.Context(), auth.LoginInput{Password: password})
	if err != nil {
		if errors.Is(err, auth.ErrNoPasswordsConfigured) {
			c.String(http.StatusInternalServerError, "Admin passwords not configured")
			return
		}
		// Wrong password and codec failures both land on the login page
		// with an error flag; no detail leaks to the caller.
		c.Redirect(http.StatusSeeOther, loginErrorPage)
		return
	}

	h.setSessionCookie(c, out.Token)
	h.clearCookie(c, session.LegacyCookieName)

	c.Redirect(http.StatusSeeOther, loginRedirect)
}

// Logout clears the admin session.
// @Summary Admin logout
// @Description Clears every recognized session cookie and redirects to the login page.
// @Tags Auth
// @Success 303 {string} string "Redirect to /admin/login"
// @Router /admin/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	for _, name := range session.CookieNames() {
		h.clearCookie(c, name)
	}

	c.Redirect(http.StatusSeeOther, logoutRedirect)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(session.CookieName, token, sessionCookieTTL, "/", "", h.secureCookies, true)
}

func (h *Handler) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", "", h.secureCookies, true)
}
