package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	authUC "autoexport-srv/internal/auth/usecase"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/session"
)

func newTestRouter(t *testing.T, creds session.Credentials) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := session.NewLegacyCodec(creds, creds.SharedSecret(""))
	uc := authUC.New(pkgLog.NewNopLogger(), creds, codec)

	r := gin.New()
	New(uc, pkgLog.NewNopLogger(), false).RegisterRoutes(r.Group(""))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	creds := session.Credentials{Admin: "admin-pw", Editor: "editor-pw"}
	r := newTestRouter(t, creds)

	w := postForm(r, "/admin/login", url.Values{"password": {"editor-pw"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q, want %q", loc, "/admin")
	}

	cookies := w.Result().Cookies()

	sess := findCookie(cookies, session.CookieName)
	if sess == nil {
		t.Fatalf("cookie %q not set", session.CookieName)
	}
	if want := "editor|admin-pw"; sess.Value != want {
		t.Errorf("session cookie value = %q, want %q", sess.Value, want)
	}
	if !sess.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if sess.SameSite != http.SameSiteStrictMode {
		t.Errorf("session cookie SameSite = %v, want Strict", sess.SameSite)
	}
	if sess.Path != "/" {
		t.Errorf("session cookie Path = %q, want /", sess.Path)
	}

	legacy := findCookie(cookies, session.LegacyCookieName)
	if legacy == nil {
		t.Fatalf("legacy cookie should be cleared on login")
	}
	if legacy.Value != "" || legacy.MaxAge >= 0 {
		t.Errorf("legacy cookie = {value %q, max-age %d}, want cleared", legacy.Value, legacy.MaxAge)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestRouter(t, session.Credentials{Admin: "admin-pw"})

	w := postForm(r, "/admin/login", url.Values{"password": {"nope"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login?error=1" {
		t.Errorf("Location = %q, want %q", loc, "/admin/login?error=1")
	}
	if c := findCookie(w.Result().Cookies(), session.CookieName); c != nil {
		t.Errorf("session cookie should not be set on failed login")
	}
}

func TestLogin_NoPasswordsConfigured(t *testing.T) {
	r := newTestRouter(t, session.Credentials{})

	w := postForm(r, "/admin/login", url.Values{"password": {"anything"}})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if body := w.Body.String(); body != "Admin passwords not configured" {
		t.Errorf("body = %q", body)
	}
}

func TestLogout_ClearsAllCookies(t *testing.T) {
	r := newTestRouter(t, session.Credentials{Admin: "admin-pw"})

	w := postForm(r, "/admin/logout", nil)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want %q", loc, "/admin/login")
	}

	cookies := w.Result().Cookies()
	for _, name := range session.CookieNames() {
		c := findCookie(cookies, name)
		if c == nil {
			t.Errorf("cookie %q not cleared", name)
			continue
		}
		if c.Value != "" || c.MaxAge >= 0 {
			t.Errorf("cookie %q = {value %q, max-age %d}, want cleared", name, c.Value, c.MaxAge)
		}
	}
}
