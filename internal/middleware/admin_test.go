package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/session"
)

func newSessionRouter(requireSession bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	creds := session.Credentials{Admin: "admin-pw", Editor: "editor-pw", Viewer: "viewer-pw"}
	mw := New(pkgLog.NewNopLogger(), session.NewLegacyCodec(creds, "shared"))

	r := gin.New()
	r.Use(mw.AdminSession())

	handler := func(c *gin.Context) {
		sc := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, string(sc.Role))
	}
	if requireSession {
		r.GET("/probe", mw.RequireSession(), handler)
	} else {
		r.GET("/probe", handler)
	}
	return r
}

func probe(r *gin.Engine, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminSession_CookiePrecedence(t *testing.T) {
	r := newSessionRouter(false)

	tests := []struct {
		name    string
		cookies []*http.Cookie
		want    string
	}{
		{
			name: "no cookies yields anonymous scope",
			want: "",
		},
		{
			name: "current cookie token",
			cookies: []*http.Cookie{
				{Name: session.CookieName, Value: "editor|shared"},
			},
			want: "editor",
		},
		{
			name: "legacy cookie token",
			cookies: []*http.Cookie{
				{Name: session.LegacyCookieName, Value: "admin|shared"},
			},
			want: "admin",
		},
		{
			name: "legacy cookie bare password",
			cookies: []*http.Cookie{
				{Name: session.LegacyCookieName, Value: "viewer-pw"},
			},
			want: "viewer",
		},
		{
			name: "current cookie wins over legacy",
			cookies: []*http.Cookie{
				{Name: session.CookieName, Value: "viewer|shared"},
				{Name: session.LegacyCookieName, Value: "admin|shared"},
			},
			want: "viewer",
		},
		{
			name: "invalid current cookie masks valid legacy",
			cookies: []*http.Cookie{
				{Name: session.CookieName, Value: "garbage"},
				{Name: session.LegacyCookieName, Value: "admin|shared"},
			},
			want: "",
		},
		{
			name: "wrong secret yields anonymous scope",
			cookies: []*http.Cookie{
				{Name: session.CookieName, Value: "admin|wrong"},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := probe(r, tt.cookies...)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Body.String(); got != tt.want {
				t.Errorf("resolved role = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	r := newSessionRouter(true)

	if w := probe(r); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	w := probe(r, &http.Cookie{Name: session.CookieName, Value: "viewer|shared"})
	if w.Code != http.StatusOK {
		t.Errorf("viewer status = %d, want %d", w.Code, http.StatusOK)
	}
}
