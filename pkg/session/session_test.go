package session

import (
	"testing"
	"time"
)

func testCreds() Credentials {
	return Credentials{Admin: "A1", Editor: "E1", Viewer: "V1"}
}

func TestCredentials_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		password string
		want     Role
	}{
		{name: "admin password", creds: testCreds(), password: "A1", want: RoleAdmin},
		{name: "editor password", creds: testCreds(), password: "E1", want: RoleEditor},
		{name: "viewer password", creds: testCreds(), password: "V1", want: RoleViewer},
		{name: "unknown password", creds: testCreds(), password: "nope", want: RoleNone},
		{name: "empty password", creds: testCreds(), password: "", want: RoleNone},
		{
			name:     "duplicate secret resolves to higher role",
			creds:    Credentials{Admin: "same", Editor: "same"},
			password: "same",
			want:     RoleAdmin,
		},
		{
			name:     "absent secret disables role",
			creds:    Credentials{Editor: "E1"},
			password: "A1",
			want:     RoleNone,
		},
		{
			name:     "empty secret never matches empty password",
			creds:    Credentials{},
			password: "",
			want:     RoleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.Resolve(tt.password); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}

func TestCredentials_SharedSecret(t *testing.T) {
	tests := []struct {
		name      string
		creds     Credentials
		dedicated string
		want      string
	}{
		{name: "dedicated wins", creds: testCreds(), dedicated: "S1", want: "S1"},
		{name: "falls back to admin", creds: testCreds(), want: "A1"},
		{name: "falls back to editor", creds: Credentials{Editor: "E1", Viewer: "V1"}, want: "E1"},
		{name: "falls back to viewer", creds: Credentials{Viewer: "V1"}, want: "V1"},
		{name: "hardcoded default", creds: Credentials{}, want: DefaultSharedSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.SharedSecret(tt.dedicated); got != tt.want {
				t.Errorf("SharedSecret(%q) = %q, want %q", tt.dedicated, got, tt.want)
			}
		})
	}
}

func TestLegacyCodec_RoundTrip(t *testing.T) {
	for _, secret := range []string{"S1", "E1", "admin-secret", ""} {
		codec := NewLegacyCodec(testCreds(), secret)
		for _, role := range []Role{RoleViewer, RoleEditor, RoleAdmin} {
			token, err := codec.Encode(role)
			if err != nil {
				t.Fatalf("Encode(%q): %v", role, err)
			}
			if got := codec.Decode(token); got != role {
				t.Errorf("Decode(Encode(%q)) = %q with secret %q", role, got, secret)
			}
		}
	}
}

func TestLegacyCodec_BarePasswordFallback(t *testing.T) {
	creds := testCreds()
	codec := NewLegacyCodec(creds, "S1")

	// A raw configured password in the cookie decodes to the same role
	// the resolver yields for it.
	for _, password := range []string{"A1", "E1", "V1", "garbage"} {
		if got, want := codec.Decode(password), creds.Resolve(password); got != want {
			t.Errorf("Decode(%q) = %q, Resolve = %q; fallback must agree", password, got, want)
		}
	}
}

func TestLegacyCodec_Decode(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		token  string
		want   Role
	}{
		{name: "absent", secret: "S1", token: "", want: RoleNone},
		{name: "valid editor token", secret: "S1", token: "editor|S1", want: RoleEditor},
		{name: "wrong secret", secret: "S1", token: "editor|WRONG", want: RoleNone},
		{name: "unknown role", secret: "S1", token: "root|S1", want: RoleNone},
		{name: "garbage", secret: "S1", token: "ZZ##@@!!", want: RoleNone},
		{name: "pipe only", secret: "S1", token: "|", want: RoleNone},
		{name: "role without secret half", secret: "S1", token: "admin", want: RoleNone},
		{
			// editor password doubling as the session secret, matching
			// the fallback chain when no dedicated secret is set
			name:   "editor password as shared secret",
			secret: "E1",
			token:  "editor|E1",
			want:   RoleEditor,
		},
		{
			// the whole string also fails the resolver, so both decode
			// paths reject it
			name:   "wrong secret fails both paths",
			secret: "E1",
			token:  "editor|WRONG",
			want:   RoleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewLegacyCodec(Credentials{Admin: "A1", Editor: "E1"}, tt.secret)
			if got := codec.Decode(tt.token); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestHMACCodec_RoundTrip(t *testing.T) {
	codec := NewHMACCodec("a-long-enough-signing-secret", time.Hour)

	for _, role := range []Role{RoleViewer, RoleEditor, RoleAdmin} {
		token, err := codec.Encode(role)
		if err != nil {
			t.Fatalf("Encode(%q): %v", role, err)
		}
		if got := codec.Decode(token); got != role {
			t.Errorf("Decode(Encode(%q)) = %q", role, got)
		}
	}
}

func TestHMACCodec_RejectsBadInput(t *testing.T) {
	codec := NewHMACCodec("a-long-enough-signing-secret", time.Hour)
	other := NewHMACCodec("a-different-signing-secret!!", time.Hour)

	token, err := codec.Encode(RoleAdmin)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "legacy format", token: "admin|whatever"},
		{name: "garbage", token: "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Decode(tt.token); got != RoleNone {
				t.Errorf("Decode(%q) = %q, want none", tt.token, got)
			}
		})
	}

	if got := other.Decode(token); got != RoleNone {
		t.Errorf("Decode with wrong key = %q, want none", got)
	}

	expired := NewHMACCodec("a-long-enough-signing-secret", -time.Minute)
	expiredToken, err := expired.Encode(RoleEditor)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := codec.Decode(expiredToken); got != RoleNone {
		t.Errorf("Decode(expired) = %q, want none", got)
	}
}

func TestHasRequiredRole(t *testing.T) {
	tests := []struct {
		role    Role
		minRole Role
		want    bool
	}{
		{RoleNone, RoleViewer, false},
		{RoleNone, RoleEditor, false},
		{RoleNone, RoleAdmin, false},
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleEditor, false},
		{RoleViewer, RoleAdmin, false},
		{RoleEditor, RoleViewer, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleEditor, true},
		{RoleAdmin, RoleAdmin, true},
		{Role("root"), RoleViewer, false},
	}

	for _, tt := range tests {
		if got := HasRequiredRole(tt.role, tt.minRole); got != tt.want {
			t.Errorf("HasRequiredRole(%q, %q) = %v, want %v", tt.role, tt.minRole, got, tt.want)
		}
	}
}

func TestExtractRole(t *testing.T) {
	codec := NewLegacyCodec(testCreds(), "S1")
	lookupFrom := func(cookies map[string]string) CookieLookup {
		return func(name string) (string, bool) {
			v, ok := cookies[name]
			return v, ok
		}
	}

	tests := []struct {
		name    string
		cookies map[string]string
		want    Role
	}{
		{name: "no cookies", cookies: map[string]string{}, want: RoleNone},
		{name: "current cookie", cookies: map[string]string{CookieName: "editor|S1"}, want: RoleEditor},
		{name: "legacy cookie", cookies: map[string]string{LegacyCookieName: "admin|S1"}, want: RoleAdmin},
		{
			name: "current wins by precedence",
			cookies: map[string]string{
				CookieName:       "viewer|S1",
				LegacyCookieName: "admin|S1",
			},
			want: RoleViewer,
		},
		{
			// current name present but invalid still shadows legacy
			name: "invalid current shadows valid legacy",
			cookies: map[string]string{
				CookieName:       "admin|WRONG",
				LegacyCookieName: "admin|S1",
			},
			want: RoleNone,
		},
		{name: "legacy bare password", cookies: map[string]string{LegacyCookieName: "E1"}, want: RoleEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractRole(codec, lookupFrom(tt.cookies)); got != tt.want {
				t.Errorf("ExtractRole = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractRole_Idempotent(t *testing.T) {
	codec := NewLegacyCodec(testCreds(), "S1")
	cookies := map[string]string{CookieName: "editor|S1"}
	lookup := func(name string) (string, bool) {
		v, ok := cookies[name]
		return v, ok
	}

	first := ExtractRole(codec, lookup)
	second := ExtractRole(codec, lookup)
	if first != second {
		t.Errorf("ExtractRole not idempotent: %q then %q", first, second)
	}
	if err1, err2 := Require(first, RoleEditor), Require(second, RoleEditor); (err1 == nil) != (err2 == nil) {
		t.Errorf("Require not idempotent: %v then %v", err1, err2)
	}
}

func TestRequire(t *testing.T) {
	if err := Require(RoleEditor, RoleAdmin); err != ErrForbidden {
		t.Errorf("Require(editor, admin) = %v, want ErrForbidden", err)
	}
	if err := Require(RoleAdmin, RoleEditor); err != nil {
		t.Errorf("Require(admin, editor) = %v, want nil", err)
	}
	if err := Require(RoleNone, RoleViewer); err != ErrForbidden {
		t.Errorf("Require(none, viewer) = %v, want ErrForbidden", err)
	}
}

func TestCredentials_ResolveBcryptSecret(t *testing.T) {
	// bcrypt hash of "hunter2", cost 10
	const hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	creds := Credentials{Editor: hash}

	if got := creds.Resolve(hash); got != RoleNone {
		t.Errorf("Resolve(hash literal) = %q, want none", got)
	}
}
