package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/service"
)

func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	return w
}

func getPage(t *testing.T, router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	return w
}

// loginAs creates a live session and returns its cookie.
func (e *testEnv) loginAs(t *testing.T, userID int, name string) *http.Cookie {
	t.Helper()
	sess := e.sessions.Start(userID, name)
	token, err := e.codec.Encode(sess.ID)
	if err != nil {
		t.Fatalf("encode session token: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func TestRoot_RedirectsToSignup(t *testing.T) {
	env := newTestEnv(&service.Service{})

	w := getPage(t, env.router, "/")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/signup" {
		t.Fatalf("expected 302 to /signup, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestSignup_RendersForm(t *testing.T) {
	env := newTestEnv(&service.Service{})

	w := getPage(t, env.router, "/signup")
	if w.Code != http.StatusOK {
		t.Fatalf("signup status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/signup"`) {
		t.Fatalf("expected signup form in body")
	}
}

func TestSignup_Post_RedirectsToLogin(t *testing.T) {
	auth := &mockAuth{signUpID: 42}
	env := newTestEnv(&service.Service{Authorization: auth})

	w := postForm(t, env.router, "/signup", url.Values{
		"name":     {"Alice"},
		"username": {"alice"},
		"password": {"pw"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if auth.lastSignUpUsername != "alice" || auth.lastSignUpName != "Alice" {
		t.Fatalf("unexpected signup call: %+v", auth)
	}
}

func TestSignup_Post_MissingField(t *testing.T) {
	env := newTestEnv(&service.Service{Authorization: &mockAuth{}})

	w := postForm(t, env.router, "/signup", url.Values{
		"name":     {"Alice"},
		"username": {"alice"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestLogin_Post_Success_SetsCookieAndRedirects(t *testing.T) {
	auth := &mockAuth{loginUser: &models.User{ID: 7, Name: "Alice", Username: "alice"}}
	env := newTestEnv(&service.Service{Authorization: auth})

	w := postForm(t, env.router, "/login", url.Values{
		"username": {"alice"},
		"password": {"pw"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/home" {
		t.Fatalf("expected 302 to /home, got %d %q", w.Code, w.Header().Get("Location"))
	}

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			found = c
		}
	}
	if found == nil || found.Value == "" {
		t.Fatal("expected session cookie to be set")
	}

	// Cookie must resolve to a live session for the user.
	sessionID, err := env.codec.Decode(found.Value)
	if err != nil {
		t.Fatalf("decode cookie: %v", err)
	}
	sess, ok := env.sessions.Get(sessionID)
	if !ok || sess.UserID != 7 || sess.Name != "Alice" {
		t.Fatalf("unexpected session: %+v ok=%v", sess, ok)
	}
}

func TestLogin_Post_BadCredentials_RerendersWithError(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	env := newTestEnv(&service.Service{Authorization: auth})

	w := postForm(t, env.router, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected login page re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid username or password") {
		t.Fatalf("expected inline error message, body=%s", w.Body.String())
	}
	if env.sessions.Len() != 0 {
		t.Fatalf("expected no session created, have %d", env.sessions.Len())
	}
}

func TestLogin_Post_DBError(t *testing.T) {
	auth := &mockAuth{loginErr: errTest}
	env := newTestEnv(&service.Service{Authorization: auth})

	w := postForm(t, env.router, "/login", url.Values{
		"username": {"alice"},
		"password": {"pw"},
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestLogout_DestroysSessionAndRedirects(t *testing.T) {
	env := newTestEnv(&service.Service{Summary: &mockSummary{}})
	cookie := env.loginAs(t, 7, "Alice")

	w := getPage(t, env.router, "/logout", cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}

	// A gated page with the same cookie now redirects to login.
	w = getPage(t, env.router, "/home", cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected gated page to reject dead session, got %d %q", w.Code, w.Header().Get("Location"))
	}
}
