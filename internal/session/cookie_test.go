package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mazadWeb/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestCookie(t *testing.T) *Cookie {
	t.Helper()
	c, err := NewCookie(testSecret, false, time.Hour)
	if err != nil {
		t.Fatalf("new cookie: %v", err)
	}
	return c
}

func requestWithCookie(t *testing.T, write func(w http.ResponseWriter)) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	write(rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestCookieRoundTrip(t *testing.T) {
	c := newTestCookie(t)

	req := requestWithCookie(t, func(w http.ResponseWriter) {
		if err := c.Write(w, "session-id-42"); err != nil {
			t.Fatalf("write cookie: %v", err)
		}
	})

	got, err := c.Read(req)
	if err != nil {
		t.Fatalf("read cookie: %v", err)
	}
	if got != "session-id-42" {
		t.Fatalf("Read() = %q, want session-id-42", got)
	}
}

func TestCookieMissing(t *testing.T) {
	c := newTestCookie(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := c.Read(req); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCookieTampered(t *testing.T) {
	c := newTestCookie(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "bm90LWEtcmVhbC1jb29raWUtYXQtYWxs"})

	if _, err := c.Read(req); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCookieWrongKey(t *testing.T) {
	writer := newTestCookie(t)
	reader, err := NewCookie("ffffffffffffffffffffffffffffffff", false, time.Hour)
	if err != nil {
		t.Fatalf("new cookie: %v", err)
	}

	req := requestWithCookie(t, func(w http.ResponseWriter) {
		if err := writer.Write(w, "session-id-42"); err != nil {
			t.Fatalf("write cookie: %v", err)
		}
	})

	if _, err := reader.Read(req); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for foreign key, got %v", err)
	}
}

func TestCookieShortSecretRejected(t *testing.T) {
	if _, err := NewCookie("too short", false, time.Hour); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestCookieAttributes(t *testing.T) {
	c, err := NewCookie(testSecret, true, 2*time.Hour)
	if err != nil {
		t.Fatalf("new cookie: %v", err)
	}

	rec := httptest.NewRecorder()
	if err := c.Write(rec, "session-id-42"); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != CookieName {
		t.Fatalf("unexpected name: %s", cookie.Name)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("cookie must be http-only and secure: %+v", cookie)
	}
	if cookie.MaxAge != int((2 * time.Hour).Seconds()) {
		t.Fatalf("unexpected max age: %d", cookie.MaxAge)
	}

	rec = httptest.NewRecorder()
	c.Clear(rec)
	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("clear should expire the cookie: %+v", cleared)
	}
}
