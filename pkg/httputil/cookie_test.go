package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetTokenFromRequestOrder(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ws?token=q", nil)
	if tok, err := GetTokenFromRequest(r); err != nil || tok != "q" {
		t.Fatalf("expected query token, got %q (%v)", tok, err)
	}

	r.Header.Set("Authorization", "Bearer h")
	if tok, _ := GetTokenFromRequest(r); tok != "h" {
		t.Fatalf("expected header token to win over query, got %q", tok)
	}

	r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "c"})
	if tok, _ := GetTokenFromRequest(r); tok != "c" {
		t.Fatalf("expected cookie token to win, got %q", tok)
	}
}

func TestGetTokenFromRequestMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := GetTokenFromRequest(r); err == nil {
		t.Fatalf("expected error without any token")
	}
}
