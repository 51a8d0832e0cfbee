package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/middleware"
)

func newRouter(cfg *config.Config) *mux.Router {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	r := mux.NewRouter()
	r.Use(middleware.SessionGate(cfg))
	r.HandleFunc("/login", ok).Name("login")
	r.HandleFunc("/credits", ok).Name("credits")
	return r
}

func signToken(secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, _ := token.SignedString([]byte(secret))
	return s
}

func TestGateAllowsPublicRoute(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "s", PublicRoutes: []string{"login"}})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/login", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("public route got=%d want=200", rec.Code)
	}
}

func TestGateBlocksWithoutSession(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "s", PublicRoutes: []string{"login"}})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/credits", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("gated route got=%d want=401", rec.Code)
	}
}

func TestGateAcceptsValidSession(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "s", PublicRoutes: []string{"login"}})
	req := httptest.NewRequest("GET", "/credits", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: signToken("s")})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid session got=%d want=200", rec.Code)
	}
}

func TestGateRejectsForgedToken(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "s", PublicRoutes: []string{"login"}})
	req := httptest.NewRequest("GET", "/credits", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: signToken("other-secret")})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("forged token got=%d want=401", rec.Code)
	}
}

func TestGateAllowListFromConfig(t *testing.T) {
	// Nothing in the allow-list: even /login is gated.
	r := newRouter(&config.Config{JWTSecret: "s"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/login", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got=%d want=401", rec.Code)
	}
}
