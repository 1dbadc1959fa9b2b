package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
)

func setupCSRFRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFGuard(false))
	r.GET("/page", func(c *gin.Context) { response.Success(c, gin.H{"ok": true}) })
	r.POST("/mutate", func(c *gin.Context) { response.Success(c, gin.H{"ok": true}) })
	return r
}

func TestCSRFGuard_IssuesCookieOnSafeRequest(t *testing.T) {
	router := setupCSRFRouter()

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CSRFCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no CSRF cookie issued on safe request")
	}
	if len(cookie.Value) < 64 {
		t.Errorf("token %q shorter than 256 bits of hex", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("cookie should be http-only")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Error("cookie should be same-site strict")
	}
	if cookie.MaxAge != csrfMaxAge {
		t.Errorf("cookie MaxAge = %d, want %d", cookie.MaxAge, csrfMaxAge)
	}
}

func TestCSRFGuard_DoesNotReissueExistingCookie(t *testing.T) {
	router := setupCSRFRouter()

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookie, Value: "existing"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == CSRFCookie {
			t.Error("cookie reissued despite one being present")
		}
	}
}

func TestCSRFGuard_MutatingRequests(t *testing.T) {
	router := setupCSRFRouter()
	token := "a-csrf-token-value"

	tests := []struct {
		name       string
		cookie     string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"matching pair", token, token, http.StatusOK, ""},
		{"no cookie", "", token, http.StatusForbidden, "CSRF_MISSING"},
		{"no header", token, "", http.StatusForbidden, "CSRF_MISMATCH"},
		{"mismatch", token, "different-value", http.StatusForbidden, "CSRF_MISMATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CSRFCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(CSRFHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := errorCode(t, w.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %q, want %q", code, tt.wantCode)
				}
			}
		})
	}
}
