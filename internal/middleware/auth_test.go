package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users[id], nil
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := s.GetByEmail(ctx, email)
	return u != nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, u *domain.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, hash string, at time.Time) error {
	if u, ok := s.users[id]; ok {
		u.PasswordHash = hash
		u.PasswordChangedAt = &at
	}
	return nil
}
func (s *stubUserRepo) Delete(ctx context.Context, id string) error { delete(s.users, id); return nil }
func (s *stubUserRepo) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) ListRecent(ctx context.Context, limit int) ([]*domain.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Count(ctx context.Context) (int64, error) { return int64(len(s.users)), nil }

// signToken builds an HS256 token with explicit iat/exp, for stale and
// expired token cases the real issuer cannot produce
func signToken(t *testing.T, secret, userID string, issuedAt, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func setupAuthRouter(tokens *service.TokenService, users *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens, users), func(c *gin.Context) {
		user, _ := Principal(c)
		response.Success(c, gin.H{"user_id": user.ID})
	})
	r.GET("/admin", RequireAuth(tokens, users), RequireAdmin(), func(c *gin.Context) {
		response.Success(c, gin.H{"ok": true})
	})
	// Misconfigured route: gate without authentication in front
	r.GET("/gate-only", RequireAdmin(), func(c *gin.Context) {
		response.Success(c, gin.H{"ok": true})
	})
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Error == nil {
		return ""
	}
	return resp.Error.Code
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, "frooxi")
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{ID: "user-1", Email: "a@b.c", IsActive: true})
	router := setupAuthRouter(tokens, users)

	valid, _ := tokens.Issue("user-1")
	orphan, _ := tokens.Issue("no-such-user")
	expired := signToken(t, "test-secret", "user-1",
		time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"missing token", "", http.StatusUnauthorized, "NO_TOKEN"},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"deleted user", "Bearer " + orphan, http.StatusUnauthorized, "USER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
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

func TestRequireAuth_CookieFallback(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, "frooxi")
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{ID: "user-1", IsActive: true})
	router := setupAuthRouter(tokens, users)

	token, _ := tokens.Issue("user-1")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (cookie fallback)", w.Code)
	}
}

func TestRequireAuth_PasswordChanged(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, "frooxi")
	users := newStubUserRepo()
	changed := time.Now()
	users.Create(context.Background(), &domain.User{
		ID:                "user-1",
		IsActive:          true,
		PasswordChangedAt: &changed,
	})
	router := setupAuthRouter(tokens, users)

	// Token issued well before the password change, still unexpired
	stale := signToken(t, "test-secret", "user-1",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+stale)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != "PASSWORD_CHANGED" {
		t.Errorf("error code = %q, want PASSWORD_CHANGED", code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, "frooxi")
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{ID: "user-1", Role: domain.RoleUser, IsActive: true})
	users.Create(context.Background(), &domain.User{ID: "admin-1", Role: domain.RoleAdmin, IsAdmin: true, IsActive: true})
	router := setupAuthRouter(tokens, users)

	userToken, _ := tokens.Issue("user-1")
	adminToken, _ := tokens.Issue("admin-1")

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if code := errorCode(t, w.Body.Bytes()); code != "UNAUTHORIZED_ROLE" {
			t.Errorf("error code = %q, want UNAUTHORIZED_ROLE", code)
		}
	})

	t.Run("fails closed without principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/gate-only", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401 (gate must fail closed)", w.Code)
		}
		if code := errorCode(t, w.Body.Bytes()); code != "AUTH_REQUIRED" {
			t.Errorf("error code = %q, want AUTH_REQUIRED", code)
		}
	})
}
