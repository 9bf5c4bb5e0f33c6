package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uint, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
	}
	claims.User.ID = userID
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func newTestRouter() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var seenUserID uint
	r := gin.New()
	r.GET("/protected", Middleware(testSecret), func(ctx *gin.Context) {
		seenUserID = UserID(ctx)
		ctx.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID uint
	}{
		{"missing header", "", http.StatusUnauthorized, 0},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized, 0},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, 0},
		{"valid token", "Bearer " + signToken(t, testSecret, 42, time.Now().Add(time.Hour)), http.StatusOK, 42},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", 42, time.Now().Add(time.Hour)), http.StatusUnauthorized, 0},
		{"expired token", "Bearer " + signToken(t, testSecret, 42, time.Now().Add(-time.Hour)), http.StatusUnauthorized, 0},
		{"zero user id", "Bearer " + signToken(t, testSecret, 0, time.Now().Add(time.Hour)), http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seenUserID := newTestRouter()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if *seenUserID != tt.wantUserID {
				t.Errorf("user id = %d, want %d", *seenUserID, tt.wantUserID)
			}
		})
	}
}
