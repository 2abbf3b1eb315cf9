package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/pkg/jwt"
)

func authRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(manager))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetUserRole(c),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	token, err := manager.GenerateToken("u-1", "John Doe", "teacher")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter(manager).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	authRouter(manager).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Token abc")
	authRouter(manager).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", 15*time.Minute, time.Hour)
	token, _ := other.GenerateToken("u-1", "John Doe", "teacher")

	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter(manager).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
