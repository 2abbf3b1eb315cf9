package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/domain"
)

func roleRouter(role string, mw gin.HandlerFunc) (*httptest.ResponseRecorder, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	if role != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userRole", role)
			c.Next()
		})
	}
	r.Use(mw)
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return w, r
}

func TestRequireAdmin_Allowed(t *testing.T) {
	w, r := roleRouter(domain.RoleAdmin, RequireAdmin())

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireAdmin_Denied(t *testing.T) {
	w, r := roleRouter(domain.RoleStudent, RequireAdmin())

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRequireRole_MatchingRole(t *testing.T) {
	w, r := roleRouter(domain.RoleTeacher, RequireRole(domain.RoleTeacher, domain.RoleAccountant))

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireRole_AdminAlwaysPasses(t *testing.T) {
	w, r := roleRouter(domain.RoleAdmin, RequireRole(domain.RoleAccountant))

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireRole_NoRole(t *testing.T) {
	w, r := roleRouter("", RequireRole(domain.RoleTeacher))

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
