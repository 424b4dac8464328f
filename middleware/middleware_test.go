package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchenrent/models"
	"kitchenrent/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(optional bool, roles ...string) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{JWTAuthUserMiddleware(optional)}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		creds := CredentialsFrom(c)
		if creds == nil {
			c.JSON(http.StatusOK, gin.H{"userId": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": creds.UserID, "role": creds.Role})
	})
	r.GET("/me", chain...)
	return r
}

func doRequest(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	valid, err := utils.GenerateToken("user-1", models.RoleConsumer, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	expired, err := utils.GenerateToken("user-1", models.RoleConsumer, -time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	t.Run("required rejects anonymous with login hint", func(t *testing.T) {
		w := doRequest(newAuthRouter(false), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := decode(t, w); body["loginUrl"] != LoginPath {
			t.Errorf("expected login hint, got %v", body)
		}
	})

	t.Run("optional lets anonymous through", func(t *testing.T) {
		w := doRequest(newAuthRouter(true), "")
		if w.Code != http.StatusOK || decode(t, w)["userId"] != "" {
			t.Errorf("expected anonymous 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("valid token sets credentials", func(t *testing.T) {
		w := doRequest(newAuthRouter(false), valid)
		body := decode(t, w)
		if w.Code != http.StatusOK || body["userId"] != "user-1" || body["role"] != models.RoleConsumer {
			t.Errorf("unexpected response %d %v", w.Code, body)
		}
	})

	t.Run("expired token rejected even when optional", func(t *testing.T) {
		if w := doRequest(newAuthRouter(true), expired); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		if w := doRequest(newAuthRouter(false), "not-a-jwt"); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	host, _ := utils.GenerateToken("host-1", models.RoleHost, time.Hour)
	guest, _ := utils.GenerateToken("user-1", models.RoleConsumer, time.Hour)
	r := newAuthRouter(false, models.RoleConsumer)

	if w := doRequest(r, host); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for host, got %d", w.Code)
	}
	if w := doRequest(r, guest); w.Code != http.StatusOK {
		t.Errorf("expected 200 for consumer, got %d", w.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := call("203.0.113.5"); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, code)
		}
	}
	if code := call("203.0.113.5"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", code)
	}
	if code := call("203.0.113.6"); code != http.StatusNoContent {
		t.Errorf("expected other client to pass, got %d", code)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		if _, ok := c.Get("logger"); !ok {
			t.Error("expected logger in context")
		}
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-1" {
		t.Errorf("expected request id echoed, got %q", got)
	}
}
