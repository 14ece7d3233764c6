package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reminders", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusAccepted) })
	return r
}

func post(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reminders", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)}
	r := newLimitedRouter(NewRateLimiter(2, time.Minute, clock))

	for i := 0; i < 2; i++ {
		if code := post(r); code != http.StatusAccepted {
			t.Fatalf("request %d: status %d", i+1, code)
		}
	}
	if code := post(r); code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", code)
	}

	clock.now = clock.now.Add(time.Minute)
	if code := post(r); code != http.StatusAccepted {
		t.Errorf("after window: status %d", code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	clock := &stepClock{now: time.Now()}
	r := newLimitedRouter(NewRateLimiter(0, time.Minute, clock))

	for i := 0; i < 10; i++ {
		if code := post(r); code != http.StatusAccepted {
			t.Fatalf("request %d: status %d", i+1, code)
		}
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(1, time.Minute, clock)
	rl.allow("a")
	rl.allow("b")

	clock.now = clock.now.Add(2 * time.Minute)
	rl.Cleanup()

	if len(rl.windows) != 0 {
		t.Errorf("expected expired windows to be dropped, %d remain", len(rl.windows))
	}
}
