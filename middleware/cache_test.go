package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPageCacheKey(t *testing.T) {
	got := PageCacheKey("/api/v1/posts?page=2")
	want := "pagecache:/api/v1/posts?page=2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// redis 不可用时中间件必须直接放行
func TestPageCache_NilClientPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hits := 0
	r.GET("/posts", PageCache(nil, PageTTL), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if hits != 2 {
		t.Fatalf("expected handler hit twice, got %d", hits)
	}
}
