package middleware

import (
	"bytes"
	"net/http"
	"time"

	"Yatube/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PageTTL 列表页缓存时长，窗口内允许读到旧数据
const PageTTL = 20 * time.Second

func PageCacheKey(url string) string {
	return "pagecache:" + url
}

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// PageCache 按完整 URL 缓存 GET 响应体。
// 请求带 Cache-Control: no-cache 时跳过缓存，读写都绕开。
func PageCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || rdb == nil {
			c.Next()
			return
		}
		if c.GetHeader("Cache-Control") == "no-cache" {
			c.Next()
			return
		}

		key := PageCacheKey(c.Request.URL.RequestURI())
		if cached, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Header("X-Page-Cache", "hit")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := rdb.Set(c.Request.Context(), key, w.body.Bytes(), ttl).Err(); err != nil {
			log.L.Warn("page cache set", zap.String("key", key), zap.Error(err))
		}
	}
}
