package middleware

import (
	"bytes"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// inflightGuard tracks keys currently being processed so a rapid
// double-tap on Place Order gets rejected instead of racing the first
// request to the database.
type inflightGuard struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{keys: make(map[string]bool)}
}

// acquire marks a key as in flight. Returns false if it already is.
func (g *inflightGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.keys[key] {
		return false
	}
	g.keys[key] = true
	return true
}

func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.keys, key)
}

// Idempotency prevents duplicate submissions. A replayed key returns
// the original cached response; a key still being processed gets 409.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	guard := newInflightGuard()

	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		cashierIDValue, exists := c.Get("cashier_id")
		if !exists {
			c.Next()
			return
		}
		cashierID, ok := cashierIDValue.(int64)
		if !ok {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), idempotencyKey, cashierID)
		if err != nil {
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		guardKey := strconv.FormatInt(cashierID, 10) + ":" + idempotencyKey
		if !guard.acquire(guardKey) {
			c.JSON(409, gin.H{
				"success": false,
				"message": "A request with this idempotency key is already in progress",
			})
			c.Abort()
			return
		}
		defer guard.release(guardKey)

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only successful responses are worth replaying
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			ikey := &entity.IdempotencyKey{
				Key:          idempotencyKey,
				CashierID:    cashierID,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: c.Writer.Status(),
				ResponseBody: blw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			}

			_ = config.Repo.Create(c.Request.Context(), ikey)
		}
	}
}
