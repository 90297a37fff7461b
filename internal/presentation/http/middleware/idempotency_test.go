package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/entity"
)

type MockIdempotencyRepository struct {
	mock.Mock
}

func (m *MockIdempotencyRepository) GetByKey(ctx context.Context, key string, cashierID int64) (*entity.IdempotencyKey, error) {
	args := m.Called(ctx, key, cashierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.IdempotencyKey), args.Error(1)
}

func (m *MockIdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	args := m.Called(ctx, ikey)
	return args.Error(0)
}

func (m *MockIdempotencyRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func idempotencyRouter(repo *MockIdempotencyRepository, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		c.Set("cashier_id", int64(1))
		c.Next()
	}, Idempotency(IdempotencyConfig{Repo: repo}), handler)
	return r
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	repo := new(MockIdempotencyRepository)
	repo.On("GetByKey", mock.Anything, "abc-123", int64(1)).Return(&entity.IdempotencyKey{
		Key:          "abc-123",
		CashierID:    1,
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)

	var handlerCalls int32
	r := idempotencyRouter(repo, func(c *gin.Context) {
		atomic.AddInt32(&handlerCalls, 1)
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Zero(t, atomic.LoadInt32(&handlerCalls))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdempotency_StoresSuccessfulResponse(t *testing.T) {
	repo := new(MockIdempotencyRepository)
	repo.On("GetByKey", mock.Anything, "abc-456", int64(1)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.IdempotencyKey")).Return(nil)

	r := idempotencyRouter(repo, func(c *gin.Context) {
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-456")
	r.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)

	stored := repo.Calls[1].Arguments.Get(1).(*entity.IdempotencyKey)
	assert.Equal(t, "abc-456", stored.Key)
	assert.Equal(t, int64(1), stored.CashierID)
	assert.Equal(t, 201, stored.ResponseCode)
	assert.JSONEq(t, `{"success":true}`, stored.ResponseBody)
}

func TestIdempotency_DoesNotCacheFailures(t *testing.T) {
	repo := new(MockIdempotencyRepository)
	repo.On("GetByKey", mock.Anything, "abc-789", int64(1)).Return(nil, nil)

	r := idempotencyRouter(repo, func(c *gin.Context) {
		c.JSON(422, gin.H{"success": false})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-789")
	r.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdempotency_ConcurrentDuplicateGets409(t *testing.T) {
	repo := new(MockIdempotencyRepository)
	repo.On("GetByKey", mock.Anything, "dup-1", int64(1)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.IdempotencyKey")).Return(nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	r := idempotencyRouter(repo, func(c *gin.Context) {
		close(entered)
		<-release
		c.JSON(201, gin.H{"success": true})
	})

	var wg sync.WaitGroup
	wg.Add(1)
	first := httptest.NewRecorder()
	go func() {
		defer wg.Done()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set(IdempotencyKeyHeader, "dup-1")
		r.ServeHTTP(first, req)
	}()
	<-entered

	// The duplicate arrives while the first is still in flight
	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(IdempotencyKeyHeader, "dup-1")
	r.ServeHTTP(second, req)
	assert.Equal(t, 409, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, 201, first.Code)
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	repo := new(MockIdempotencyRepository)

	r := idempotencyRouter(repo, func(c *gin.Context) {
		c.JSON(201, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	repo.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything, mock.Anything)
}
