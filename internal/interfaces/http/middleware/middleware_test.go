package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcms/internal/domain/record"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(handlers...)
	return engine
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	engine := newEngine(RequestID())
	var seen string
	engine.GET("/", func(c *gin.Context) { seen = c.GetString(constants.ContextKeyRequestID) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(constants.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
}

func TestActor_AttachesUserToContext(t *testing.T) {
	engine := newEngine(Actor(logger.NewNop()))
	var actor uint
	var ok bool
	engine.GET("/", func(c *gin.Context) { actor, ok = record.ActorFrom(c.Request.Context()) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXUserID, "42")
	engine.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, ok)
	assert.Equal(t, uint(42), actor)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXUserID, "not-a-number")
	engine.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestRecovery_ReturnsInvariantError(t *testing.T) {
	engine := newEngine(Recovery(logger.NewNop()))
	engine.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "InternalInvariantViolation")
}

func TestCORS_PreflightAndOrigins(t *testing.T) {
	engine := newEngine(CORS([]string{"https://site.test"}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://site.test")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://site.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
