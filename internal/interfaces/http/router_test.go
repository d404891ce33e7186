package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcms/internal/infrastructure/config"
	"modcms/internal/infrastructure/database"
	"modcms/internal/infrastructure/migration"
	sharedConfig "modcms/internal/shared/config"
	"modcms/internal/shared/logger"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Kind  string `json:"kind"`
		Field string `json:"field"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, opts ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbCfg := sharedConfig.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}
	gdb, err := database.Open(&dbCfg)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := logger.NewNop()
	mgr, err := migration.NewManager(dbCfg.Driver, "en", log)
	require.NoError(t, err)
	require.NoError(t, mgr.Migrate(context.Background(), gdb))
	require.NoError(t, gdb.Exec(`CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		created_by INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)

	cfg := &config.Config{
		Database:     dbCfg,
		Localization: sharedConfig.LocalizationConfig{DefaultLanguage: "en"},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	router, err := NewRouter(gdb, cfg, log)
	require.NoError(t, err)
	t.Cleanup(router.Shutdown)
	router.SetupRoutes()

	return router.GetEngine()
}

func call(t *testing.T, engine *gin.Engine, method, path string, body any, headers ...string) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func decodeID(t *testing.T, raw json.RawMessage) uint {
	t.Helper()
	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &v))
	return v.ID
}

func TestRouter_ModuleLifecycle(t *testing.T) {
	engine := newTestRouter(t)

	status, resp := call(t, engine, http.MethodPost, "/api/admin/categories", map[string]any{"name": "Notes", "code": "notes"})
	require.Equal(t, http.StatusCreated, status)
	categoryID := decodeID(t, resp.Data)

	status, _ = call(t, engine, http.MethodPost, fmt.Sprintf("/api/admin/categories/%d/columns", categoryID),
		map[string]any{"name": "title", "type": "text", "required": true})
	require.Equal(t, http.StatusCreated, status)

	status, resp = call(t, engine, http.MethodPost, "/api/admin/modules",
		map[string]any{"name": "Notes", "code": "notes", "category_id": categoryID})
	require.Equal(t, http.StatusCreated, status)
	moduleID := decodeID(t, resp.Data)

	status, resp = call(t, engine, http.MethodPost, "/api/modules/notes/records", map[string]any{"title": "first"}, "X-User-ID", "42")
	require.Equal(t, http.StatusCreated, status)
	var created map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "first", created["title"])
	assert.EqualValues(t, 42, created["created_by"])

	status, resp = call(t, engine, http.MethodPost, "/api/modules/notes/records", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RequiredFieldMissingError", resp.Error.Kind)
	assert.Equal(t, "title", resp.Error.Field)

	status, resp = call(t, engine, http.MethodGet, "/api/modules/notes/records?filter%5Btitle%5D=first", nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)

	status, resp = call(t, engine, http.MethodGet, fmt.Sprintf("/api/widgets/%d?kind=list&load=true", moduleID), nil)
	require.Equal(t, http.StatusOK, status)
	var w struct {
		Route string `json:"route"`
		Data  struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &w))
	assert.Equal(t, "/modules/notes", w.Route)
	assert.Equal(t, int64(1), w.Data.Total)

	status, resp = call(t, engine, http.MethodGet, fmt.Sprintf("/api/widgets/%d?kind=carousel", moduleID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, string(resp.Data))

	status, _ = call(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestRouter_UnknownModuleAndHealth(t *testing.T) {
	engine := newTestRouter(t)

	status, resp := call(t, engine, http.MethodGet, "/api/modules/ghost/records", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UnknownModuleError", resp.Error.Kind)

	status, _ = call(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)

	status, resp = call(t, engine, http.MethodGet, "/api/translations/MISSING_CODE", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"code":"MISSING_CODE","language":"en","text":""}`, string(resp.Data))
}

func TestRouter_WriteRateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	engine := newTestRouter(t, func(cfg *config.Config) {
		cfg.Redis = sharedConfig.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}
		cfg.Localization.CacheTTLSeconds = 60
		cfg.RateLimit = sharedConfig.RateLimitConfig{WritesPerMinute: 1}
	})

	status, _ := call(t, engine, http.MethodPost, "/api/modules/ghost/records", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, status)

	status, resp := call(t, engine, http.MethodPost, "/api/modules/ghost/records", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusTooManyRequests, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RateLimitExceededError", resp.Error.Kind)

	status, _ = call(t, engine, http.MethodGet, "/api/modules/ghost/records", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
