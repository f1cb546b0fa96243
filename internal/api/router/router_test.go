package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/config"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/handler"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/cache"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTotales struct{}

func (stubTotales) Get(context.Context) (*dto.TotalesUsuariosResponse, error) {
	return &dto.TotalesUsuariosResponse{Administradores: 1, Total: 1}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			MaxBodyBytes: 1 << 20,
			RateLimit:    config.RateLimitConfig{Limit: 2, Window: time.Minute},
		},
	}
}

func setup(t *testing.T) (*gin.Engine, *jwt.Manager, *cache.Blacklist) {
	t.Helper()
	mgr := jwt.NewManager(&config.AuthConfig{JWTSecret: "router-test-secret-0123456789", AccessTokenTTL: time.Hour})
	blacklist := cache.NewBlacklist(time.Minute)

	// handlers without services only serve requests rejected by middleware
	h := &handler.Handler{
		Auth:          handler.NewAuthHandler(nil, zap.NewNop()),
		Materia:       handler.NewMateriaHandler(nil, zap.NewNop()),
		Administrador: handler.NewAdministradorHandler(nil, zap.NewNop()),
		Maestro:       handler.NewMaestroHandler(nil, zap.NewNop()),
		Alumno:        handler.NewAlumnoHandler(nil, zap.NewNop()),
		Totales:       handler.NewTotalesHandler(stubTotales{}, zap.NewNop()),
		Export:        handler.NewExportHandler(nil, zap.NewNop()),
	}
	r := Setup(testConfig(), h, mgr, blacklist, cache.NewRateLimiter(time.Minute), zap.NewNop())
	return r, mgr, blacklist
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _, _ := setup(t)

	w := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _, _ := setup(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/materias/all"},
		{http.MethodGet, "/materias?id=1"},
		{http.MethodPut, "/materias"},
		{http.MethodDelete, "/materias/1"},
		{http.MethodDelete, "/materias"},
		{http.MethodGet, "/materias/export"},
		{http.MethodGet, "/materias/1/calendario"},
		{http.MethodGet, "/totales-usuarios"},
		{http.MethodPost, "/logout"},
		{http.MethodGet, "/administradores/all"},
		{http.MethodPost, "/maestros"},
		{http.MethodDelete, "/alumnos/3"},
	}
	for _, rt := range routes {
		w := do(r, rt.method, rt.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestProfileWritesRequireAdministrador(t *testing.T) {
	r, mgr, _ := setup(t)
	token, err := mgr.GenerateAccessToken(5, "maestro")
	require.NoError(t, err)

	for _, path := range []string{"/administradores", "/maestros", "/alumnos"} {
		assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, path, token, "{}").Code, path)
		assert.Equal(t, http.StatusForbidden, do(r, http.MethodPut, path, token, "{}").Code, path)
		assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, path+"/1", token, "").Code, path)
	}
}

func TestSessionAndRevocation(t *testing.T) {
	r, mgr, blacklist := setup(t)
	token, err := mgr.GenerateAccessToken(5, "alumno")
	require.NoError(t, err)
	claims, err := mgr.ParseToken(token)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/totales-usuarios", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"administradores":1,"maestros":0,"alumnos":0,"total":1}`, w.Body.String())

	require.NoError(t, blacklist.BlacklistToken(context.Background(), claims.ID, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/totales-usuarios", token, "").Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	r, _, _ := setup(t)

	// malformed bodies are rejected by binding before any service call
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/login", "", "{}").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/login", "", "{}").Code)
}
