package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intro_web/internal/repository"
	"intro_web/internal/service"
	"intro_web/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupIntroRouter() *gin.Engine {
	r := NewEngine(zap.NewNop(), prometheus.NewRegistry())
	repos := repository.NewRepositories(repository.DefaultItems())
	SetupRoutes(r, service.NewServices(repos))
	return r
}

func setupImageRouter(dir string) *gin.Engine {
	r := NewEngine(zap.NewNop(), prometheus.NewRegistry())
	SetupImageRoutes(r, service.NewImageServices(storage.NewImageDir(dir), zap.NewNop()))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type validationBody struct {
	Detail []struct {
		Loc  []string `json:"loc"`
		Msg  string   `json:"msg"`
		Type string   `json:"type"`
	} `json:"detail"`
}
