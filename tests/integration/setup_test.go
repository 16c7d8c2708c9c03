package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tipjar/internal/handlers"
	"tipjar/internal/logger"
	"tipjar/internal/middleware"
	"tipjar/internal/services"
	"tipjar/internal/store"
	"tipjar/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  store.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp wires the production middleware, handler, and a file-backed store
// rooted in a per-test directory, mirroring cmd/api.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	tipPageService := services.NewTipPageService(fileStore)
	tipPageHandler := handlers.NewTipPageHandler(tipPageService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.POST("/api/create-tip-page", tipPageHandler.Create)
	router.GET("/api/tip/*token", tipPageHandler.Get)

	return &testApp{Store: fileStore, Router: router}
}

func (app *testApp) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
