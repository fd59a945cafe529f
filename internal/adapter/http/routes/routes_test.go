package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gestao_contratos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func sqliteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:         "0",
		StoreBackend: config.StoreBackendSQLite,
		Database: config.DatabaseConfig{
			SQLitePath:  filepath.Join(t.TempDir(), "ledger.db"),
			LogLevel:    "silent",
			AutoMigrate: true,
		},
		Ledger: config.LedgerConfig{
			AlertThreshold: decimal.NewFromInt(90),
			AlertCacheTTL:  time.Minute,
			Location:       time.UTC,
		},
	}
}

func TestNewApplication(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		cfg := sqliteConfig(t)
		cfg.StoreBackend = "mongo"
		if _, err := newApplication(cfg); err == nil {
			t.Fatalf("expected an error")
		}
	})

	t.Run("sqlite wiring serves the routes", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		app, err := newApplication(sqliteConfig(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer app.Close()

		r := gin.New()
		getRoutes(r.Group("/v1"), app)

		for path, want := range map[string]int{
			"/v1/ping":                http.StatusOK,
			"/v1/contracts":           http.StatusOK,
			"/v1/alerts":              http.StatusOK,
			"/v1/contracts/nope":      http.StatusNotFound,
			"/v1/orders?numero=12/25": http.StatusBadRequest,
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != want {
				t.Fatalf("GET %s: expected %d, got %d (%s)", path, want, w.Code, w.Body.String())
			}
		}
	})
}
