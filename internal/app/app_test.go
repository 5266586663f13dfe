package app

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/trainpulse/config"
)

func invalidPostgres() config.PostgresConfig {
	return config.PostgresConfig{
		Host:     "127.0.0.1",
		Port:     54329, // unlikely mapped
		User:     "x",
		Password: "y",
		DBName:   "z",
		SSLMode:  "disable",
	}
}

// TestInitPostgres_InvalidHost expects ping failure.
func TestInitPostgres_InvalidHost(t *testing.T) {
	db, err := InitPostgres(config.Config{Postgres: invalidPostgres()})
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected error connecting to invalid DB")
	}
}

// TestInitializeApp_DBFailure ensures InitializeApp returns error when DB cannot connect.
func TestInitializeApp_DBFailure(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{Postgres: invalidPostgres()}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with invalid DB config")
	}
}

func withMockPostgres(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	old := postgresOpener
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() {
		postgresOpener = old
		_ = db.Close()
	})
	return mock
}

func withConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestInitializeApp_HappyPath(t *testing.T) {
	withMockPostgres(t)
	withConfig(t, config.Config{
		Targets: config.TargetsConfig{
			Store:               config.TargetStoreSQLite,
			SQLitePath:          ":memory:",
			DefaultMonthlyHours: 120,
			DefaultScore:        80,
		},
		Timezone: "America/Sao_Paulo",
	})

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}
	defer cleanup()

	if w := serve(router, http.MethodGet, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}
	if w := serve(router, http.MethodGet, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d body=%s", w.Code, w.Body.String())
	}

	w := serve(router, http.MethodGet, "/api/v1/targets")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"monthly_hours":120`) {
		t.Fatalf("targets status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestInitializeApp_PostgresTargetStore(t *testing.T) {
	mock := withMockPostgres(t)
	withConfig(t, config.Config{Targets: config.TargetsConfig{Store: config.TargetStorePostgres}})

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	defer cleanup()

	mock.ExpectQuery(`SELECT value FROM settings WHERE key = \$1`).
		WithArgs("monthly_hours_target").
		WillReturnError(sql.ErrConnDone)

	w := serve(router, http.MethodGet, "/readyz")
	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), `"targets"`) {
		t.Fatalf("expected degraded readiness, got %d %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitializeApp_TargetStoreFailure(t *testing.T) {
	withMockPostgres(t)
	withConfig(t, config.Config{Targets: config.TargetsConfig{
		Store:      config.TargetStoreSQLite,
		SQLitePath: t.TempDir() + "/missing/dir/targets.db",
	}})

	if _, _, err := InitializeApp(); err == nil {
		t.Fatalf("expected error when the sqlite file cannot be created")
	}
}

func TestLoadLocation(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{name: "", want: "UTC"},
		{name: "Nowhere/Atlantis", want: "UTC"},
		{name: "America/Sao_Paulo", want: "America/Sao_Paulo"},
	}
	for _, tc := range cases {
		if got := loadLocation(tc.name).String(); got != tc.want {
			t.Fatalf("loadLocation(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStoreName(t *testing.T) {
	if storeName("") != config.TargetStorePostgres || storeName(config.TargetStoreSQLite) != config.TargetStoreSQLite {
		t.Fatalf("unexpected store names")
	}
}
