//go:build integration
// +build integration

package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/trainpulse/config"
	"github.com/guttosm/trainpulse/internal/app"
	"github.com/guttosm/trainpulse/internal/domain/models"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "trainpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=trainpulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/trainpulse?sslmode=disable", h, mp.Port())
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := app.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	modality, competitor, rival string
}

func seedForE2E(t *testing.T, db *sql.DB) fixture {
	t.Helper()
	var f fixture
	must := func(err error) {
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	must(db.QueryRow(`INSERT INTO modalities (name) VALUES ('Eletrônica') RETURNING id`).Scan(&f.modality))
	must(db.QueryRow(`INSERT INTO competitors (name, modality_id) VALUES ('Ana Souza', $1) RETURNING id`, f.modality).Scan(&f.competitor))
	must(db.QueryRow(`INSERT INTO competitors (name, modality_id) VALUES ('Bruno Lima', $1) RETURNING id`, f.modality).Scan(&f.rival))
	_, err := db.Exec(`INSERT INTO training_sessions (competitor_id, modality_id, training_date, hours, status) VALUES
		($1, $2, '2024-02-10', 1.5, 'approved'),
		($1, $2, '2024-02-10', 2, 'approved'),
		($1, $2, '2024-02-11', 4, 'pending'),
		($3, $2, '2024-02-12', 8, 'approved')`, f.competitor, f.modality, f.rival)
	must(err)

	var exam string
	must(db.QueryRow(`INSERT INTO exams (name, exam_date) VALUES ('Simulado 1', '2024-01-10') RETURNING id`).Scan(&exam))
	_, err = db.Exec(`INSERT INTO grades (exam_id, competitor_id, score) VALUES ($1, $2, 70), ($1, $3, 90)`, exam, f.competitor, f.rival)
	must(err)
	return f
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPI_E2E_Dashboard(t *testing.T) {
	dsn, host, port, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()
	f := seedForE2E(t, db)

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	p, _ := nat.ParsePort(port.Port())
	config.AppConfig = config.Config{
		Postgres: config.PostgresConfig{
			Host: host, Port: p, User: "postgres", Password: "postgres", DBName: "trainpulse", SSLMode: "disable",
		},
		Targets:  config.TargetsConfig{Store: config.TargetStorePostgres, DefaultMonthlyHours: 120, DefaultScore: 80},
		Timezone: "UTC",
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	w := call(t, router, http.MethodGet, "/api/v1/hours?competitor_id="+f.competitor+"&filter=day:2024-02", "")
	if w.Code != http.StatusOK {
		t.Fatalf("hours status=%d body=%s", w.Code, w.Body.String())
	}
	var series models.HoursSeries
	if err := json.Unmarshal(w.Body.Bytes(), &series); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(series.Points) != 29 || series.Total != 3.5 || series.Points[9].Hours != 3.5 || series.Target.Value != 5.5 {
		t.Fatalf("unexpected series: total=%v points=%d target=%+v", series.Total, len(series.Points), series.Target)
	}

	w = call(t, router, http.MethodPut, "/api/v1/targets", `{"monthly_hours":90,"score":75,"competitor_id":"`+f.competitor+`","due_date":"2024-12-31"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("save targets status=%d body=%s", w.Code, w.Body.String())
	}

	w = call(t, router, http.MethodGet, "/api/v1/progress/competitors?modality_id="+f.modality, "")
	var summary []models.ProgressPoint
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil || len(summary) != 2 {
		t.Fatalf("summary: %v %s", err, w.Body.String())
	}
	if summary[0].Name != "Ana" || summary[0].Atual != 70 || summary[0].Meta != 75 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	w = call(t, router, http.MethodGet, "/api/v1/goals?competitor_id="+f.competitor, "")
	var goals models.GoalList
	if err := json.Unmarshal(w.Body.Bytes(), &goals); err != nil || goals.Total != 2 {
		t.Fatalf("goals: %v %s", err, w.Body.String())
	}

	w = call(t, router, http.MethodPatch, "/api/v1/goals/"+goals.Goals[0].ID+"/progress", `{"current_value":1000}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"completed"`) {
		t.Fatalf("progress status=%d body=%s", w.Code, w.Body.String())
	}

	w = call(t, router, http.MethodPost, "/api/v1/goals", `{"title":"x","competitor_id":"00000000-0000-0000-0000-000000000000"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown competitor, got %d", w.Code)
	}

	if w := call(t, router, http.MethodGet, "/readyz", ""); w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d body=%s", w.Code, w.Body.String())
	}
}
