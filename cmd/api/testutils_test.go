package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/jsonlog"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	db, sqlDB, err := data.Open(data.Config{
		Driver:       data.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "movies.db") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		MaxIdleTime:  time.Minute,
		AutoMigrate:  true,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	var cfg config
	cfg.Env = "development"
	cfg.CORS.TrustedOrigins = []string{"http://localhost:9000"}

	return &application{
		config: cfg,
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		models: data.NewModels(db),
	}
}

// do sends one request through h. An empty body sends no body at all.
func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

type idResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
