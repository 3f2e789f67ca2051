package health

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/godamri/helix-db/database"
	"github.com/stretchr/testify/assert"
)

type pingClient struct {
	err error
}

func (c pingClient) PingContext(ctx context.Context) error { return c.err }
func (c pingClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}
func (c pingClient) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}
func (c pingClient) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}
func (c pingClient) Close() error { return nil }

func probe(t *testing.T, svc *database.Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	NewChecker(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		svc    *database.Service
		status int
		body   string
	}{
		{"up", database.NewService(pingClient{}), http.StatusOK, `{"status":"UP","db":"UP"}`},
		{"ping fails", database.NewService(pingClient{err: errors.New("down")}), http.StatusServiceUnavailable, `{"status":"DOWN","db":"DOWN"}`},
		{"no client", database.NewService(nil), http.StatusServiceUnavailable, `{"status":"DOWN","db":"DOWN"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := probe(t, tt.svc, "/ready")
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestLiveness(t *testing.T) {
	w := probe(t, nil, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
