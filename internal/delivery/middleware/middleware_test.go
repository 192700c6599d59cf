package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated when absent", incoming: "", reuse: false},
		{name: "client id reused", incoming: "abc-123", reuse: true},
		{name: "id with spaces replaced", incoming: "abc 123", reuse: false},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, echoed)
			assert.Equal(t, echoed, fromCtx)
			assert.Equal(t, echoed, deliverycontext.GetRequestID(c))
			if tt.reuse {
				assert.Equal(t, tt.incoming, echoed)
			} else {
				assert.NotEqual(t, tt.incoming, echoed)
			}
		})
	}
}

func serveLogged(t *testing.T, debug bool, path string, handler echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET(path, handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return buf.String()
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	fail := func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") }

	t.Run("success is quiet outside debug", func(t *testing.T) {
		assert.Empty(t, serveLogged(t, false, "/posts", ok))
	})

	t.Run("success is logged in debug", func(t *testing.T) {
		out := serveLogged(t, true, "/posts", ok)
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, "request_id=")
	})

	t.Run("health is never logged on success", func(t *testing.T) {
		assert.Empty(t, serveLogged(t, true, "/health", ok))
	})

	t.Run("failure is logged with the rendered status", func(t *testing.T) {
		out := serveLogged(t, false, "/posts", fail)
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "status=502")
	})
}
