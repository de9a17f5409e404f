package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(NewRequestIDMiddleware(newBufferLogger(&buf)).Process)

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("reuses a well formed client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc_1.2")

		rec := serve(e, req)

		assert.Equal(t, "req-abc_1.2", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-abc_1.2", seen)
		assert.Contains(t, buf.String(), "request_id=req-abc_1.2")
	})

	t.Run("replaces malformed client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id with spaces")

		rec := serve(e, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, "bad id with spaces", got)
		assert.Len(t, got, 36)
		assert.Equal(t, got, seen)
	})

	t.Run("mints an id when missing", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(buf *bytes.Buffer, debug bool) *echo.Echo {
		logger := newBufferLogger(buf)
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewRequestIDMiddleware(logger).Process)
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/owner", func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &service.Identity{UID: "uid-9"})

			return domainerrors.ErrForbidden
		})
		e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

		return e
	}

	t.Run("quiet for successes outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		serve(newServer(&buf, false), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("logs successes in debug", func(t *testing.T) {
		var buf bytes.Buffer
		serve(newServer(&buf, true), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Contains(t, buf.String(), "status=200")
	})

	t.Run("never logs health probes", func(t *testing.T) {
		var buf bytes.Buffer
		serve(newServer(&buf, true), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("failed request carries caller and error status", func(t *testing.T) {
		var buf bytes.Buffer
		serve(newServer(&buf, false), httptest.NewRequest(http.MethodGet, "/owner", nil))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "status=403")
		assert.Contains(t, out, "caller_uid=uid-9")
	})

	t.Run("unknown errors log as server errors", func(t *testing.T) {
		var buf bytes.Buffer
		serve(newServer(&buf, false), httptest.NewRequest(http.MethodGet, "/boom", nil))

		out := buf.String()
		assert.True(t, strings.Contains(out, "level=ERROR"), out)
		assert.Contains(t, out, "status=500")
	})
}
