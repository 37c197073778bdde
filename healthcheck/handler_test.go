package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/log"
)

func serve(t *testing.T, handler http.Handler) (int, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	return rr.Code, res
}

func TestHealthCheckHandler(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		code, res := serve(t, NewHealthCheckHandler(log.GetDefaultLogger()))
		require.Equal(t, http.StatusOK, code)
		require.True(t, res.IsHealthy)
		require.Empty(t, res.Checks)
	})
	t.Run("healthy", func(t *testing.T) {
		handler := NewHealthCheckHandler(log.GetDefaultLogger()).
			WithCheck("l1", func(context.Context) error { return nil })
		code, res := serve(t, handler)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, map[string]string{"l1": "ok"}, res.Checks)
	})
	t.Run("unhealthy", func(t *testing.T) {
		handler := NewHealthCheckHandler(log.GetDefaultLogger()).
			WithCheck("l1", func(context.Context) error { return nil }).
			WithCheck("l2", func(context.Context) error { return errors.New("connection refused") })
		code, res := serve(t, handler)
		require.Equal(t, http.StatusServiceUnavailable, code)
		require.False(t, res.IsHealthy)
		require.Equal(t, map[string]string{"l1": "ok", "l2": "connection refused"}, res.Checks)
	})
}
