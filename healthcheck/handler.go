package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/zkbridge/walletkit/log"
)

const checkTimeout = 5 * time.Second

// Check reports an error when a dependency of the service is not usable
type Check func(ctx context.Context) error

type Response struct {
	IsHealthy bool              `json:"is_healthy"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheckHandler encapsulates logic that serves the HTTP request for health checks
type HealthCheckHandler struct {
	logger *log.Logger
	checks map[string]Check
}

var _ http.Handler = (*HealthCheckHandler)(nil)

// NewHealthCheckHandler creates a new healthcheck http handler
func NewHealthCheckHandler(logger *log.Logger) *HealthCheckHandler {
	return &HealthCheckHandler{logger: logger, checks: map[string]Check{}}
}

// WithCheck adds a named check run on every request
func (h *HealthCheckHandler) WithCheck(name string, check Check) *HealthCheckHandler {
	h.checks[name] = check
	return h
}

func (h *HealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	res := Response{IsHealthy: true}
	for _, name := range names {
		if res.Checks == nil {
			res.Checks = make(map[string]string, len(names))
		}
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warnf("health check %s failed: %v", name, err)
			res.IsHealthy = false
			res.Checks[name] = err.Error()
			continue
		}
		res.Checks[name] = "ok"
	}

	status := http.StatusOK
	if !res.IsHealthy {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Errorf("failed to write health indicator: %v", err)
	}
}
