package inbound

import (
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
)

// HTTPEndpoint exposes the liveness check.
type HTTPEndpoint struct {
	uc uc
}

// Health reports liveness, process uptime and the deployment environment.
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is alive"
// @Router /health [get]
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	out := h.uc.Health(r.Context())

	return HealthResponse{
		Status:      out.Status,
		Timestamp:   out.Now.UTC().Format(isoMillis),
		Uptime:      out.Uptime.Seconds(),
		Environment: out.Environment,
	}, nil
}
