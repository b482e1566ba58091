package services

import (
	"context"
	"time"

	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/types"
	"go.uber.org/zap"
)

// Pinger is a component whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	components map[string]Pinger
	version    string
	timeout    time.Duration
	startTime  time.Time
	log        *zap.SugaredLogger
}

// NewHealthService probes each named component on every check. A nil
// Pinger is skipped.
func NewHealthService(components map[string]Pinger, version string) *HealthService {
	checked := make(map[string]Pinger, len(components))
	for name, p := range components {
		if p != nil {
			checked[name] = p
		}
	}
	return &HealthService{
		components: checked,
		version:    version,
		timeout:    3 * time.Second,
		startTime:  time.Now(),
		log:        logger.GetLogger().Named("health"),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent, len(h.components))
	overallStatus := types.HealthStatusUp

	for name, p := range h.components {
		status := h.check(ctx, name, p)
		components[name] = status
		if status.Status == types.HealthStatusDown {
			overallStatus = types.HealthStatusDown
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) check(ctx context.Context, name string, p Pinger) types.HealthComponent {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		h.log.Errorw("Health check failed", "component", name, "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: name + " unreachable",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
