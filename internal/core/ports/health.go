package ports

import "context"

// HealthChecker probes one external dependency (e.g. the upstream image
// host). A non-nil error means unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
