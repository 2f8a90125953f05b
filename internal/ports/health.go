package ports

import "context"

// HealthChecker reports the health of one dependency the view-model
// pipelines rely on, such as the connection pool or the scope manager's
// circuit breaker.
type HealthChecker interface {
	// Name is the key the readiness response reports the check under.
	Name() string

	// HealthCheck returns nil when the dependency can serve a pipeline.
	// The registry bounds ctx with a per-check deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
