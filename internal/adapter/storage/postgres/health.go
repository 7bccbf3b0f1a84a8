package postgres

import "context"

// HealthCheck implements ports.HealthChecker for PostgreSQL. Besides
// connectivity it verifies the admin balance singleton exists, since every
// settlement credit depends on it.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks PostgreSQL connectivity and the admin balance row.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var n int
	if err := h.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_balance WHERE id = 1").Scan(&n); err != nil {
		return err
	}
	if n != 1 {
		return errAdminBalanceMissing
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
