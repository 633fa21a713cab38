// Package persistence holds store-agnostic repository decorators.
package persistence

import (
	"context"
	"time"

	"user-service/application/ports"
	"user-service/domain/core/entities"
	"user-service/pkg/observability"

	"github.com/google/uuid"
)

// MetricsUserRepository is a decorator that records the count and latency of
// every store operation without changing its behavior.
type MetricsUserRepository struct {
	inner     ports.UserRepository
	collector *observability.Collector
	table     string
}

var _ ports.UserRepository = (*MetricsUserRepository)(nil)

// NewMetricsUserRepository wraps inner with Prometheus instrumentation
func NewMetricsUserRepository(inner ports.UserRepository, collector *observability.Collector, table string) *MetricsUserRepository {
	return &MetricsUserRepository{
		inner:     inner,
		collector: collector,
		table:     table,
	}
}

func (r *MetricsUserRepository) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.collector.DBOperations.WithLabelValues(operation, r.table, status).Inc()
	r.collector.DBDuration.WithLabelValues(operation, r.table).Observe(time.Since(start).Seconds())
}

func (r *MetricsUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, bool, error) {
	start := time.Now()
	user, found, err := r.inner.FindByID(ctx, id)
	r.observe("find_by_id", start, err)
	return user, found, err
}

func (r *MetricsUserRepository) Save(ctx context.Context, user *entities.User) error {
	start := time.Now()
	err := r.inner.Save(ctx, user)
	r.observe("save", start, err)
	if err == nil {
		r.collector.UsersCreated.Inc()
	}
	return err
}

func (r *MetricsUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	start := time.Now()
	updated, err := r.inner.Update(ctx, user)
	r.observe("update", start, err)
	return updated, err
}

func (r *MetricsUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := r.inner.Delete(ctx, id)
	r.observe("delete", start, err)
	if err == nil {
		r.collector.UsersDeleted.Inc()
	}
	return err
}
