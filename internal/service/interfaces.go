// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/oficinagl/garantia/internal/model"
)

// Storage defines the contract for the persistence collaborator. The core
// never owns long-term storage; it hands over canonical orders keyed by
// numero_ordem and reads them back for reconciliation.
type Storage interface {
	// Order operations
	UpsertOrders(ctx context.Context, orders []model.Order) error
	GetOrder(ctx context.Context, numeroOrdem string) (*model.Order, error)
	CountOrders(ctx context.Context) (int, error)

	// Incompleteness queries used by the reconciliation engine. Both are
	// re-issued each page rather than paginated by offset, so records fixed
	// in one page drop out of the next.
	FindMissingServiceDates(ctx context.Context, limit int) ([]model.Order, error)
	FindUnclassified(ctx context.Context, limit int) ([]model.Order, error)

	// Targeted updates issued by the reconciliation engine.
	UpdateServiceDate(ctx context.Context, numeroOrdem string, dia, mes, ano int) error
	UpdateClassification(ctx context.Context, numeroOrdem string, c model.Classification) error

	// Reporting aggregates
	CountByDefectGroup(ctx context.Context) (map[string]int, error)
	CountByMechanic(ctx context.Context) (map[string]int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
