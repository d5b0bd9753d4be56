package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oficinagl/garantia/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidOrder = errors.New("invalid order")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateOrders validates a slice of orders before persistence.
func validateOrders(orders []model.Order) error {
	if orders == nil {
		return fmt.Errorf("%w: orders", ErrNilParameter)
	}
	if len(orders) == 0 {
		return fmt.Errorf("%w: orders", ErrEmptySlice)
	}
	for i := range orders {
		if err := validateOrder(&orders[i]); err != nil {
			return fmt.Errorf("order at index %d: %w", i, err)
		}
	}
	return nil
}

// validateOrder validates a single order. The upsert key must be present;
// mes_servico must sit in 1..12 when set; confidence must be one of the
// discrete levels the classifier emits.
func validateOrder(o *model.Order) error {
	if strings.TrimSpace(o.NumeroOrdem) == "" {
		return fmt.Errorf("%w: numero_ordem is required", ErrInvalidOrder)
	}
	if o.MesServico != nil && (*o.MesServico < 1 || *o.MesServico > 12) {
		return fmt.Errorf("%w: mes_servico %d out of range", ErrInvalidOrder, *o.MesServico)
	}
	switch o.ClassificacaoConfianca {
	case model.ConfidenceNone, model.ConfidenceGroup, model.ConfidenceSubgroup, model.ConfidenceFullMatch:
	default:
		return fmt.Errorf("%w: classificacao_confianca %v is not a known level", ErrInvalidOrder, o.ClassificacaoConfianca)
	}
	return nil
}
