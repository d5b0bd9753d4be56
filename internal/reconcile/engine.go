// Package reconcile re-scans persisted orders to backfill derivable fields:
// service dates from data_ordem, and taxonomy assignments from raw defect
// text. Runs are idempotent; a second pass over an already-reconciled store
// corrects nothing.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/oficinagl/garantia/internal/classify"
	"github.com/oficinagl/garantia/internal/common"
	"github.com/oficinagl/garantia/internal/model"
)

// DefaultPageSize bounds how many incomplete records one fetch returns.
const DefaultPageSize = 1000

var errNoOrderDate = errors.New("no data_ordem to derive service date from")

// DefaultPagePause is the delay between pages, keeping request rate against
// the store bounded.
const DefaultPagePause = 100 * time.Millisecond

// Store is the slice of the persistence collaborator the engine needs:
// paged incompleteness queries and targeted per-record updates.
type Store interface {
	FindMissingServiceDates(ctx context.Context, limit int) ([]model.Order, error)
	FindUnclassified(ctx context.Context, limit int) ([]model.Order, error)
	UpdateServiceDate(ctx context.Context, numeroOrdem string, dia, mes, ano int) error
	UpdateClassification(ctx context.Context, numeroOrdem string, c model.Classification) error
}

// Config tunes a reconciliation run.
type Config struct {
	PageSize     int
	PagePause    time.Duration
	ShowProgress bool
}

// Summary reports what one run did. Failures is keyed by order number so a
// single bad record can be chased afterwards.
type Summary struct {
	Failures  map[string]string
	RunID     string
	Processed int
	Corrected int
	Errors    int
}

func newSummary() Summary {
	return Summary{
		RunID:    uuid.New().String(),
		Failures: make(map[string]string),
	}
}

func (s *Summary) fail(numeroOrdem string, err error) {
	s.Errors++
	s.Failures[numeroOrdem] = err.Error()
}

func (s *Summary) absorb(other Summary) {
	s.Processed += other.Processed
	s.Corrected += other.Corrected
	s.Errors += other.Errors
	for k, v := range other.Failures {
		s.Failures[k] = v
	}
}

// Engine orchestrates reconciliation passes against a store. It reuses the
// same classifier as the ingestion pipeline, so both paths agree on every
// taxonomy decision.
type Engine struct {
	store      Store
	classifier *classify.Classifier
	cfg        Config
}

// NewEngine builds an engine. Zero config fields fall back to defaults.
func NewEngine(store Store, classifier *classify.Classifier, cfg Config) *Engine {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PagePause <= 0 {
		cfg.PagePause = DefaultPagePause
	}
	return &Engine{store: store, classifier: classifier, cfg: cfg}
}

// Run executes both passes: service date backfill, then reclassification.
// A fetch failure in either pass aborts the run; per-record update failures
// are counted and the run continues.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	summary := newSummary()

	dates, err := e.ReconcileServiceDates(ctx)
	summary.absorb(dates)
	if err != nil {
		return summary, err
	}

	classifications, err := e.ReconcileClassifications(ctx)
	summary.absorb(classifications)
	return summary, err
}

// ReconcileServiceDates backfills dia/mes/ano_servico from data_ordem for
// every record where they are missing. Pagination re-issues the same
// incompleteness query each page; corrected records no longer match it, so
// the loop converges without an offset cursor.
func (e *Engine) ReconcileServiceDates(ctx context.Context) (Summary, error) {
	summary := newSummary()
	log := slog.With("run_id", summary.RunID, "pass", "service_dates")
	bar := e.newProgressBar("backfilling service dates")

	attempted := make(map[string]bool)
	for page := 1; ; page++ {
		orders, err := e.store.FindMissingServiceDates(ctx, e.cfg.PageSize)
		if err != nil {
			return summary, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
		}

		orders = filterAttempted(orders, attempted)
		if len(orders) == 0 {
			break
		}
		log.Debug("Processing page", "page", page, "records", len(orders))

		for i := range orders {
			order := &orders[i]
			summary.Processed++
			_ = bar.Add(1)

			if order.DataOrdem == nil {
				summary.fail(order.NumeroOrdem, errNoOrderDate)
				continue
			}
			d := *order.DataOrdem
			if err := e.store.UpdateServiceDate(ctx, order.NumeroOrdem, d.Day(), int(d.Month()), d.Year()); err != nil {
				log.Warn("Failed to update service date",
					"numero_ordem", order.NumeroOrdem,
					"error", err)
				summary.fail(order.NumeroOrdem, err)
				continue
			}
			summary.Corrected++
		}

		if done, err := e.endOfPage(ctx, len(orders)); done || err != nil {
			if err != nil {
				return summary, err
			}
			break
		}
	}

	log.Info("Service date pass complete",
		"processed", summary.Processed,
		"corrected", summary.Corrected,
		"errors", summary.Errors)
	return summary, nil
}

// ReconcileClassifications re-runs the classifier over every record whose
// taxonomy is empty or still the sentinel while raw defect text exists.
// Records whose text still classifies to the sentinel are remembered within
// the run so a page full of unclassifiable text cannot loop forever.
func (e *Engine) ReconcileClassifications(ctx context.Context) (Summary, error) {
	summary := newSummary()
	log := slog.With("run_id", summary.RunID, "pass", "classification")
	bar := e.newProgressBar("reclassifying defects")

	attempted := make(map[string]bool)
	for page := 1; ; page++ {
		orders, err := e.store.FindUnclassified(ctx, e.cfg.PageSize)
		if err != nil {
			return summary, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
		}

		orders = filterAttempted(orders, attempted)
		if len(orders) == 0 {
			break
		}
		log.Debug("Processing page", "page", page, "records", len(orders))

		for i := range orders {
			order := &orders[i]
			summary.Processed++
			_ = bar.Add(1)

			c := e.classifier.Classify(order.DefeitoTextoBruto)
			if !c.IsClassified() && order.DefeitoGrupo == model.NaoClassificado {
				// Still unclassifiable; nothing to write.
				continue
			}
			if err := e.store.UpdateClassification(ctx, order.NumeroOrdem, c); err != nil {
				log.Warn("Failed to update classification",
					"numero_ordem", order.NumeroOrdem,
					"error", err)
				summary.fail(order.NumeroOrdem, err)
				continue
			}
			summary.Corrected++
		}

		if done, err := e.endOfPage(ctx, len(orders)); done || err != nil {
			if err != nil {
				return summary, err
			}
			break
		}
	}

	log.Info("Classification pass complete",
		"processed", summary.Processed,
		"corrected", summary.Corrected,
		"errors", summary.Errors)
	return summary, nil
}

// endOfPage reports whether the loop should stop (a short page means the
// incomplete set is drained) and applies the inter-page pause. Cancellation
// is honored at page boundaries only.
func (e *Engine) endOfPage(ctx context.Context, pageLen int) (bool, error) {
	if pageLen < e.cfg.PageSize {
		return true, nil
	}
	select {
	case <-ctx.Done():
		return true, ctx.Err()
	case <-time.After(e.cfg.PagePause):
		return false, nil
	}
}

func (e *Engine) newProgressBar(description string) *progressbar.ProgressBar {
	if !e.cfg.ShowProgress {
		return progressbar.DefaultSilent(-1, description)
	}
	return progressbar.Default(-1, description)
}

func filterAttempted(orders []model.Order, attempted map[string]bool) []model.Order {
	kept := orders[:0]
	for _, o := range orders {
		if attempted[o.NumeroOrdem] {
			continue
		}
		attempted[o.NumeroOrdem] = true
		kept = append(kept, o)
	}
	return kept
}
