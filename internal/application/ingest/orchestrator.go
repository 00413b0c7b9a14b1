// Package ingest drives the batch pipeline for one version snapshot:
// fetch each category in dependency order, normalize each record
// independently, materialize each row-tree, and aggregate outcomes into
// a report.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/ports"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

const defaultErrorSample = 5

// Options tunes orchestrator behavior.
type Options struct {
	// Clock drives report timestamps; nil uses the real clock.
	Clock shared.Clock

	// ErrorSample caps recorded error messages per category; zero uses
	// the default of 5.
	ErrorSample int
}

// Orchestrator sequences categories so that referenced entities
// (actions, types, properties, states) are committed before the items
// that reference them. Within a category records are processed
// sequentially; a single bad record never aborts the batch.
type Orchestrator struct {
	fetcher     ports.DocumentFetcher
	store       ports.Materializer
	logger      *zap.Logger
	clock       shared.Clock
	errorSample int
}

// NewOrchestrator creates an orchestrator over a fetcher and a
// materializer.
func NewOrchestrator(fetcher ports.DocumentFetcher, store ports.Materializer, logger *zap.Logger, opts Options) *Orchestrator {
	clock := opts.Clock
	if clock == nil {
		clock = shared.NewRealClock()
	}
	errorSample := opts.ErrorSample
	if errorSample <= 0 {
		errorSample = defaultErrorSample
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		fetcher:     fetcher,
		store:       store,
		logger:      logger,
		clock:       clock,
		errorSample: errorSample,
	}
}

// Run ingests one full version snapshot and returns the batch report.
// Fetch failures abort only their category; the returned error is
// non-nil only when the context is cancelled.
func (o *Orchestrator) Run(ctx context.Context, version string) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Version:   version,
		StartedAt: o.clock.Now(),
	}
	slots := gamedata.NewSlotAllocator()

	o.logger.Info("starting batch run",
		zap.String("run_id", report.RunID),
		zap.String("version", version))

	for _, category := range catalog.IngestionOrder() {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Categories = append(report.Categories, o.runCategory(ctx, category, version, slots))
	}

	report.FinishedAt = o.clock.Now()
	o.logger.Info("batch run finished",
		zap.String("run_id", report.RunID),
		zap.Int("ingested", report.TotalIngested()),
		zap.Int("failed", report.TotalFailed()))
	return report, nil
}

func (o *Orchestrator) runCategory(ctx context.Context, category catalog.Category, version string, slots *gamedata.SlotAllocator) CategoryReport {
	cr := CategoryReport{Category: category}

	records, err := o.fetcher.Fetch(ctx, category, version)
	if err != nil {
		cr.Aborted = true
		cr.AbortReason = err.Error()
		o.logger.Warn("category fetch failed, skipping category",
			zap.String("category", category.String()),
			zap.Error(err))
		return cr
	}
	cr.Fetched = len(records)

	for i, raw := range records {
		outcome, err := o.ingestRecord(ctx, category, raw, slots)

		var malformed *shared.MalformedRecordError
		switch {
		case errors.As(err, &malformed):
			cr.MalformedSkipped++
			cr.recordError(o.errorSample, fmt.Sprintf("record %d: %v", i, err))
			o.logger.Debug("skipping malformed record",
				zap.String("category", category.String()),
				zap.Int("index", i),
				zap.String("field", malformed.Field))

		case outcome == ports.OutcomeInserted:
			cr.Inserted++

		case outcome == ports.OutcomeDuplicateSkipped:
			cr.DuplicateSkipped++
			o.logger.Debug("duplicate entry, skipping",
				zap.String("category", category.String()),
				zap.Int("index", i))

		default:
			cr.Failed++
			cr.recordError(o.errorSample, fmt.Sprintf("record %d: %v", i, err))
			o.logger.Warn("record failed to materialize",
				zap.String("category", category.String()),
				zap.Int("index", i),
				zap.Error(err))
		}
	}

	o.logger.Info("category processed",
		zap.String("category", category.String()),
		zap.Int("fetched", cr.Fetched),
		zap.Int("inserted", cr.Inserted),
		zap.Int("duplicates", cr.DuplicateSkipped),
		zap.Int("malformed", cr.MalformedSkipped),
		zap.Int("failed", cr.Failed))
	return cr
}

// ingestRecord normalizes and materializes one raw record. Errors from
// normalization are always MalformedRecordError; errors from
// materialization accompany OutcomeFailed.
func (o *Orchestrator) ingestRecord(ctx context.Context, category catalog.Category, raw gamedata.RawRecord, slots *gamedata.SlotAllocator) (ports.Outcome, error) {
	switch category {
	case catalog.Actions:
		action, err := gamedata.NormalizeAction(raw)
		if err != nil {
			return ports.OutcomeFailed, err
		}
		return o.store.MaterializeAction(ctx, action)

	case catalog.ItemTypes, catalog.EquipmentItemTypes:
		itemType, err := gamedata.NormalizeItemType(raw)
		if err != nil {
			return ports.OutcomeFailed, err
		}
		return o.store.MaterializeItemType(ctx, itemType)

	case catalog.ItemProperties:
		property, err := gamedata.NormalizeItemProperty(raw)
		if err != nil {
			return ports.OutcomeFailed, err
		}
		return o.store.MaterializeItemProperty(ctx, property)

	case catalog.States:
		state, err := gamedata.NormalizeState(raw)
		if err != nil {
			return ports.OutcomeFailed, err
		}
		return o.store.MaterializeState(ctx, state)

	case catalog.Items:
		item, err := gamedata.NormalizeItem(raw, slots)
		if err != nil {
			return ports.OutcomeFailed, err
		}
		return o.store.MaterializeItem(ctx, item)

	default:
		return ports.OutcomeFailed, fmt.Errorf("no normalizer registered for category %s", category)
	}
}
