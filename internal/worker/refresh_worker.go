// Package worker refreshes stored index series from KOSIS, either one
// code at a time in response to queue messages or across the whole
// catalog on a schedule.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"mulga/internal/amqp"
	"mulga/internal/core"
	"mulga/internal/kosis"
	"mulga/internal/log"
)

// Store is the subset of the snapshot repository the worker writes to.
type Store interface {
	Save(ctx context.Context, code string, series core.Series) error
}

type RefreshWorker struct {
	fetcher     kosis.Fetcher
	store       Store
	startYear   string
	concurrency int
	logger      *log.Logger
}

func NewRefreshWorker(fetcher kosis.Fetcher, store Store, startYear string, concurrency int, logger *log.Logger) *RefreshWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RefreshWorker{
		fetcher:     fetcher,
		store:       store,
		startYear:   startYear,
		concurrency: concurrency,
		logger:      logger.WithComponent(log.ComponentWorker),
	}
}

// HandleRefreshMessage fetches the series for one code and stores it.
// An empty series leaves the previous snapshot untouched, so a KOSIS
// error envelope never wipes good data.
func (w *RefreshWorker) HandleRefreshMessage(ctx context.Context, msg *amqp.RefreshMessage) error {
	return w.RefreshCode(ctx, msg.Code)
}

func (w *RefreshWorker) RefreshCode(ctx context.Context, code string) error {
	endYear := strconv.Itoa(time.Now().Year())

	series, err := w.fetcher.FetchYearly(ctx, code, w.startYear, endYear)
	if err != nil {
		return fmt.Errorf("fetch series for %s: %w", code, err)
	}

	if len(series) == 0 {
		w.logger.WarnContext(ctx, "Skipping snapshot save for empty series",
			log.FieldItemCode, code,
			log.FieldOperation, log.OpRefresh)
		return nil
	}

	if err := w.store.Save(ctx, code, series); err != nil {
		return fmt.Errorf("save snapshot for %s: %w", code, err)
	}

	w.logger.InfoContext(ctx, "Snapshot refreshed",
		log.FieldItemCode, code,
		log.FieldSeriesLen, len(series),
		log.FieldOperation, log.OpRefresh)

	return nil
}

// RefreshAll refreshes every code with bounded concurrency. Individual
// failures are logged and counted but do not stop the remaining codes;
// the first error is returned after all codes were attempted.
func (w *RefreshWorker) RefreshAll(ctx context.Context, codes []string) error {
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(w.concurrency)

	for _, code := range codes {
		code := code
		g.Go(func() error {
			if err := w.RefreshCode(ctx, code); err != nil {
				w.logger.ErrorContext(ctx, "Refresh failed",
					log.FieldItemCode, code,
					log.FieldError, err.Error())
				return err
			}
			return nil
		})
	}

	err := g.Wait()

	w.logger.InfoContext(ctx, "Bulk refresh finished",
		"codes", len(codes),
		log.FieldDuration, time.Since(start).Milliseconds(),
		log.FieldOperation, log.OpRefresh)

	return err
}
