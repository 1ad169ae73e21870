package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"equipmentCentral/internal/domain"
)

type OperatorSource interface {
	ListActive(ctx context.Context) ([]domain.Operator, error)
}

type OperatorIndex interface {
	Rebuild(ops []domain.Operator)
	Reset()
}

// IndexRefresher reloads the operator index on a fixed period and whenever
// Invalidate is called. Reloads are serialized so an older listing never
// replaces a newer one.
type IndexRefresher struct {
	mu      sync.Mutex
	source  OperatorSource
	index   OperatorIndex
	period  time.Duration
	trigger chan struct{}
	logger  *slog.Logger
}

func NewIndexRefresher(source OperatorSource, index OperatorIndex, period time.Duration, logger *slog.Logger) *IndexRefresher {
	return &IndexRefresher{
		source:  source,
		index:   index,
		period:  period,
		trigger: make(chan struct{}, 1),
		logger:  logger,
	}
}

// Invalidate rebuilds the index before returning. When the reload fails the
// index is reset to its fallback and a retry is queued for Run.
func (w *IndexRefresher) Invalidate(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.reload(ctx); err != nil {
		w.index.Reset()
		select {
		case w.trigger <- struct{}{}:
		default:
		}
		return err
	}
	return nil
}

// Refresh loads the active operators once and rebuilds the index.
func (w *IndexRefresher) Refresh(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reload(ctx)
}

func (w *IndexRefresher) reload(ctx context.Context) error {
	ops, err := w.source.ListActive(ctx)
	if err != nil {
		return err
	}
	w.index.Rebuild(ops)
	return nil
}

func (w *IndexRefresher) Run(ctx context.Context) {
	w.logger.Info("index refresher started", slog.Duration("period", w.period))

	w.refresh(ctx)

	ticker := time.NewTicker(w.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("index refresher stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		case <-w.trigger:
			w.refresh(ctx)
		}
	}
}

func (w *IndexRefresher) refresh(ctx context.Context) {
	if err := w.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("index refresh failed", slog.Any("error", err))
	}
}
