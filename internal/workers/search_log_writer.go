package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/e"
)

type SearchEventQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.SearchEvent, error)
}

type SearchLogStore interface {
	Save(ctx context.Context, event *domain.SearchEvent) error
}

// SearchLogWriter moves queued search events into the search log.
type SearchLogWriter struct {
	logger     *slog.Logger
	queue      SearchEventQueue
	store      SearchLogStore
	popTimeout time.Duration
	backoff    time.Duration
	maxRetries int
}

func NewSearchLogWriter(logger *slog.Logger, q SearchEventQueue, store SearchLogStore, backoff time.Duration) *SearchLogWriter {
	if backoff <= 0 {
		backoff = time.Second
	}
	return &SearchLogWriter{
		logger:     logger,
		queue:      q,
		store:      store,
		popTimeout: 5 * time.Second,
		backoff:    backoff,
		maxRetries: 3,
	}
}

func (w *SearchLogWriter) Run(ctx context.Context) {
	w.logger.Info("searchLogWriter STARTED")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("searchLogWriter STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := w.queue.BRPop(ctx, w.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			w.sleep(ctx, w.backoff/2)
			continue
		}

		w.saveWithRetry(ctx, event)
	}
}

func (w *SearchLogWriter) saveWithRetry(ctx context.Context, event domain.SearchEvent) {
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if ctx.Err() != nil {
			w.logger.Info("stop retries due to context cancel")
			return
		}

		err := w.store.Save(ctx, &event)
		if err == nil {
			return
		}
		if errors.Is(err, e.ErrInvalidInput) || errors.Is(err, e.ErrUniqueViolation) {
			w.logger.Warn("search event rejected", slog.String("id", event.ID.String()), slog.Any("error", err))
			return
		}

		w.logger.Warn("save search event failed",
			slog.Int("attempt", attempt),
			slog.String("id", event.ID.String()),
			slog.Any("error", err),
		)
		if attempt < w.maxRetries {
			w.sleep(ctx, time.Duration(attempt)*w.backoff)
		}
	}
	w.logger.Error("search event dropped", slog.String("id", event.ID.String()))
}

func (w *SearchLogWriter) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
