package reportsnapshot

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/aurelia-jewels/reports-manager/internal/report"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.snapshotToday(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't snapshot daily report",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) snapshotToday(ctx context.Context) error {
	cols, err := w.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("can't fetch collections: %w", err)
	}

	cfg := entity.ReportConfig{
		Granularity: entity.GranularityDaily,
		Anchor:      w.now().UTC().Format("2006-01-02"),
	}
	res := report.Compute(cols.Orders, cols.Users, cols.Products, cfg)

	id, err := w.snapshots.AddSnapshot(ctx, cfg, &res)
	if err != nil {
		return fmt.Errorf("can't persist snapshot: %w", err)
	}

	slog.Default().InfoContext(ctx, "persisted daily report snapshot",
		slog.Int("snapshot_id", id),
		slog.String("anchor", cfg.Anchor),
		slog.Int("orders", res.OrdersCount),
	)
	return nil
}
