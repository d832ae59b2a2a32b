package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aurelia-jewels/reports-manager/internal/dependency"
	"github.com/aurelia-jewels/reports-manager/internal/entity"
)

type snapshotStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Snapshots() dependency.Snapshots {
	return &snapshotStore{MYSQLStore: ms}
}

func (ss *snapshotStore) AddSnapshot(ctx context.Context, cfg entity.ReportConfig, res *entity.ReportResult) (int, error) {
	payload, err := json.Marshal(entity.SnapshotPayload{
		TopProducts: res.TopProducts,
		Series:      res.Series,
	})
	if err != nil {
		return 0, fmt.Errorf("can't marshal snapshot payload: %w", err)
	}

	query := `
	INSERT INTO report_snapshots
		(granularity, anchor, period_start, period_end, revenue, revenue_growth,
		orders_count, completed_count, avg_order_value, new_customers, payload)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	r, err := ss.db.ExecContext(ctx, query,
		cfg.Granularity,
		cfg.Anchor,
		res.Period.CurrentStart,
		res.Period.CurrentEnd,
		res.Revenue,
		res.RevenueGrowth,
		res.OrdersCount,
		res.CompletedCount,
		res.AvgOrderValue,
		res.NewCustomers,
		payload,
	)
	if err != nil {
		return 0, fmt.Errorf("can't insert report snapshot: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("can't get last insert id: %w", err)
	}
	return int(id), nil
}

func (ss *snapshotStore) ListSnapshots(ctx context.Context, granularity entity.Granularity, limit, offset int) ([]entity.ReportSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
	SELECT id, granularity, anchor, period_start, period_end, revenue,
		revenue_growth, orders_count, completed_count, avg_order_value,
		new_customers, payload, created_at
	FROM report_snapshots
	WHERE granularity = ?
	ORDER BY created_at DESC, id DESC
	LIMIT ? OFFSET ?`

	var snapshots []entity.ReportSnapshot
	if err := ss.db.SelectContext(ctx, &snapshots, query, granularity, limit, offset); err != nil {
		return nil, fmt.Errorf("can't list report snapshots: %w", err)
	}
	return snapshots, nil
}

func (ss *snapshotStore) GetLatestSnapshot(ctx context.Context, granularity entity.Granularity) (*entity.ReportSnapshot, error) {
	query := `
	SELECT id, granularity, anchor, period_start, period_end, revenue,
		revenue_growth, orders_count, completed_count, avg_order_value,
		new_customers, payload, created_at
	FROM report_snapshots
	WHERE granularity = ?
	ORDER BY created_at DESC, id DESC
	LIMIT 1`

	var snapshot entity.ReportSnapshot
	if err := ss.db.GetContext(ctx, &snapshot, query, granularity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't get latest report snapshot: %w", err)
	}
	return &snapshot, nil
}
