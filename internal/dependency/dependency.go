package dependency

import (
	"context"

	"github.com/aurelia-jewels/reports-manager/internal/dto"
	"github.com/aurelia-jewels/reports-manager/internal/entity"
)

type (
	// Snapshots persists computed reports so the dashboard has history and a
	// fallback when the platform API is unreachable.
	Snapshots interface {
		// AddSnapshot stores a computed report for the given config.
		AddSnapshot(ctx context.Context, cfg entity.ReportConfig, res *entity.ReportResult) (int, error)
		// ListSnapshots returns stored snapshots for a granularity, newest first.
		ListSnapshots(ctx context.Context, granularity entity.Granularity, limit, offset int) ([]entity.ReportSnapshot, error)
		// GetLatestSnapshot returns the most recent snapshot for a granularity.
		GetLatestSnapshot(ctx context.Context, granularity entity.Granularity) (*entity.ReportSnapshot, error)
	}

	// Repository groups the store interfaces.
	Repository interface {
		Snapshots() Snapshots
		Close()
		IsClosed() bool
	}

	// CollectionSource fetches the raw collections a report is computed from.
	CollectionSource interface {
		FetchAll(ctx context.Context) (*dto.Collections, error)
	}
)
