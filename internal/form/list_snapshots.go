package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

type ListSnapshotsRequest struct {
	Granularity string
	Limit       int
	Offset      int
}

func (r *ListSnapshotsRequest) Validate() error {
	return v.ValidateStruct(r,
		v.Field(&r.Granularity, v.Required, v.In("daily", "monthly", "yearly")),
		v.Field(&r.Limit, v.Min(0), v.Max(100)),
		v.Field(&r.Offset, v.Min(0)),
	)
}
