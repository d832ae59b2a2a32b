package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// GetReportRequest carries the query parameters of the report and export
// endpoints. Anchor layout is validated downstream by the period resolver,
// which degrades to an empty window instead of failing.
type GetReportRequest struct {
	Granularity string
	Anchor      string
}

func (r *GetReportRequest) Validate() error {
	return v.ValidateStruct(r,
		v.Field(&r.Granularity, v.Required, v.In("daily", "monthly", "yearly")),
		v.Field(&r.Anchor, v.Required, v.Length(4, 10)),
	)
}
