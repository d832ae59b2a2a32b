package report

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
)

// ErrNothingToExport signals that the filtered order set is empty and no file
// should be produced. Callers treat it as a no-op, not a failure.
var ErrNothingToExport = errors.New("nothing to export")

// GuestCustomerName is used when an order has no resolvable customer.
const GuestCustomerName = "Guest"

var exportHeader = []string{"Order ID", "Date", "Customer", "Amount", "Status"}

// ExportCSV renders the filtered order set as CSV with one row per order.
func ExportCSV(orders []entity.Order) (string, error) {
	if len(orders) == 0 {
		return "", ErrNothingToExport
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for i := range orders {
		o := &orders[i]
		customer := o.CustomerName
		if customer == "" {
			customer = GuestCustomerName
		}
		row := []string{
			o.ID,
			o.Placed.UTC().Format("2006-01-02"),
			customer,
			o.TotalAmountDecimal().StringFixed(2),
			string(o.Status),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
