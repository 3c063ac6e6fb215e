package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// SalesRepository reads the raw rows the sales reports are computed from.
type SalesRepository interface {
	// FindDealsInWindow returns the deals in scope whose activity window overlaps [from, to]
	// (deal_date <= to AND due_date >= from), each with its full payment list.
	FindDealsInWindow(ctx context.Context, scope domain.SalesScope, from, to time.Time) ([]domain.Deal, error)
}
